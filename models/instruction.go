// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InstructionTag is the first byte of every vault instruction.
type InstructionTag uint8

const (
	TagInitialize InstructionTag = iota
	TagDeposit
	TagWithdraw
	TagDelegatedExecute
	TagRegisterIntentKey
)

func (t InstructionTag) String() string {
	switch t {
	case TagInitialize:
		return "initialize"
	case TagDeposit:
		return "deposit"
	case TagWithdraw:
		return "withdraw"
	case TagDelegatedExecute:
		return "delegated_execute"
	case TagRegisterIntentKey:
		return "register_intent_key"
	default:
		return "unknown"
	}
}

// Instruction is a decoded vault instruction. The concrete type is one of
// the structs below.
type Instruction interface {
	Tag() InstructionTag
}

// Initialize creates or replaces the delegate configuration.
type Initialize struct {
	Receiver AccountID
}

// Deposit moves Amount lamports into the vault and credits the ciphertext.
// Ciphertext and InputType are empty under the plaintext scheme.
type Deposit struct {
	Amount     uint64
	Ciphertext []byte
	InputType  uint8
}

// Withdraw returns Amount lamports to the owner.
type Withdraw struct {
	Amount uint64
}

// DelegatedExecute pays Amount from a participant to the configured receiver
// on the strength of a signed intent.
type DelegatedExecute struct {
	IntentHash [32]byte
	Signature  []byte
	Amount     uint64
	Ciphertext []byte
	InputType  uint8
}

// RegisterIntentKey sets the key that signs the caller's intents.
type RegisterIntentKey struct {
	Scheme    KeyScheme
	PublicKey [32]byte
}

func (Initialize) Tag() InstructionTag        { return TagInitialize }
func (Deposit) Tag() InstructionTag           { return TagDeposit }
func (Withdraw) Tag() InstructionTag          { return TagWithdraw }
func (DelegatedExecute) Tag() InstructionTag  { return TagDelegatedExecute }
func (RegisterIntentKey) Tag() InstructionTag { return TagRegisterIntentKey }
