// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BalanceScheme selects how participant balances are represented. A
// deployment runs exactly one scheme.
type BalanceScheme string

const (
	// SchemeConfidential stores 128-bit coprocessor handles.
	SchemeConfidential BalanceScheme = "confidential"
	// SchemePlaintext stores 64-bit integers and never contacts a coprocessor.
	SchemePlaintext BalanceScheme = "plaintext"
)

// ParseBalanceScheme maps a config value onto a scheme. Empty means
// confidential.
func ParseBalanceScheme(s string) (BalanceScheme, error) {
	switch BalanceScheme(strings.ToLower(strings.TrimSpace(s))) {
	case "", SchemeConfidential:
		return SchemeConfidential, nil
	case SchemePlaintext:
		return SchemePlaintext, nil
	default:
		return "", fmt.Errorf("%w: unknown balance scheme %q", ErrInvalidArgument, s)
	}
}

// DelegateConfig is the singleton delegation record.
type DelegateConfig struct {
	// Receiver is the only account allowed to receive delegated executions.
	Receiver AccountID `json:"delegate_receiving_account"`
	// Authority controls re-initialization.
	Authority   AccountID `json:"controlling_authority"`
	Initialized bool      `json:"initialized"`
}

// ParticipantRecord binds an owner to their encrypted balance.
type ParticipantRecord struct {
	Owner   AccountID `json:"owner"`
	Balance Handle    `json:"encrypted_balance"`
}

// KeyScheme is the signature algorithm of a registered intent key.
type KeyScheme uint8

const (
	KeySchemeEd25519 KeyScheme = iota
	KeySchemeSchnorrSecp256k1
)

func (s KeyScheme) String() string {
	switch s {
	case KeySchemeEd25519:
		return "ed25519"
	case KeySchemeSchnorrSecp256k1:
		return "schnorr-secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Valid reports whether s is a supported scheme.
func (s KeyScheme) Valid() bool {
	return s == KeySchemeEd25519 || s == KeySchemeSchnorrSecp256k1
}

// IntentKey is the key a participant signs delegated intents with.
type IntentKey struct {
	Owner     AccountID `json:"owner"`
	Scheme    KeyScheme `json:"scheme"`
	PublicKey [32]byte  `json:"-"`
}

// DefaultIntentKey is used when an owner never registered a key: the owner's
// own address is taken as an Ed25519 public key.
func DefaultIntentKey(owner AccountID) IntentKey {
	return IntentKey{Owner: owner, Scheme: KeySchemeEd25519, PublicKey: owner}
}

// UsedIntent marks a consumed intent hash.
type UsedIntent struct {
	Owner AccountID `json:"owner"`
}
