// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Message is the signed part of a transaction.
type Message struct {
	ProgramID AccountID     `json:"program_id"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      []byte        `json:"data"`
	// ExpiresAt bounds how long the message may be submitted. It is
	// required.
	ExpiresAt time.Time `json:"expires_at"`
}

// Signature is one signer's Ed25519 signature over the message digest.
type Signature struct {
	PubKey    AccountID `json:"pubkey"`
	Signature []byte    `json:"signature"`
}

// Transaction is the envelope clients submit.
type Transaction struct {
	Message    Message     `json:"message"`
	Signatures []Signature `json:"signatures"`
}

// Digest is the canonical hash signers sign:
// sha256(program_id | n_accounts u32 | (pubkey | signer | writable)* | data_len u32 | data | expires_at unix-nano i64).
func (m Message) Digest() [32]byte {
	h := sha256.New()
	h.Write(m.ProgramID[:])

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(m.Accounts)))
	h.Write(buf[:4])
	for _, meta := range m.Accounts {
		h.Write(meta.PubKey[:])
		h.Write([]byte{boolByte(meta.IsSigner), boolByte(meta.IsWritable)})
	}

	binary.LittleEndian.PutUint32(buf[:4], uint32(len(m.Data)))
	h.Write(buf[:4])
	h.Write(m.Data)

	var expires int64
	if !m.ExpiresAt.IsZero() {
		expires = m.ExpiresAt.UnixNano()
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(expires))
	h.Write(buf[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Receipt reports a committed transaction.
type Receipt struct {
	Signature   []byte         `json:"signature"`
	Instruction InstructionTag `json:"-"`
	Operation   string         `json:"operation"`
	CommittedAt time.Time      `json:"committed_at"`
}

// VaultSummary is the public view of the holding account.
type VaultSummary struct {
	Address  AccountID `json:"address"`
	Lamports uint64    `json:"lamports"`
	SOL      string    `json:"sol"`
}
