// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// AccountIDLength is the byte length of every ledger address.
const AccountIDLength = 32

// AccountID is a 32-byte ledger address. Its text form is base58.
type AccountID [AccountIDLength]byte

// ZeroAccountID is the all-zero address. It also identifies the system owner
// of plain wallet accounts.
var ZeroAccountID AccountID

// NewAccountID copies b into an AccountID. b must be exactly 32 bytes long.
func NewAccountID(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, fmt.Errorf("%w: account id must be %d bytes, got %d", ErrStructuralDecode, AccountIDLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseAccountID decodes a base58 address.
func ParseAccountID(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, fmt.Errorf("%w: empty account id", ErrStructuralDecode)
	}
	return NewAccountID(base58.Decode(s))
}

// MustParseAccountID is ParseAccountID for constants and tests.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (a AccountID) String() string {
	return base58.Encode(a[:])
}

// Bytes returns a copy of the raw address.
func (a AccountID) Bytes() []byte {
	return bytes.Clone(a[:])
}

// IsZero reports whether a is the all-zero address.
func (a AccountID) IsZero() bool {
	return a == ZeroAccountID
}

// Compare orders addresses bytewise.
func (a AccountID) Compare(b AccountID) int {
	return bytes.Compare(a[:], b[:])
}

func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AccountID) UnmarshalText(text []byte) error {
	id, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: account id must be a base58 string", ErrStructuralDecode)
	}
	return a.UnmarshalText([]byte(s))
}

// AccountMeta declares one account an instruction touches and how.
type AccountMeta struct {
	PubKey     AccountID `json:"pubkey"`
	IsSigner   bool      `json:"is_signer"`
	IsWritable bool      `json:"is_writable"`
}

// Account is the persisted state of a ledger address.
type Account struct {
	Key      AccountID `json:"pubkey"`
	Lamports uint64    `json:"lamports"`
	Owner    AccountID `json:"owner"`
	Data     []byte    `json:"data"`
}

// Exists reports whether the account holds anything. Addresses that were never
// written behave as empty, system-owned accounts.
func (a Account) Exists() bool {
	return a.Lamports > 0 || len(a.Data) > 0 || !a.Owner.IsZero()
}

// Clone returns a deep copy of a.
func (a Account) Clone() Account {
	a.Data = bytes.Clone(a.Data)
	return a
}
