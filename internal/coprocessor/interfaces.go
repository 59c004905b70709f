// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/coprocessor_mock.go -package=mock

// Package coprocessor is the vault's only path to balance arithmetic.
//
// Under the confidential scheme every operation is one blocking round trip to
// an external coprocessor that owns the encrypted values; the vault only sees
// opaque handles. Under the plaintext scheme a local unit performs checked
// 64-bit arithmetic behind the same interface.
package coprocessor

import (
	"context"

	"github.com/MKhiriev/confidential-vault/models"
)

// Arithmetic operates on opaque handles. signer is the account on whose
// behalf the coprocessor is asked to act.
type Arithmetic interface {
	// FromCiphertext registers a client-produced ciphertext and returns its handle.
	FromCiphertext(ctx context.Context, signer models.AccountID, ciphertext []byte, inputType uint8) (models.Handle, error)
	// FromPlaintext encrypts a public value.
	FromPlaintext(ctx context.Context, signer models.AccountID, value models.Uint128) (models.Handle, error)
	Add(ctx context.Context, signer models.AccountID, a, b models.Handle) (models.Handle, error)
	Sub(ctx context.Context, signer models.AccountID, a, b models.Handle) (models.Handle, error)
	// GreaterOrEqual and Equal decode the coprocessor's answer as a flag:
	// zero is false, anything else true.
	GreaterOrEqual(ctx context.Context, signer models.AccountID, a, b models.Handle) (bool, error)
	Equal(ctx context.Context, signer models.AccountID, a, b models.Handle) (bool, error)
}

// Transport delivers one request (8-byte selector followed by arguments) and
// returns the coprocessor's raw return data.
type Transport interface {
	Invoke(ctx context.Context, signer models.AccountID, request []byte) ([]byte, error)
}
