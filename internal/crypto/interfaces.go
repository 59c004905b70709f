// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Package crypto holds the vault's signature verification and the
// authenticated encryption used by the reference coprocessor.
package crypto

import "github.com/MKhiriev/confidential-vault/models"

// Verifier checks intent and transaction signatures.
type Verifier interface {
	// Verify returns nil if signature is valid for message under pubKey.
	// Failures wrap [models.ErrAuthorization].
	Verify(scheme models.KeyScheme, pubKey [32]byte, message, signature []byte) error
}

// Sealer is AES-256-GCM under a derived key. Blobs are nonce ‖ ciphertext.
type Sealer interface {
	Seal(plaintext, additionalData []byte) ([]byte, error)
	Open(blob, additionalData []byte) ([]byte, error)
}
