// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/MKhiriev/confidential-vault/models"
)

type verifier struct{}

// NewVerifier supports Ed25519 and BIP-340 Schnorr over secp256k1.
// Schnorr messages are hashed with SHA-256 by the caller: the 32-byte digest
// is what gets signed.
func NewVerifier() Verifier {
	return verifier{}
}

func (verifier) Verify(scheme models.KeyScheme, pubKey [32]byte, message, signature []byte) error {
	switch scheme {
	case models.KeySchemeEd25519:
		if len(signature) != ed25519.SignatureSize {
			return fmt.Errorf("%w: ed25519 signature must be %d bytes", ErrInvalidSignature, ed25519.SignatureSize)
		}
		if !ed25519.Verify(pubKey[:], message, signature) {
			return ErrInvalidSignature
		}
		return nil

	case models.KeySchemeSchnorrSecp256k1:
		key, err := schnorr.ParsePubKey(pubKey[:])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		sig, err := schnorr.ParseSignature(signature)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		if !sig.Verify(message, key) {
			return ErrInvalidSignature
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

// ValidatePublicKey checks that pubKey parses under scheme.
func ValidatePublicKey(scheme models.KeyScheme, pubKey [32]byte) error {
	switch scheme {
	case models.KeySchemeEd25519:
		return nil
	case models.KeySchemeSchnorrSecp256k1:
		if _, err := schnorr.ParsePubKey(pubKey[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}
