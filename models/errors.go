// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error kinds shared by every layer of the vault. Concrete errors wrap one of
// these with fmt.Errorf("%w: ...") so callers classify them with [errors.Is].
// Any of them aborts the invocation and leaves no persisted change.
var (
	// ErrStructuralDecode covers malformed instruction data, truncated or
	// uninitialized records, missing accounts and unknown instruction tags.
	ErrStructuralDecode = errors.New("structural decode error")

	// ErrAuthorization covers derived-address mismatches, missing signatures,
	// ownership mismatches and failed intent signatures.
	ErrAuthorization = errors.New("authorization error")

	// ErrInsufficientFunds is returned when an encrypted balance does not
	// cover a withdrawal or delegated execution.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrArithmeticOverflow is returned by checked plaintext arithmetic.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrExternalService is returned when the coprocessor fails or answers
	// with an unusable result.
	ErrExternalService = errors.New("external service error")

	// ErrInvalidArgument covers zero deposits, ciphertext/amount mismatches
	// and malformed keys.
	ErrInvalidArgument = errors.New("invalid argument")
)
