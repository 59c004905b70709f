// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package coprocessor

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/MKhiriev/confidential-vault/models"
)

// plaintextUnit implements [Arithmetic] locally for the plaintext scheme.
// Its handles are the values themselves, little-endian in the low 8 bytes.
type plaintextUnit struct{}

// NewPlaintext returns the local checked-arithmetic unit.
func NewPlaintext() Arithmetic {
	return plaintextUnit{}
}

// PlaintextHandle encodes v the way the plaintext unit does.
func PlaintextHandle(v uint64) models.Handle {
	var h models.Handle
	binary.LittleEndian.PutUint64(h[:8], v)
	return h
}

// PlaintextValue decodes a plaintext-scheme handle.
func PlaintextValue(h models.Handle) (uint64, error) {
	for _, b := range h[8:] {
		if b != 0 {
			return 0, fmt.Errorf("%w: value exceeds 64 bits", models.ErrArithmeticOverflow)
		}
	}
	return binary.LittleEndian.Uint64(h[:8]), nil
}

func (plaintextUnit) FromCiphertext(context.Context, models.AccountID, []byte, uint8) (models.Handle, error) {
	return models.Handle{}, ErrCiphertextUnsupported
}

func (plaintextUnit) FromPlaintext(_ context.Context, _ models.AccountID, value models.Uint128) (models.Handle, error) {
	if !value.IsUint64() {
		return models.Handle{}, fmt.Errorf("%w: value exceeds 64 bits", models.ErrArithmeticOverflow)
	}
	return PlaintextHandle(value.Lo), nil
}

func (plaintextUnit) Add(_ context.Context, _ models.AccountID, a, b models.Handle) (models.Handle, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return models.Handle{}, err
	}
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		return models.Handle{}, fmt.Errorf("%w: %d + %d", models.ErrArithmeticOverflow, x, y)
	}
	return PlaintextHandle(sum), nil
}

func (plaintextUnit) Sub(_ context.Context, _ models.AccountID, a, b models.Handle) (models.Handle, error) {
	x, y, err := operands(a, b)
	if err != nil {
		return models.Handle{}, err
	}
	diff, borrow := bits.Sub64(x, y, 0)
	if borrow != 0 {
		return models.Handle{}, fmt.Errorf("%w: %d - %d", models.ErrArithmeticOverflow, x, y)
	}
	return PlaintextHandle(diff), nil
}

func (plaintextUnit) GreaterOrEqual(_ context.Context, _ models.AccountID, a, b models.Handle) (bool, error) {
	x, y, err := operands(a, b)
	return x >= y, err
}

func (plaintextUnit) Equal(_ context.Context, _ models.AccountID, a, b models.Handle) (bool, error) {
	x, y, err := operands(a, b)
	return x == y, err
}

func operands(a, b models.Handle) (uint64, uint64, error) {
	x, err := PlaintextValue(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := PlaintextValue(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
