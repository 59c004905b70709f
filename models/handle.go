// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

// HandleLength is the wire size of an encrypted-value handle.
const HandleLength = 16

// Handle is an opaque reference to a value held by the confidential-compute
// coprocessor. It carries no arithmetic: every operation on the underlying
// value goes through the coprocessor. The zero Handle means "no value yet".
type Handle [HandleLength]byte

// HandleFromBytes reads a little-endian handle from the first 16 bytes of b.
func HandleFromBytes(b []byte) (Handle, error) {
	var h Handle
	if len(b) < HandleLength {
		return h, fmt.Errorf("%w: handle needs %d bytes, got %d", ErrStructuralDecode, HandleLength, len(b))
	}
	copy(h[:], b[:HandleLength])
	return h, nil
}

// Bytes returns the little-endian wire form.
func (h Handle) Bytes() []byte {
	out := make([]byte, HandleLength)
	copy(out, h[:])
	return out
}

// IsZero reports whether h references nothing.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// Flag interprets h as the result of a comparison: zero is false, anything
// else is true.
func (h Handle) Flag() bool {
	return !h.IsZero()
}

func (h Handle) String() string {
	return hex.EncodeToString(h[:])
}

func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Handle) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != HandleLength {
		return fmt.Errorf("%w: handle must be %d hex-encoded bytes", ErrStructuralDecode, HandleLength)
	}
	copy(h[:], raw)
	return nil
}

// Uint128 is an unsigned 128-bit integer used for plaintext coprocessor
// arguments.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// U128 widens v.
func U128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBytes reads a little-endian value from the first 16 bytes of b.
func Uint128FromBytes(b []byte) (Uint128, error) {
	if len(b) < HandleLength {
		return Uint128{}, fmt.Errorf("%w: u128 needs %d bytes, got %d", ErrStructuralDecode, HandleLength, len(b))
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}, nil
}

// Bytes returns the little-endian wire form.
func (u Uint128) Bytes() []byte {
	out := make([]byte, HandleLength)
	binary.LittleEndian.PutUint64(out[0:8], u.Lo)
	binary.LittleEndian.PutUint64(out[8:16], u.Hi)
	return out
}

// IsUint64 reports whether u fits into 64 bits.
func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

// Big converts u into a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// Uint128FromBig truncates v to its low 128 bits.
func Uint128FromBig(v *big.Int) Uint128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(v, 64), mask).Uint64()
	return Uint128{Lo: lo, Hi: hi}
}

func (u Uint128) String() string {
	return u.Big().String()
}
