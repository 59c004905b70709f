// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

// Writers advance *offset past what they wrote. The destination must already
// be sized for the whole layout.

func putUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset++
}

func putBool(dst []byte, v bool, offset *int) {
	if v {
		putUint8(dst, 1, offset)
		return
	}
	putUint8(dst, 0, offset)
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func putBytes(dst, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += len(v)
}

func putAccountID(dst []byte, v models.AccountID, offset *int) {
	putBytes(dst, v[:], offset)
}

// Reader is a bounds-checked little-endian cursor. Every short read fails
// with [models.ErrStructuralDecode].
type Reader struct {
	data   []byte
	offset int
}

// NewReader starts a cursor at the beginning of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

func (r *Reader) take(n int, what string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes at offset %d, %d left", models.ErrStructuralDecode, what, n, r.offset, r.Remaining())
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *Reader) Uint8(what string) (uint8, error) {
	b, err := r.take(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint32(what string) (uint32, error) {
	b, err := r.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Uint64(what string) (uint64, error) {
	b, err := r.take(8, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int, what string) ([]byte, error) {
	b, err := r.take(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// LengthPrefixed reads a u32 length followed by that many bytes.
func (r *Reader) LengthPrefixed(what string) ([]byte, error) {
	n, err := r.Uint32(what + " length")
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %s declares %d bytes, %d left", models.ErrStructuralDecode, what, n, r.Remaining())
	}
	return r.Bytes(int(n), what)
}

func (r *Reader) Fixed32(what string) ([32]byte, error) {
	var out [32]byte
	b, err := r.take(32, what)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func (r *Reader) AccountID(what string) (models.AccountID, error) {
	b, err := r.Fixed32(what)
	return models.AccountID(b), err
}
