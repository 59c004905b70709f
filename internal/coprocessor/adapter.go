// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package coprocessor

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/internal/metrics"
	"github.com/MKhiriev/confidential-vault/models"
)

// adapter encodes Arithmetic calls as coprocessor requests.
//
// Request layouts after the selector:
//
//	new_euint128  ct_len(u32) | ct | input_type(u8)
//	as_euint128   value(u128)
//	e_*           lhs(u128) | rhs(u128) | 0x00
//
// The response is a little-endian u128 in the first 16 bytes.
type adapter struct {
	transport Transport
	metrics   *metrics.Metrics
}

// NewAdapter returns the confidential [Arithmetic] over transport. m may be nil.
func NewAdapter(transport Transport, m *metrics.Metrics) Arithmetic {
	return &adapter{transport: transport, metrics: m}
}

func (a *adapter) FromCiphertext(ctx context.Context, signer models.AccountID, ciphertext []byte, inputType uint8) (models.Handle, error) {
	args := make([]byte, 0, 4+len(ciphertext)+1)
	args = binary.LittleEndian.AppendUint32(args, uint32(len(ciphertext)))
	args = append(args, ciphertext...)
	args = append(args, inputType)
	return a.call(ctx, OpNewEuint128, signer, args)
}

func (a *adapter) FromPlaintext(ctx context.Context, signer models.AccountID, value models.Uint128) (models.Handle, error) {
	return a.call(ctx, OpAsEuint128, signer, value.Bytes())
}

func (a *adapter) Add(ctx context.Context, signer models.AccountID, lhs, rhs models.Handle) (models.Handle, error) {
	return a.call(ctx, OpAdd, signer, binaryArgs(lhs, rhs))
}

func (a *adapter) Sub(ctx context.Context, signer models.AccountID, lhs, rhs models.Handle) (models.Handle, error) {
	return a.call(ctx, OpSub, signer, binaryArgs(lhs, rhs))
}

func (a *adapter) GreaterOrEqual(ctx context.Context, signer models.AccountID, lhs, rhs models.Handle) (bool, error) {
	h, err := a.call(ctx, OpGe, signer, binaryArgs(lhs, rhs))
	return h.Flag(), err
}

func (a *adapter) Equal(ctx context.Context, signer models.AccountID, lhs, rhs models.Handle) (bool, error) {
	h, err := a.call(ctx, OpEq, signer, binaryArgs(lhs, rhs))
	return h.Flag(), err
}

func (a *adapter) call(ctx context.Context, op string, signer models.AccountID, args []byte) (h models.Handle, err error) {
	log := logger.FromContext(ctx)
	started := time.Now()
	defer func() { a.metrics.ObserveCoprocessor(op, err, started) }()

	sel := Selector(op)
	request := make([]byte, 0, SelectorLength+len(args))
	request = append(request, sel[:]...)
	request = append(request, args...)

	ret, err := a.transport.Invoke(ctx, signer, request)
	if err != nil {
		log.Err(err).Str("func", "*adapter.call").Str("op", op).Msg("coprocessor call failed")
		if errors.Is(err, models.ErrExternalService) {
			return models.Handle{}, fmt.Errorf("%s: %w", op, err)
		}
		return models.Handle{}, fmt.Errorf("%s: %w: %w", op, models.ErrExternalService, err)
	}
	if len(ret) < models.HandleLength {
		log.Error().Str("func", "*adapter.call").Str("op", op).Int("len", len(ret)).Msg("coprocessor returned short data")
		return models.Handle{}, fmt.Errorf("%s: %w (%d bytes)", op, ErrShortReturnData, len(ret))
	}

	h, _ = models.HandleFromBytes(ret)
	log.Debug().Str("func", "*adapter.call").Str("op", op).Stringer("handle", h).Msg("coprocessor call done")
	return h, nil
}

func binaryArgs(lhs, rhs models.Handle) []byte {
	args := make([]byte, 0, 2*models.HandleLength+1)
	args = append(args, lhs[:]...)
	args = append(args, rhs[:]...)
	return append(args, 0)
}
