// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package coprocessortest provides an in-process reference coprocessor.
//
// Engine keeps the plaintext behind every handle it issues, so tests can use
// it as a decryption oracle. It implements [coprocessor.Transport] directly
// and can also be served over HTTP for transport tests. Values live in
// Z/2^128; ciphertexts are AES-GCM sealed little-endian u128 values.
package coprocessortest

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/internal/coprocessor"
	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/internal/utils"
	"github.com/MKhiriev/confidential-vault/models"
)

var (
	ErrUnknownHandle     = errors.New("unknown handle")
	ErrUnknownSelector   = errors.New("unknown selector")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrMalformedRequest  = errors.New("malformed request")
)

var modulus = new(big.Int).Lsh(big.NewInt(1), 128)

// Engine is safe for concurrent use.
type Engine struct {
	sealer crypto.Sealer

	mu       sync.Mutex
	values   map[models.Handle]*big.Int
	next     uint64
	calls    []string
	failures map[string]error
	short    map[string]bool

	tokenSignKey string
	tokenIssuer  string
}

// NewEngine creates an engine with a random sealing key.
func NewEngine() *Engine {
	secret := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		panic(err)
	}
	sealer, err := crypto.NewSealer(secret, nil, "coprocessortest/euint128")
	if err != nil {
		panic(err)
	}
	return &Engine{
		sealer:   sealer,
		values:   make(map[models.Handle]*big.Int),
		failures: make(map[string]error),
		short:    make(map[string]bool),
	}
}

// RequireToken makes the HTTP handler demand a bearer token signed with key
// and issued by issuer, whose subject equals the X-Signer header.
func (e *Engine) RequireToken(key, issuer string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tokenSignKey, e.tokenIssuer = key, issuer
}

// Encrypt returns a ciphertext for value that the engine accepts in
// new_euint128.
func (e *Engine) Encrypt(value uint64) []byte {
	blob, err := e.sealer.Seal(models.U128(value).Bytes(), nil)
	if err != nil {
		panic(err)
	}
	return blob
}

// Decrypt returns the value behind h.
func (e *Engine) Decrypt(h models.Handle) (models.Uint128, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.values[h]
	if !ok {
		return models.Uint128{}, false
	}
	return models.Uint128FromBig(v), true
}

// Calls returns the operations served so far, in order.
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

// FailOn makes every later call of op fail with err.
func (e *Engine) FailOn(op string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[op] = err
}

// ShortReturnOn makes every later call of op answer with 8 bytes.
func (e *Engine) ShortReturnOn(op string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.short[op] = true
}

// Invoke implements coprocessor.Transport.
func (e *Engine) Invoke(_ context.Context, _ models.AccountID, request []byte) ([]byte, error) {
	if len(request) < coprocessor.SelectorLength {
		return nil, fmt.Errorf("%w: missing selector", ErrMalformedRequest)
	}
	var sel [coprocessor.SelectorLength]byte
	copy(sel[:], request)
	op, ok := coprocessor.OperationName(sel)
	if !ok {
		return nil, ErrUnknownSelector
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, op)
	if err := e.failures[op]; err != nil {
		return nil, err
	}

	out, err := e.execute(op, codec.NewReader(request[coprocessor.SelectorLength:]))
	if err != nil {
		return nil, err
	}
	if e.short[op] {
		return out[:8], nil
	}
	return out, nil
}

func (e *Engine) execute(op string, r *codec.Reader) ([]byte, error) {
	switch op {
	case coprocessor.OpNewEuint128:
		ct, err := r.LengthPrefixed("ciphertext")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		if _, err = r.Uint8("input type"); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		plain, err := e.sealer.Open(ct, nil)
		if err != nil || len(plain) != models.HandleLength {
			return nil, ErrInvalidCiphertext
		}
		v, _ := models.Uint128FromBytes(plain)
		return e.issue(v.Big()), nil

	case coprocessor.OpAsEuint128:
		raw, err := r.Bytes(models.HandleLength, "value")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
		}
		v, _ := models.Uint128FromBytes(raw)
		return e.issue(v.Big()), nil
	}

	a, b, err := e.operands(r)
	if err != nil {
		return nil, err
	}
	switch op {
	case coprocessor.OpAdd:
		return e.issue(new(big.Int).Add(a, b)), nil
	case coprocessor.OpSub:
		return e.issue(new(big.Int).Sub(a, b)), nil
	case coprocessor.OpGe:
		return flag(a.Cmp(b) >= 0), nil
	case coprocessor.OpEq:
		return flag(a.Cmp(b) == 0), nil
	default:
		return nil, ErrUnknownSelector
	}
}

func (e *Engine) operands(r *codec.Reader) (*big.Int, *big.Int, error) {
	lhs, err := r.Bytes(models.HandleLength, "lhs")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	rhs, err := r.Bytes(models.HandleLength, "rhs")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if _, err = r.Uint8("scalar flag"); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	a, ok := e.values[models.Handle(lhs)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %x", ErrUnknownHandle, lhs)
	}
	b, ok := e.values[models.Handle(rhs)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %x", ErrUnknownHandle, rhs)
	}
	return a, b, nil
}

// issue stores v mod 2^128 under a fresh non-zero handle.
func (e *Engine) issue(v *big.Int) []byte {
	e.next++
	var h models.Handle
	binary.LittleEndian.PutUint64(h[:8], e.next)
	binary.LittleEndian.PutUint64(h[8:], 0xc0c0)
	e.values[h] = new(big.Int).Mod(v, modulus)
	return h.Bytes()
}

func flag(b bool) []byte {
	out := make([]byte, models.HandleLength)
	if b {
		out[0] = 1
	}
	return out
}

// Handler serves the engine at coprocessor.InvokePath.
func (e *Engine) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+coprocessor.InvokePath, func(w http.ResponseWriter, r *http.Request) {
		signer, err := models.ParseAccountID(r.Header.Get(coprocessor.SignerHeader))
		if err != nil {
			http.Error(w, "missing or invalid signer", http.StatusBadRequest)
			return
		}

		e.mu.Lock()
		key, issuer := e.tokenSignKey, e.tokenIssuer
		e.mu.Unlock()
		if key != "" {
			token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			subject, err := utils.ValidateJWTToken(token, key, issuer)
			if err != nil || subject != signer.String() {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}

		out, err := e.Invoke(r.Context(), signer, body)
		switch {
		case err == nil:
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write(out)
		case errors.Is(err, ErrUnknownHandle), errors.Is(err, ErrUnknownSelector),
			errors.Is(err, ErrInvalidCiphertext), errors.Is(err, ErrMalformedRequest):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}
