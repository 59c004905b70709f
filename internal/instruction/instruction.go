// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package instruction converts raw instruction data into typed vault
// instructions and back.
//
// Layout: one tag byte followed by a tag-specific little-endian payload.
//
//	0 Initialize         receiver(32)
//	1 Deposit            amount(8) [ct_len(4) ct input_type(1)]
//	2 Withdraw           amount(8)
//	3 DelegatedExecute   intent_hash(32) sig_len(4) sig amount(8) [ct_len(4) ct input_type(1)]
//	4 RegisterIntentKey  scheme(1) public_key(32)
//
// Bracketed tails are present only under the confidential balance scheme.
// Trailing bytes after a complete payload are ignored.
package instruction

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/confidential-vault/internal/codec"
	"github.com/MKhiriev/confidential-vault/models"
)

// Decode parses data into one of the instruction types in models. Empty data
// and unknown tags fail with [models.ErrStructuralDecode].
func Decode(data []byte, scheme models.BalanceScheme) (models.Instruction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty instruction data", models.ErrStructuralDecode)
	}

	r := codec.NewReader(data[1:])
	switch tag := models.InstructionTag(data[0]); tag {
	case models.TagInitialize:
		receiver, err := r.AccountID("receiver")
		if err != nil {
			return nil, err
		}
		return models.Initialize{Receiver: receiver}, nil

	case models.TagDeposit:
		return decodeDeposit(r, scheme)

	case models.TagWithdraw:
		amount, err := r.Uint64("amount")
		if err != nil {
			return nil, err
		}
		return models.Withdraw{Amount: amount}, nil

	case models.TagDelegatedExecute:
		return decodeDelegatedExecute(r, scheme)

	case models.TagRegisterIntentKey:
		keyScheme, err := r.Uint8("key scheme")
		if err != nil {
			return nil, err
		}
		pub, err := r.Fixed32("public key")
		if err != nil {
			return nil, err
		}
		return models.RegisterIntentKey{Scheme: models.KeyScheme(keyScheme), PublicKey: pub}, nil

	default:
		return nil, fmt.Errorf("%w: unknown instruction tag %d", models.ErrStructuralDecode, uint8(tag))
	}
}

func decodeDeposit(r *codec.Reader, scheme models.BalanceScheme) (models.Instruction, error) {
	var d models.Deposit
	var err error
	if d.Amount, err = r.Uint64("amount"); err != nil {
		return nil, err
	}
	if scheme == models.SchemePlaintext {
		return d, nil
	}
	if d.Ciphertext, d.InputType, err = decodeCiphertext(r); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeDelegatedExecute(r *codec.Reader, scheme models.BalanceScheme) (models.Instruction, error) {
	var e models.DelegatedExecute
	var err error
	if e.IntentHash, err = r.Fixed32("intent hash"); err != nil {
		return nil, err
	}
	if e.Signature, err = r.LengthPrefixed("signature"); err != nil {
		return nil, err
	}
	if e.Amount, err = r.Uint64("amount"); err != nil {
		return nil, err
	}
	if scheme == models.SchemePlaintext {
		return e, nil
	}
	if e.Ciphertext, e.InputType, err = decodeCiphertext(r); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeCiphertext(r *codec.Reader) ([]byte, uint8, error) {
	ct, err := r.LengthPrefixed("ciphertext")
	if err != nil {
		return nil, 0, err
	}
	inputType, err := r.Uint8("input type")
	if err != nil {
		return nil, 0, err
	}
	return ct, inputType, nil
}

// Encode is the inverse of Decode.
func Encode(ix models.Instruction, scheme models.BalanceScheme) ([]byte, error) {
	out := []byte{byte(ix.Tag())}
	switch v := ix.(type) {
	case models.Initialize:
		return append(out, v.Receiver[:]...), nil

	case models.Deposit:
		out = binary.LittleEndian.AppendUint64(out, v.Amount)
		if scheme == models.SchemePlaintext {
			return out, nil
		}
		return appendCiphertext(out, v.Ciphertext, v.InputType), nil

	case models.Withdraw:
		return binary.LittleEndian.AppendUint64(out, v.Amount), nil

	case models.DelegatedExecute:
		out = append(out, v.IntentHash[:]...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(v.Signature)))
		out = append(out, v.Signature...)
		out = binary.LittleEndian.AppendUint64(out, v.Amount)
		if scheme == models.SchemePlaintext {
			return out, nil
		}
		return appendCiphertext(out, v.Ciphertext, v.InputType), nil

	case models.RegisterIntentKey:
		out = append(out, byte(v.Scheme))
		return append(out, v.PublicKey[:]...), nil

	default:
		return nil, fmt.Errorf("%w: cannot encode %T", models.ErrInvalidArgument, ix)
	}
}

func appendCiphertext(out, ct []byte, inputType uint8) []byte {
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ct)))
	out = append(out, ct...)
	return append(out, inputType)
}
