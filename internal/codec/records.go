// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec holds the fixed little-endian layouts of every record the
// vault program stores in account data.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

// Record sizes in bytes.
const (
	DelegateConfigSize          = 32 + 32 + 1
	ParticipantConfidentialSize = 32 + models.HandleLength
	ParticipantPlaintextSize    = 32 + 8
	IntentKeySize               = 32 + 1 + 32
	UsedIntentSize              = 32
)

// ParticipantSize returns the record size used by scheme.
func ParticipantSize(scheme models.BalanceScheme) int {
	if scheme == models.SchemePlaintext {
		return ParticipantPlaintextSize
	}
	return ParticipantConfidentialSize
}

func EncodeDelegateConfig(cfg models.DelegateConfig) []byte {
	data := make([]byte, DelegateConfigSize)
	var offset int
	putAccountID(data, cfg.Receiver, &offset)
	putAccountID(data, cfg.Authority, &offset)
	putBool(data, cfg.Initialized, &offset)
	return data
}

// DecodeDelegateConfig reads a configuration record. A record with a clear
// initialized flag decodes without error; callers decide whether that is
// acceptable.
func DecodeDelegateConfig(data []byte) (models.DelegateConfig, error) {
	if len(data) < DelegateConfigSize {
		return models.DelegateConfig{}, fmt.Errorf("%w: delegate config needs %d bytes, got %d", models.ErrStructuralDecode, DelegateConfigSize, len(data))
	}
	var cfg models.DelegateConfig
	copy(cfg.Receiver[:], data[0:32])
	copy(cfg.Authority[:], data[32:64])
	cfg.Initialized = data[64] != 0
	return cfg, nil
}

// EncodeParticipant lays out rec for scheme. Under the plaintext scheme the
// balance handle carries the amount in its low eight bytes.
func EncodeParticipant(rec models.ParticipantRecord, scheme models.BalanceScheme) []byte {
	data := make([]byte, ParticipantSize(scheme))
	var offset int
	putAccountID(data, rec.Owner, &offset)
	if scheme == models.SchemePlaintext {
		putUint64(data, binary.LittleEndian.Uint64(rec.Balance[:8]), &offset)
		return data
	}
	putBytes(data, rec.Balance[:], &offset)
	return data
}

func DecodeParticipant(data []byte, scheme models.BalanceScheme) (models.ParticipantRecord, error) {
	size := ParticipantSize(scheme)
	if len(data) < size {
		return models.ParticipantRecord{}, fmt.Errorf("%w: participant record needs %d bytes, got %d", models.ErrStructuralDecode, size, len(data))
	}
	var rec models.ParticipantRecord
	copy(rec.Owner[:], data[0:32])
	if scheme == models.SchemePlaintext {
		copy(rec.Balance[:8], data[32:40])
		return rec, nil
	}
	copy(rec.Balance[:], data[32:32+models.HandleLength])
	return rec, nil
}

func EncodeIntentKey(key models.IntentKey) []byte {
	data := make([]byte, IntentKeySize)
	var offset int
	putAccountID(data, key.Owner, &offset)
	putUint8(data, uint8(key.Scheme), &offset)
	putBytes(data, key.PublicKey[:], &offset)
	return data
}

func DecodeIntentKey(data []byte) (models.IntentKey, error) {
	r := NewReader(data)
	owner, err := r.AccountID("intent key owner")
	if err != nil {
		return models.IntentKey{}, err
	}
	scheme, err := r.Uint8("intent key scheme")
	if err != nil {
		return models.IntentKey{}, err
	}
	pub, err := r.Fixed32("intent key public key")
	if err != nil {
		return models.IntentKey{}, err
	}
	return models.IntentKey{Owner: owner, Scheme: models.KeyScheme(scheme), PublicKey: pub}, nil
}

func EncodeUsedIntent(u models.UsedIntent) []byte {
	return u.Owner.Bytes()
}

func DecodeUsedIntent(data []byte) (models.UsedIntent, error) {
	owner, err := NewReader(data).AccountID("used intent owner")
	return models.UsedIntent{Owner: owner}, err
}
