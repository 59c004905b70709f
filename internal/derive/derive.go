// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package derive computes program-derived addresses: deterministic account
// addresses that no private key can sign for, so only the owning program may
// authorize them.
//
// An address is sha256(seed_1 | ... | seed_n | program_id | "ProgramDerivedAddress")
// and is accepted only if the digest does not decode as an Ed25519 point.
// FindProgramAddress appends a one-byte salt (the bump) and searches it from
// 255 downward until the digest falls off the curve.
package derive

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/confidential-vault/models"
)

const (
	// MaxSeeds bounds the number of seeds, the bump included.
	MaxSeeds = 16
	// MaxSeedLength bounds every single seed.
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"

	defaultCacheSize = 4096
)

// Namespace tags of the vault's derived accounts.
var (
	SeedConfig      = []byte("executor")
	SeedVault       = []byte("vault")
	SeedParticipant = []byte("user_deposit")
	SeedIntentKey   = []byte("intent_key")
	SeedUsedIntent  = []byte("used_intent")
)

var (
	ErrMaxSeedLengthExceeded = errors.New("seed exceeds maximum length")
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrOnCurve               = errors.New("derived address lies on the ed25519 curve")
	ErrNoViableBump          = errors.New("unable to find a viable bump seed")
)

// Address is a derived address together with the bump that produced it.
type Address struct {
	Key  models.AccountID
	Bump uint8
}

// SignerSeeds returns seeds followed by the bump, the form the ledger host
// expects when the program signs for the address.
func (a Address) SignerSeeds(seeds ...[]byte) [][]byte {
	out := make([][]byte, 0, len(seeds)+1)
	out = append(out, seeds...)
	return append(out, []byte{a.Bump})
}

// CreateProgramAddress hashes seeds (the bump, if any, already appended) with
// programID. It fails if the digest is a valid curve point.
func CreateProgramAddress(seeds [][]byte, programID models.AccountID) (models.AccountID, error) {
	if len(seeds) > MaxSeeds {
		return models.AccountID{}, fmt.Errorf("%w: %d > %d", ErrTooManySeeds, len(seeds), MaxSeeds)
	}
	h := sha256.New()
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return models.AccountID{}, fmt.Errorf("%w: seed %d is %d bytes", ErrMaxSeedLengthExceeded, i, len(seed))
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var key models.AccountID
	copy(key[:], h.Sum(nil))
	if IsOnCurve(key[:]) {
		return models.AccountID{}, ErrOnCurve
	}
	return key, nil
}

// FindProgramAddress searches the bump from 255 down to 1 and returns the
// first off-curve address.
func FindProgramAddress(seeds [][]byte, programID models.AccountID) (Address, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump > 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		key, err := CreateProgramAddress(withBump, programID)
		switch {
		case err == nil:
			return Address{Key: key, Bump: uint8(bump)}, nil
		case errors.Is(err, ErrOnCurve):
			continue
		default:
			return Address{}, err
		}
	}
	return Address{}, ErrNoViableBump
}

// IsOnCurve reports whether b is the compressed encoding of an Ed25519 point.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// Deriver derives the vault's accounts for one program and memoizes results.
type Deriver struct {
	programID models.AccountID
	cache     *lru.Cache[string, Address]
}

// NewDeriver returns a Deriver with an LRU cache of the given size. A
// non-positive size selects the default.
func NewDeriver(programID models.AccountID, cacheSize int) (*Deriver, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, Address](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating derivation cache: %w", err)
	}
	return &Deriver{programID: programID, cache: cache}, nil
}

// ProgramID returns the program the deriver derives for.
func (d *Deriver) ProgramID() models.AccountID {
	return d.programID
}

// Find is a cached [FindProgramAddress] for the deriver's program.
func (d *Deriver) Find(seeds ...[]byte) (Address, error) {
	key := cacheKey(seeds)
	if addr, ok := d.cache.Get(key); ok {
		return addr, nil
	}
	addr, err := FindProgramAddress(seeds, d.programID)
	if err != nil {
		return Address{}, err
	}
	d.cache.Add(key, addr)
	return addr, nil
}

func (d *Deriver) Config() (Address, error) {
	return d.Find(SeedConfig)
}

func (d *Deriver) Vault() (Address, error) {
	return d.Find(SeedVault)
}

func (d *Deriver) Participant(owner models.AccountID) (Address, error) {
	return d.Find(SeedParticipant, owner[:])
}

func (d *Deriver) IntentKey(owner models.AccountID) (Address, error) {
	return d.Find(SeedIntentKey, owner[:])
}

func (d *Deriver) UsedIntent(intentHash [32]byte) (Address, error) {
	return d.Find(SeedUsedIntent, intentHash[:])
}

func cacheKey(seeds [][]byte) string {
	var sb strings.Builder
	for _, seed := range seeds {
		sb.WriteByte(byte(len(seed)))
		sb.Write(seed)
	}
	return sb.String()
}
