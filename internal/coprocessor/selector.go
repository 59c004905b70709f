// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package coprocessor

import "crypto/sha256"

// Operation names understood by the coprocessor.
const (
	OpNewEuint128 = "new_euint128"
	OpAsEuint128  = "as_euint128"
	OpAdd         = "e_add"
	OpSub         = "e_sub"
	OpGe          = "e_ge"
	OpEq          = "e_eq"
)

// SelectorLength is the size of the operation prefix of every request.
const SelectorLength = 8

// Selector returns sha256("global:" + name)[:8].
func Selector(name string) [SelectorLength]byte {
	sum := sha256.Sum256([]byte("global:" + name))
	var sel [SelectorLength]byte
	copy(sel[:], sum[:SelectorLength])
	return sel
}

var selectorNames = func() map[[SelectorLength]byte]string {
	names := make(map[[SelectorLength]byte]string)
	for _, op := range []string{OpNewEuint128, OpAsEuint128, OpAdd, OpSub, OpGe, OpEq} {
		names[Selector(op)] = op
	}
	return names
}()

// OperationName resolves a selector back to its operation, for servers that
// implement the coprocessor side.
func OperationName(sel [SelectorLength]byte) (string, bool) {
	name, ok := selectorNames[sel]
	return name, ok
}
