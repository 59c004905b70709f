package ledger

import (
	"encoding/binary"
	"slices"
	"sync"

	"github.com/MKhiriev/confidential-vault/models"
)

const defaultLockStripes = 256

// lockTable serialises invocations that share an account. Keys hash onto a
// fixed set of mutexes which are always taken in ascending order.
type lockTable struct {
	stripes []sync.Mutex
}

func newLockTable(n int) *lockTable {
	if n <= 0 {
		n = defaultLockStripes
	}
	return &lockTable{stripes: make([]sync.Mutex, n)}
}

func (t *lockTable) stripe(key models.AccountID) int {
	return int(binary.LittleEndian.Uint64(key[:8]) % uint64(len(t.stripes)))
}

// lock acquires every stripe keys map to and returns the matching unlock.
func (t *lockTable) lock(keys []models.AccountID) func() {
	idx := make([]int, 0, len(keys))
	for _, key := range keys {
		idx = append(idx, t.stripe(key))
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)

	for _, i := range idx {
		t.stripes[i].Lock()
	}
	return func() {
		for j := len(idx) - 1; j >= 0; j-- {
			t.stripes[idx[j]].Unlock()
		}
	}
}
