package ledger

// AccountStorageOverhead is charged on top of every account's data length.
const AccountStorageOverhead = 128

// ExemptionThreshold is how many years of rent make an account exempt.
const ExemptionThreshold = 2

// Rent prices account storage.
type Rent struct {
	LamportsPerByteYear uint64
}

// MinimumBalance returns the lamports an account of space data bytes must hold
// to be rent exempt.
func (r Rent) MinimumBalance(space uint64) uint64 {
	return (AccountStorageOverhead + space) * r.LamportsPerByteYear * ExemptionThreshold
}
