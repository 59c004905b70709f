package models

// Intent is a delegated-execute request as the validator sees it: the signed
// claims, the key they must verify under and whether the intent was already
// consumed.
type Intent struct {
	ProgramID  AccountID
	User       AccountID
	Receiver   AccountID
	Amount     uint64
	InputType  uint8
	Ciphertext []byte

	Hash      [32]byte
	Signature []byte

	Key      IntentKey
	Consumed bool
}
