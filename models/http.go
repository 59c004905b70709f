package models

import "encoding/hex"

// AppInfo describes a running deployment.
type AppInfo struct {
	Version       string        `json:"version"`
	ProgramID     AccountID     `json:"program_id"`
	BalanceScheme BalanceScheme `json:"balance_scheme"`
}

// AirdropRequest asks the development faucet to credit an account.
type AirdropRequest struct {
	PubKey   AccountID `json:"pubkey"`
	Lamports uint64    `json:"lamports"`
}

// AccountResponse is an account as served over HTTP.
type AccountResponse struct {
	Account
	SOL    string `json:"sol"`
	Exists bool   `json:"exists"`
}

// IntentKeyResponse renders an intent key with a readable scheme and a
// hex-encoded public key.
type IntentKeyResponse struct {
	Owner     AccountID `json:"owner"`
	Scheme    string    `json:"scheme"`
	PublicKey string    `json:"public_key"`
}

func NewIntentKeyResponse(key IntentKey) IntentKeyResponse {
	return IntentKeyResponse{
		Owner:     key.Owner,
		Scheme:    key.Scheme.String(),
		PublicKey: hex.EncodeToString(key.PublicKey[:]),
	}
}
