package validators

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/MKhiriev/confidential-vault/internal/crypto"
	"github.com/MKhiriev/confidential-vault/models"
)

// Field names accepted by [IntentValidator].
const (
	// FieldSignature requires a non-empty signature.
	FieldSignature = "signature"

	// FieldIntentHash requires the claimed hash to equal the canonical digest
	// of the intent's contents.
	FieldIntentHash = "intent_hash"

	// FieldAuthenticity verifies the signature over the hash under the
	// intent key.
	FieldAuthenticity = "authenticity"

	// FieldReplay rejects intents that were already executed.
	FieldReplay = "replay"
)

const intentDomain = "confidential-vault/intent/v1"

// IntentDigest is the canonical hash a participant signs to authorise a
// delegated execution:
//
//	sha256(domain | program | user | receiver | amount LE | input_type | sha256(ciphertext))
func IntentDigest(programID, user, receiver models.AccountID, amount uint64, inputType uint8, ciphertext []byte) [32]byte {
	ctHash := sha256.Sum256(ciphertext)

	h := sha256.New()
	h.Write([]byte(intentDomain))
	h.Write(programID[:])
	h.Write(user[:])
	h.Write(receiver[:])
	_ = binary.Write(h, binary.LittleEndian, amount)
	h.Write([]byte{inputType})
	h.Write(ctHash[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// IntentValidator authenticates delegated-execute intents.
type IntentValidator struct {
	verifier crypto.Verifier
}

func NewIntentValidator(verifier crypto.Verifier) Validator {
	return &IntentValidator{verifier: verifier}
}

// Validate accepts models.Intent or *models.Intent. Without fields every check
// runs, cheapest first.
func (v *IntentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Intent:
		return v.validateIntent(ctx, value, fields...)
	case *models.Intent:
		return v.validateIntent(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IntentValidator) validateIntent(_ context.Context, intent models.Intent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSignature, FieldIntentHash, FieldAuthenticity, FieldReplay}
	}

	for _, f := range fields {
		switch f {
		case FieldSignature:
			if len(intent.Signature) == 0 {
				return ErrEmptySignature
			}
		case FieldIntentHash:
			want := IntentDigest(intent.ProgramID, intent.User, intent.Receiver, intent.Amount, intent.InputType, intent.Ciphertext)
			if want != intent.Hash {
				return ErrIntentHashMismatch
			}
		case FieldAuthenticity:
			if intent.Key.Owner != intent.User {
				return ErrIntentKeyOwner
			}
			if err := v.verifier.Verify(intent.Key.Scheme, intent.Key.PublicKey, intent.Hash[:], intent.Signature); err != nil {
				return err
			}
		case FieldReplay:
			if intent.Consumed {
				return ErrIntentReplayed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
