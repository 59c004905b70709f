package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

var (
	ErrInvalidSignature  = fmt.Errorf("%w: invalid signature", models.ErrAuthorization)
	ErrUnsupportedScheme = fmt.Errorf("%w: unsupported key scheme", models.ErrInvalidArgument)
	ErrInvalidPublicKey  = fmt.Errorf("%w: malformed public key", models.ErrInvalidArgument)

	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
