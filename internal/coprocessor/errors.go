package coprocessor

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/confidential-vault/models"
)

// Every error below wraps [models.ErrExternalService] unless noted.
var (
	ErrShortReturnData = fmt.Errorf("%w: coprocessor returned fewer than 16 bytes", models.ErrExternalService)
	ErrBadRequest      = fmt.Errorf("%w: coprocessor rejected request", models.ErrExternalService)
	ErrUnauthorized    = fmt.Errorf("%w: coprocessor rejected credentials", models.ErrExternalService)
	ErrUnavailable     = fmt.Errorf("%w: coprocessor unavailable", models.ErrExternalService)
	ErrInternal        = fmt.Errorf("%w: coprocessor internal error", models.ErrExternalService)

	// ErrCiphertextUnsupported wraps [models.ErrInvalidArgument]: the plaintext
	// scheme has no ciphertexts.
	ErrCiphertextUnsupported = fmt.Errorf("%w: ciphertext inputs are not supported by the plaintext scheme", models.ErrInvalidArgument)

	errEmptyAddress = errors.New("empty address")
)
