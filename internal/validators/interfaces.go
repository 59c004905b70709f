// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inputs before they reach the ledger.
//
// Transaction envelopes are checked for shape and signer consistency before
// any signature is verified. Delegated-execution intents are checked against
// their canonical digest, the registered intent key of the user and the
// replay index.
package validators

import "context"

// Validator checks a value of the type it was built for. fields narrows the
// check to named parts; unknown names yield [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
