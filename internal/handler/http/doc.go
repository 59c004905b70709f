// Package http is the REST surface of the vault.
//
// Clients submit signed transaction envelopes and read ledger state here.
// Every request gets a trace id, an access-log line and, when the client asks
// for it, gzip compression. Service errors are mapped onto status codes by
// their kind; the response body is always a JSON [utils.ErrorResponse].
package http
