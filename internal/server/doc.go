// Package server runs the vault's listeners: the REST API and the gRPC
// health endpoint. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
