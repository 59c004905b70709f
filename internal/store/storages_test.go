package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
)

func TestNewAccountStore_Memory(t *testing.T) {
	s, err := NewAccountStore(context.Background(), config.Storage{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, s.Close())
}

func TestNewAccountStore_UnknownDriver(t *testing.T) {
	_, err := NewAccountStore(context.Background(), config.Storage{Driver: "cassandra"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
