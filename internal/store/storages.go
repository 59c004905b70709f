package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/confidential-vault/internal/config"
	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/migrations"
)

// NewAccountStore connects the backend selected by cfg.Driver and, for the
// relational ones, migrates the schema.
func NewAccountStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (AccountStore, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Info().Str("func", "NewAccountStore").Msg("using in-memory account store")
		return NewMemoryStore(), nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Err(err).Str("func", "NewAccountStore").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return NewSQLAccountStore(db, log), nil
}
