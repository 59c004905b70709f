package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/confidential-vault/internal/logger"
)

// DB wraps a relational connection together with what differs between the
// supported SQL dialects.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	lockRows           bool
	txOptions          *sql.TxOptions
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect reports the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
