package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/confidential-vault/internal/logger"
	"github.com/MKhiriev/confidential-vault/models"
)

const accountsTable = "accounts"

var accountColumns = []string{"pubkey", "lamports", "owner", "data"}

type sqlAccountStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLAccountStore returns an [AccountStore] backed by db. The schema must
// already be migrated.
func NewSQLAccountStore(db *DB, log *logger.Logger) AccountStore {
	return &sqlAccountStore{db: db, logger: log, now: time.Now}
}

func (s *sqlAccountStore) Begin(ctx context.Context) (AccountTx, error) {
	tx, err := s.db.BeginTx(ctx, s.db.txOptions)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlAccountStore.Begin").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	return &sqlAccountTx{store: s, tx: tx}, nil
}

func (s *sqlAccountStore) GetAccount(ctx context.Context, key models.AccountID) (models.Account, error) {
	query, args, err := s.selectAccount(key, false)
	if err != nil {
		return models.Account{}, err
	}
	return scanAccount(key, s.db.QueryRowContext(ctx, query, args...))
}

func (s *sqlAccountStore) Classify(err error) ErrorClassification {
	return s.db.errorClassificator.Classify(err)
}

func (s *sqlAccountStore) Close() error {
	return s.db.Close()
}

func (s *sqlAccountStore) selectAccount(key models.AccountID, forUpdate bool) (string, []any, error) {
	builder := s.db.builder().
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"pubkey": key.String()})
	if forUpdate && s.db.lockRows {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "sqlAccountStore.selectAccount").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (s *sqlAccountStore) upsertAccount(acc models.Account) (string, []any, error) {
	if acc.Lamports > math.MaxInt64 {
		return "", nil, fmt.Errorf("%w: %d", ErrLamportsOutOfRange, acc.Lamports)
	}

	data := acc.Data
	if data == nil {
		data = []byte{}
	}

	query, args, err := s.db.builder().
		Insert(accountsTable).
		Columns("pubkey", "lamports", "owner", "data", "updated_at").
		Values(acc.Key.String(), int64(acc.Lamports), acc.Owner.String(), data, s.now().UTC()).
		Suffix("ON CONFLICT (pubkey) DO UPDATE SET " +
			"lamports = excluded.lamports, " +
			"owner = excluded.owner, " +
			"data = excluded.data, " +
			"updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		s.logger.Err(err).Str("func", "sqlAccountStore.upsertAccount").Msg("error building query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type sqlAccountTx struct {
	store *sqlAccountStore
	tx    *sql.Tx
	done  bool
}

func (t *sqlAccountTx) GetForUpdate(ctx context.Context, key models.AccountID) (models.Account, error) {
	if t.done {
		return models.Account{}, ErrTxDone
	}
	query, args, err := t.store.selectAccount(key, true)
	if err != nil {
		return models.Account{}, err
	}
	return scanAccount(key, t.tx.QueryRowContext(ctx, query, args...))
}

func (t *sqlAccountTx) Put(ctx context.Context, acc models.Account) error {
	if t.done {
		return ErrTxDone
	}
	query, args, err := t.store.upsertAccount(acc)
	if err != nil {
		return err
	}
	if _, err = t.tx.ExecContext(ctx, query, args...); err != nil {
		t.store.logger.Err(err).Str("func", "sqlAccountTx.Put").
			Str("pubkey", acc.Key.String()).Msg("error upserting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *sqlAccountTx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	if err := t.tx.Commit(); err != nil {
		t.store.logger.Err(err).Str("func", "sqlAccountTx.Commit").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (t *sqlAccountTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback()
}

func scanAccount(key models.AccountID, row *sql.Row) (models.Account, error) {
	var (
		pubkey   string
		lamports int64
		owner    string
		data     []byte
	)
	err := row.Scan(&pubkey, &lamports, &owner, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{Key: key}, nil
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ownerID, err := models.ParseAccountID(owner)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: owner: %w", ErrScanningRow, err)
	}
	if lamports < 0 {
		return models.Account{}, fmt.Errorf("%w: negative lamports", ErrScanningRow)
	}

	return models.Account{
		Key:      key,
		Lamports: uint64(lamports),
		Owner:    ownerID,
		Data:     data,
	}, nil
}
