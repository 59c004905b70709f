package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"wrapped deadlock", fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"lock not available", pgError(pgerrcode.LockNotAvailable), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"check violation", pgError(pgerrcode.CheckViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	var c SQLiteErrorClassifier

	if got := c.Classify(fmt.Errorf("commit: %w", sqlite3.Error{Code: sqlite3.ErrBusy})); got != Retryable {
		t.Errorf("busy: got %v, want Retryable", got)
	}
	if got := c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}); got != Retryable {
		t.Errorf("locked: got %v, want Retryable", got)
	}
	if got := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}); got != NonRetryable {
		t.Errorf("constraint: got %v, want NonRetryable", got)
	}
	if got := c.Classify(errors.New("boom")); got != NonRetryable {
		t.Errorf("plain: got %v, want NonRetryable", got)
	}
}
