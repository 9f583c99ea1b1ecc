package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quiz-board/internal/util"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execMerge runs an Oracle MERGE. Two sessions inserting the same key at once
// make one of them fail with ORA-00001; re-running it then takes the
// WHEN MATCHED branch.
func execMerge(ctx context.Context, exec DBTX, query string, args ...any) error {
	_, err := exec.ExecContext(ctx, query, args...)
	if util.IsUniqueViolation(err) {
		_, err = exec.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}
