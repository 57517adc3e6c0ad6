package subscriber

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsletter/internal/subscriptions/ports"
)

const defaultSubscriptionTxTimeout = 5 * time.Second

// PostgresTx runs store callbacks inside a READ COMMITTED transaction. Combined
// with UNIQUE(email) this keeps two concurrent submissions for one address
// from both creating a pending row: the loser fails on the constraint.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresTx(db *sql.DB) *PostgresTx {
	return &PostgresTx{db: db}
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(store ports.SubscriberStore) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultSubscriptionTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin subscription transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&PostgresStore{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit subscription transaction: %w", err)
	}
	return nil
}
