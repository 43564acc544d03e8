package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

const (
	DefaultMaxRetries = 3

	initialRetryInterval = 20 * time.Millisecond
	maxRetryInterval     = 250 * time.Millisecond
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
	WithinSnapshot(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type TxManagerOption func(tm *DelegateTxManager)

func WithMaxRetries(maxRetries uint64) TxManagerOption {
	return func(tm *DelegateTxManager) {
		tm.maxRetries = maxRetries
	}
}

func WithBackOff(newBackOff func() backoff.BackOff) TxManagerOption {
	return func(tm *DelegateTxManager) {
		tm.newBackOff = newBackOff
	}
}

type DelegateTxManager struct {
	txBeginner TxBeginner
	logger     logging.Logger

	maxRetries uint64
	newBackOff func() backoff.BackOff
}

func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger, opts ...TxManagerOption) *DelegateTxManager {
	tm := &DelegateTxManager{
		txBeginner: txBeginner,
		logger:     logger,
		maxRetries: DefaultMaxRetries,
		newBackOff: defaultBackOff,
	}

	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

// WithinTransaction runs txFn in a read committed transaction. Retryable failures re-run txFn from scratch.
func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	return tm.withRetries(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	}, txFn)
}

// WithinSnapshot runs txFn in a read-only repeatable read transaction, so every read observes one snapshot.
func (tm *DelegateTxManager) WithinSnapshot(ctx context.Context, txFn TxFunc) error {
	return tm.withRetries(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, txFn)
}

func (tm *DelegateTxManager) withRetries(ctx context.Context, txOptions pgx.TxOptions, txFn TxFunc) error {
	operation := func() error {
		err := tm.runOnce(ctx, txOptions, txFn)
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(err error, wait time.Duration) {
		tm.logger.Warn("retrying transaction", "error", err.Error(), "wait", wait.String())
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(tm.newBackOff(), tm.maxRetries), ctx)

	return backoff.RetryNotify(operation, policy, notify)
}

func (tm *DelegateTxManager) runOnce(ctx context.Context, txOptions pgx.TxOptions, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, txOptions)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", ClassifyError(err))
	}

	err = txFn(ctx, tx)
	if err != nil {
		tm.rollback(ctx, tx)
		return fmt.Errorf("failed to execute logic within transaction: %w", ClassifyError(err))
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", ClassifyError(err))
	}

	return nil
}

func (tm *DelegateTxManager) rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		tm.logger.Error("failed to rollback transaction", "error", err.Error())
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialRetryInterval
	b.MaxInterval = maxRetryInterval

	return b
}
