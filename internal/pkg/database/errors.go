package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

//region ConflictError

// ConflictError reports transient lock or serialization contention. The whole unit of work may be retried.
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Msg + ": " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

//endregion

//region StoreUnavailableError

type StoreUnavailableError struct {
	Msg string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Msg + ": " + e.Err.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	_, ok := target.(*StoreUnavailableError)
	return ok
}

//endregion

// ClassifyError turns driver errors that are worth retrying into ConflictError or StoreUnavailableError.
// Any other error is returned unchanged.
func ClassifyError(err error) error {
	if err == nil || IsRetryable(err) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case serializationFailureCode, deadlockDetectedCode:
			return &ConflictError{Msg: "concurrent update conflict", Err: err}
		}

		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.SafeToRetry(err) {
		return &StoreUnavailableError{Msg: "database is unavailable", Err: err}
	}

	return err
}

func IsRetryable(err error) bool {
	return errors.Is(err, &ConflictError{}) || errors.Is(err, &StoreUnavailableError{})
}
