package domain

import "github.com/Lexv0lk/merch-ledger/internal/pkg/database"

// Transient store failures are produced by the database layer; the aliases let callers match them
// alongside the domain errors below.
type (
	ConflictError         = database.ConflictError
	StoreUnavailableError = database.StoreUnavailableError
)

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region LimitExceededError

type LimitExceededError struct {
	Msg string
}

func (e *LimitExceededError) Error() string {
	return e.Msg
}

func (e *LimitExceededError) Is(target error) bool {
	_, ok := target.(*LimitExceededError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region GoodNotFoundError

type GoodNotFoundError struct {
	Msg string
}

func (e *GoodNotFoundError) Error() string {
	return e.Msg
}

func (e *GoodNotFoundError) Is(target error) bool {
	_, ok := target.(*GoodNotFoundError)
	return ok
}

//endregion
