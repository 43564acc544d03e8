package domain

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
)

const (
	// MaxBalance is the ceiling for any balance, price or transfer amount.
	MaxBalance   = 100_000_000
	StartBalance = 1000
)

type UserFinder interface {
	GetUserByName(ctx context.Context, username string) (User, error)
}

type UserProvisioner interface {
	CreateUserIfAbsent(ctx context.Context, username, passwordHash string) (User, error)
}

type UserPurger interface {
	PurgeUser(ctx context.Context, userID int) error
}

type UserInfoRepository interface {
	FetchBalance(ctx context.Context, querier database.Querier, userID int) (int, error)
	FetchOrders(ctx context.Context, querier database.Querier, userID int) ([]Order, error)
	FetchTransfers(ctx context.Context, querier database.Querier, userID int) ([]Transfer, error)
}

type User struct {
	ID           int
	Username     string
	PasswordHash string
	Balance      int
}

// UserIdentity is the caller resolved by the API layer.
type UserIdentity struct {
	ID       int
	Username string
}

type UserInfo struct {
	Balance             int
	Inventory           map[string]int
	CoinTransferHistory CoinTransferHistory
}

type CoinTransferHistory struct {
	IncomingTransfers  []DirectTransfer
	OutcomingTransfers []DirectTransfer
}

type DirectTransfer struct {
	TargetName string
	Amount     int
}
