package domain

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
)

type UserBalanceLocker interface {
	LockUserBalance(ctx context.Context, querier database.Querier, userID int) (int, error)
	LockPairBalances(ctx context.Context, querier database.Querier, firstID, secondID int) (map[int]int, error)
}

type TransactionProceeder interface {
	ProceedTransaction(ctx context.Context, executor database.QueryExecuter, fromID, toID, amount int) (Transfer, error)
}

type Purchaser interface {
	ProcessPurchase(ctx context.Context, executor database.QueryExecuter, userID int, item MerchItem) (Order, error)
}

type Transfer struct {
	ID            int
	SenderID      int
	SenderName    string
	RecipientID   int
	RecipientName string
	Amount        int
}

type Order struct {
	ID       int
	OwnerID  int
	ItemID   int
	ItemName string
}
