package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type Purchaser struct{}

func NewPurchaser() *Purchaser {
	return &Purchaser{}
}

func (p *Purchaser) ProcessPurchase(ctx context.Context, executor database.QueryExecuter, userID int, item domain.MerchItem) (domain.Order, error) {
	debitSQL := `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, item.Price, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to update user balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.Order{}, &domain.InsufficientBalanceError{Msg: "insufficient balance"}
	}

	insertOrderSQL := `INSERT INTO merch_orders (owner, merch) VALUES ($1, $2) RETURNING id`

	order := domain.Order{
		OwnerID:  userID,
		ItemID:   item.ID,
		ItemName: item.Name,
	}

	err = executor.QueryRow(ctx, insertOrderSQL, userID, item.ID).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return order, nil
}
