package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type UserInfoRepository struct{}

func NewUserInfoRepository() *UserInfoRepository {
	return &UserInfoRepository{}
}

func (uir *UserInfoRepository) FetchBalance(ctx context.Context, querier database.Querier, userID int) (int, error) {
	balanceSQL := `SELECT balance FROM users WHERE id = $1`

	var balance int
	err := querier.QueryRow(ctx, balanceSQL, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}

	return balance, nil
}

func (uir *UserInfoRepository) FetchOrders(ctx context.Context, querier database.Querier, userID int) ([]domain.Order, error) {
	ordersSQL := `SELECT mo.id, mo.merch, m.name FROM merch_orders mo
JOIN merch m ON mo.merch = m.id
WHERE mo.owner = $1
ORDER BY mo.id`

	rows, err := querier.Query(ctx, ordersSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order := domain.Order{OwnerID: userID}
		if err := rows.Scan(&order.ID, &order.ItemID, &order.ItemName); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// FetchTransfers returns transfers sent or received by the user, newest first.
func (uir *UserInfoRepository) FetchTransfers(ctx context.Context, querier database.Querier, userID int) ([]domain.Transfer, error) {
	transfersSQL := `SELECT t.id, t.sender, s.username, t.recipient, r.username, t.amount FROM transactions t
JOIN users s ON t.sender = s.id
JOIN users r ON t.recipient = r.id
WHERE t.sender = $1 OR t.recipient = $1
ORDER BY t.id DESC`

	rows, err := querier.Query(ctx, transfersSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]domain.Transfer, 0)
	for rows.Next() {
		var tr domain.Transfer
		err := rows.Scan(&tr.ID, &tr.SenderID, &tr.SenderName, &tr.RecipientID, &tr.RecipientName, &tr.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}

		transfers = append(transfers, tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch transfers: %w", err)
	}

	return transfers, nil
}
