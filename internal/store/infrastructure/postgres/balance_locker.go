package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type BalanceLocker struct{}

func NewBalanceLocker() *BalanceLocker {
	return &BalanceLocker{}
}

func (bl *BalanceLocker) LockUserBalance(ctx context.Context, querier database.Querier, userID int) (int, error) {
	lockUserSQL := `SELECT balance FROM users WHERE id = $1 FOR UPDATE`

	var balance int
	err := querier.QueryRow(ctx, lockUserSQL, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return 0, fmt.Errorf("failed to lock user row: %w", err)
	}

	return balance, nil
}

// LockPairBalances locks both rows in ascending id order and returns balances keyed by user id.
// Missing users are simply absent from the result.
func (bl *BalanceLocker) LockPairBalances(ctx context.Context, querier database.Querier, firstID, secondID int) (map[int]int, error) {
	lockUsersSQL := `SELECT id, balance FROM users WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := querier.Query(ctx, lockUsersSQL, []int{firstID, secondID})
	if err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}
	defer rows.Close()

	balances := make(map[int]int, 2)
	for rows.Next() {
		var id, balance int
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}

		balances[id] = balance
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock user rows: %w", err)
	}

	return balances, nil
}
