package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type UsersRepository struct {
	querier      database.Querier
	txManager    database.TxManager
	startBalance int
}

func NewUsersRepository(querier database.Querier, txManager database.TxManager, startBalance int) *UsersRepository {
	return &UsersRepository{
		querier:      querier,
		txManager:    txManager,
		startBalance: startBalance,
	}
}

func (ur *UsersRepository) GetUserByName(ctx context.Context, username string) (domain.User, error) {
	return selectUserByName(ctx, ur.querier, username)
}

// CreateUserIfAbsent returns the stored row whether or not this call inserted it.
func (ur *UsersRepository) CreateUserIfAbsent(ctx context.Context, username, passwordHash string) (domain.User, error) {
	insertUserSQL := `INSERT INTO users (username, password, balance) VALUES ($1, $2, $3)
ON CONFLICT (username) DO NOTHING
RETURNING id, username, password, balance`

	var user domain.User
	err := ur.querier.QueryRow(ctx, insertUserSQL, username, passwordHash, ur.startBalance).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Balance)

	if err == nil {
		return user, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", database.ClassifyError(err))
	}

	return selectUserByName(ctx, ur.querier, username)
}

func (ur *UsersRepository) PurgeUser(ctx context.Context, userID int) error {
	return ur.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		deleteTransfersSQL := `DELETE FROM transactions WHERE sender = $1 OR recipient = $1`
		_, err := executor.Exec(ctx, deleteTransfersSQL, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user transfers: %w", err)
		}

		deleteOrdersSQL := `DELETE FROM merch_orders WHERE owner = $1`
		_, err = executor.Exec(ctx, deleteOrdersSQL, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user orders: %w", err)
		}

		deleteUserSQL := `DELETE FROM users WHERE id = $1`
		tag, err := executor.Exec(ctx, deleteUserSQL, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		} else if tag.RowsAffected() == 0 {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return nil
	})
}

func selectUserByName(ctx context.Context, querier database.Querier, username string) (domain.User, error) {
	findUserSQL := `SELECT id, username, password, balance FROM users WHERE username = $1`

	var user domain.User
	err := querier.QueryRow(ctx, findUserSQL, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", username)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", database.ClassifyError(err))
	}

	return user, nil
}
