package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type TransactionProceeder struct{}

func NewTransactionProceeder() *TransactionProceeder {
	return &TransactionProceeder{}
}

// ProceedTransaction must run inside the caller's transaction. The guarded updates keep the balance bounds
// even if the caller skipped its own checks.
func (tp *TransactionProceeder) ProceedTransaction(ctx context.Context, executor database.QueryExecuter, fromID, toID, amount int) (domain.Transfer, error) {
	debitSQL := `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, amount, fromID)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("failed to update balance for sender: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.Transfer{}, &domain.InsufficientBalanceError{Msg: "insufficient balance"}
	}

	creditSQL := `UPDATE users SET balance = balance + $1 WHERE id = $2 AND balance <= $3 - $1`
	tag, err = executor.Exec(ctx, creditSQL, amount, toID, domain.MaxBalance)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("failed to update balance for recipient: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.Transfer{}, &domain.LimitExceededError{Msg: fmt.Sprintf("recipient balance would exceed %d", domain.MaxBalance)}
	}

	insertTransactionSQL := `INSERT INTO transactions (sender, recipient, amount) VALUES ($1, $2, $3) RETURNING id`

	transfer := domain.Transfer{
		SenderID:    fromID,
		RecipientID: toID,
		Amount:      amount,
	}

	err = executor.QueryRow(ctx, insertTransactionSQL, fromID, toID, amount).Scan(&transfer.ID)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("failed to insert transaction record: %w", err)
	}

	return transfer, nil
}
