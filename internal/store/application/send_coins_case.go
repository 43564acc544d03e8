package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type SendCoinsCase struct {
	txManager            database.TxManager
	userFinder           domain.UserFinder
	balanceLocker        domain.UserBalanceLocker
	transactionProceeder domain.TransactionProceeder
}

func NewSendCoinsCase(
	txManager database.TxManager,
	userFinder domain.UserFinder,
	balanceLocker domain.UserBalanceLocker,
	transactionProceeder domain.TransactionProceeder,
) *SendCoinsCase {
	return &SendCoinsCase{
		txManager:            txManager,
		userFinder:           userFinder,
		balanceLocker:        balanceLocker,
		transactionProceeder: transactionProceeder,
	}
}

func (sc *SendCoinsCase) SendCoins(ctx context.Context, sender domain.UserIdentity, toUsername string, amount int) (domain.Transfer, error) {
	if amount <= 0 {
		return domain.Transfer{}, &domain.InvalidArgumentsError{Msg: "amount must be positive"}
	}

	if amount > domain.MaxBalance {
		return domain.Transfer{}, &domain.LimitExceededError{Msg: fmt.Sprintf("amount must not exceed %d", domain.MaxBalance)}
	}

	if sender.Username != "" && sender.Username == toUsername {
		return domain.Transfer{}, &domain.InvalidArgumentsError{Msg: "cannot send coins to yourself"}
	}

	recipient, err := sc.userFinder.GetUserByName(ctx, toUsername)
	if err != nil {
		return domain.Transfer{}, err
	}

	if recipient.ID == sender.ID {
		return domain.Transfer{}, &domain.InvalidArgumentsError{Msg: "cannot send coins to yourself"}
	}

	var transfer domain.Transfer

	err = sc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		balances, err := sc.balanceLocker.LockPairBalances(ctx, executor, sender.ID, recipient.ID)
		if err != nil {
			return err
		}

		senderBalance, found := balances[sender.ID]
		if !found {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", sender.ID)}
		}

		recipientBalance, found := balances[recipient.ID]
		if !found {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", recipient.Username)}
		}

		if senderBalance < amount {
			return &domain.InsufficientBalanceError{Msg: "insufficient balance"}
		}

		if recipientBalance > domain.MaxBalance-amount {
			return &domain.LimitExceededError{Msg: fmt.Sprintf("balance of %s would exceed %d", recipient.Username, domain.MaxBalance)}
		}

		transfer, err = sc.transactionProceeder.ProceedTransaction(ctx, executor, sender.ID, recipient.ID, amount)
		return err
	})
	if err != nil {
		return domain.Transfer{}, err
	}

	transfer.SenderName = sender.Username
	transfer.RecipientName = recipient.Username

	return transfer, nil
}
