package application

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type UserInfoCase struct {
	userRepository domain.UserInfoRepository
	txManager      database.TxManager
}

func NewUserInfoCase(userRepository domain.UserInfoRepository, txManager database.TxManager) *UserInfoCase {
	return &UserInfoCase{
		userRepository: userRepository,
		txManager:      txManager,
	}
}

// GetUserInfo reads balance, orders and transfers inside one snapshot, so a transfer committing
// mid-read is either fully visible or not at all.
func (uic *UserInfoCase) GetUserInfo(ctx context.Context, userID int) (domain.UserInfo, error) {
	var (
		balance   int
		orders    []domain.Order
		transfers []domain.Transfer
	)

	err := uic.txManager.WithinSnapshot(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		var err error

		balance, err = uic.userRepository.FetchBalance(ctx, executor, userID)
		if err != nil {
			return err
		}

		orders, err = uic.userRepository.FetchOrders(ctx, executor, userID)
		if err != nil {
			return err
		}

		transfers, err = uic.userRepository.FetchTransfers(ctx, executor, userID)
		return err
	})
	if err != nil {
		return domain.UserInfo{}, err
	}

	return domain.UserInfo{
		Balance:             balance,
		Inventory:           countInventory(orders),
		CoinTransferHistory: splitTransferHistory(userID, transfers),
	}, nil
}

func countInventory(orders []domain.Order) map[string]int {
	inventory := make(map[string]int)
	for _, order := range orders {
		inventory[order.ItemName]++
	}

	return inventory
}

func splitTransferHistory(userID int, transfers []domain.Transfer) domain.CoinTransferHistory {
	history := domain.CoinTransferHistory{
		IncomingTransfers:  make([]domain.DirectTransfer, 0),
		OutcomingTransfers: make([]domain.DirectTransfer, 0),
	}

	for _, transfer := range transfers {
		if transfer.SenderID == userID {
			history.OutcomingTransfers = append(history.OutcomingTransfers, domain.DirectTransfer{
				TargetName: transfer.RecipientName,
				Amount:     transfer.Amount,
			})
		}

		if transfer.RecipientID == userID {
			history.IncomingTransfers = append(history.IncomingTransfers, domain.DirectTransfer{
				TargetName: transfer.SenderName,
				Amount:     transfer.Amount,
			})
		}
	}

	return history
}
