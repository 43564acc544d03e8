package application

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type PurchaseCase struct {
	goodsRepository domain.GoodsRepository
	balanceLocker   domain.UserBalanceLocker
	purchaser       domain.Purchaser
	txManager       database.TxManager
}

func NewPurchaseCase(
	goodsRepository domain.GoodsRepository,
	balanceLocker domain.UserBalanceLocker,
	purchaser domain.Purchaser,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		goodsRepository: goodsRepository,
		balanceLocker:   balanceLocker,
		purchaser:       purchaser,
		txManager:       txManager,
	}
}

// BuyItem resolves the item before touching any balance, so unknown items fail without locking.
func (pc *PurchaseCase) BuyItem(ctx context.Context, userID int, itemName string) (domain.Order, error) {
	item, err := pc.goodsRepository.GetItemByName(ctx, itemName)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order

	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		balance, err := pc.balanceLocker.LockUserBalance(ctx, executor, userID)
		if err != nil {
			return err
		}

		if balance < item.Price {
			return &domain.InsufficientBalanceError{Msg: "insufficient balance"}
		}

		order, err = pc.purchaser.ProcessPurchase(ctx, executor, userID, item)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}
