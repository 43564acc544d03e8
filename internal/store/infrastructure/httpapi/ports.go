package httpapi

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type UserInfoGetter interface {
	GetUserInfo(ctx context.Context, userID int) (domain.UserInfo, error)
}

type CoinsSender interface {
	SendCoins(ctx context.Context, sender domain.UserIdentity, toUsername string, amount int) (domain.Transfer, error)
}

type ItemBuyer interface {
	BuyItem(ctx context.Context, userID int, itemName string) (domain.Order, error)
}

type CatalogLister interface {
	ListCatalog(ctx context.Context) ([]domain.MerchItem, error)
}
