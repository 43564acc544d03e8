package httpapi

import (
	"sort"

	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

type sendCoinRequestBody struct {
	ToUsername string `json:"toUser" binding:"required"`
	Amount     int    `json:"amount"`
}

type errorResponse struct {
	Errors string `json:"errors"`
}

type infoResponse struct {
	Coins           int             `json:"coins"`
	Inventory       []inventoryItem `json:"inventory"`
	TransferHistory transferHistory `json:"coinHistory"`
}

type transferHistory struct {
	Received []receivedTransfer `json:"received"`
	Sent     []sentTransfer     `json:"sent"`
}

type inventoryItem struct {
	Name     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type receivedTransfer struct {
	From   string `json:"fromUser"`
	Amount int    `json:"amount"`
}

type sentTransfer struct {
	To     string `json:"toUser"`
	Amount int    `json:"amount"`
}

type merchItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func newInfoResponse(info domain.UserInfo) infoResponse {
	res := infoResponse{
		Coins:     info.Balance,
		Inventory: make([]inventoryItem, 0, len(info.Inventory)),
		TransferHistory: transferHistory{
			Received: make([]receivedTransfer, 0, len(info.CoinTransferHistory.IncomingTransfers)),
			Sent:     make([]sentTransfer, 0, len(info.CoinTransferHistory.OutcomingTransfers)),
		},
	}

	for name, quantity := range info.Inventory {
		res.Inventory = append(res.Inventory, inventoryItem{Name: name, Quantity: quantity})
	}

	sort.Slice(res.Inventory, func(i, j int) bool {
		return res.Inventory[i].Name < res.Inventory[j].Name
	})

	for _, tr := range info.CoinTransferHistory.IncomingTransfers {
		res.TransferHistory.Received = append(res.TransferHistory.Received, receivedTransfer{From: tr.TargetName, Amount: tr.Amount})
	}

	for _, tr := range info.CoinTransferHistory.OutcomingTransfers {
		res.TransferHistory.Sent = append(res.TransferHistory.Sent, sentTransfer{To: tr.TargetName, Amount: tr.Amount})
	}

	return res
}

func newCatalogResponse(items []domain.MerchItem) []merchItem {
	res := make([]merchItem, 0, len(items))
	for _, item := range items {
		res = append(res, merchItem{Name: item.Name, Price: item.Price})
	}

	return res
}
