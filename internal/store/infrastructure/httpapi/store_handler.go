package httpapi

import (
	"net/http"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	ItemNameKey = "item"
)

type StoreHandler struct {
	userInfoGetter UserInfoGetter
	coinsSender    CoinsSender
	itemBuyer      ItemBuyer
	catalogLister  CatalogLister
	logger         logging.Logger
}

func NewStoreHandler(
	userInfoGetter UserInfoGetter,
	coinsSender CoinsSender,
	itemBuyer ItemBuyer,
	catalogLister CatalogLister,
	logger logging.Logger,
) *StoreHandler {
	return &StoreHandler{
		userInfoGetter: userInfoGetter,
		coinsSender:    coinsSender,
		itemBuyer:      itemBuyer,
		catalogLister:  catalogLister,
		logger:         logger,
	}
}

func (h *StoreHandler) GetInfo(c *gin.Context) {
	identity := identityFromContext(c)

	info, err := h.userInfoGetter.GetUserInfo(c.Request.Context(), identity.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newInfoResponse(info))
}

func (h *StoreHandler) SendCoin(c *gin.Context) {
	var body sendCoinRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Errors: "invalid request body"})
		return
	}

	_, err := h.coinsSender.SendCoins(c.Request.Context(), identityFromContext(c), body.ToUsername, body.Amount)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *StoreHandler) BuyItem(c *gin.Context) {
	itemName := c.Param(ItemNameKey)

	_, err := h.itemBuyer.BuyItem(c.Request.Context(), identityFromContext(c).ID, itemName)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *StoreHandler) ListMerch(c *gin.Context) {
	items, err := h.catalogLister.ListCatalog(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newCatalogResponse(items))
}
