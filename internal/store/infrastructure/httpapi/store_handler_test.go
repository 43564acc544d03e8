package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apimocks "github.com/Lexv0lk/merch-ledger/gen/mocks/httpapi"
	logmocks "github.com/Lexv0lk/merch-ledger/gen/mocks/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type storeDeps struct {
	userInfoGetter *apimocks.MockUserInfoGetter
	coinsSender    *apimocks.MockCoinsSender
	itemBuyer      *apimocks.MockItemBuyer
	catalogLister  *apimocks.MockCatalogLister
	logger         *logmocks.MockLogger
}

func newStoreDeps(ctrl *gomock.Controller) *storeDeps {
	return &storeDeps{
		userInfoGetter: apimocks.NewMockUserInfoGetter(ctrl),
		coinsSender:    apimocks.NewMockCoinsSender(ctrl),
		itemBuyer:      apimocks.NewMockItemBuyer(ctrl),
		catalogLister:  apimocks.NewMockCatalogLister(ctrl),
		logger:         logmocks.NewMockLogger(ctrl),
	}
}

func (d *storeDeps) handler() *StoreHandler {
	return NewStoreHandler(d.userInfoGetter, d.coinsSender, d.itemBuyer, d.catalogLister, d.logger)
}

var alice = domain.UserIdentity{ID: 1, Username: "alice"}

func newAuthorizedContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(IdentityKey, alice)

	return c, writer
}

func TestStoreHandler_GetInfo(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, d *storeDeps)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful get info",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.userInfoGetter.EXPECT().GetUserInfo(gomock.Any(), 1).Return(domain.UserInfo{
					Balance:   100,
					Inventory: map[string]int{"t-shirt": 2, "cup": 1},
					CoinTransferHistory: domain.CoinTransferHistory{
						IncomingTransfers:  []domain.DirectTransfer{{TargetName: "user1", Amount: 50}},
						OutcomingTransfers: []domain.DirectTransfer{{TargetName: "user2", Amount: 25}},
					},
				}, nil)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response infoResponse
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
				assert.Equal(t, infoResponse{
					Coins: 100,
					Inventory: []inventoryItem{
						{Name: "cup", Quantity: 1},
						{Name: "t-shirt", Quantity: 2},
					},
					TransferHistory: transferHistory{
						Received: []receivedTransfer{{From: "user1", Amount: 50}},
						Sent:     []sentTransfer{{To: "user2", Amount: 25}},
					},
				}, response)
			},
		},
		{
			name:           "empty history serializes as empty lists",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.userInfoGetter.EXPECT().GetUserInfo(gomock.Any(), 1).Return(domain.UserInfo{
					Balance:   1000,
					Inventory: map[string]int{},
				}, nil)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t,
					`{"coins":1000,"inventory":[],"coinHistory":{"received":[],"sent":[]}}`,
					recorder.Body.String())
			},
		},
		{
			name:           "user not found",
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.userInfoGetter.EXPECT().GetUserInfo(gomock.Any(), 1).
					Return(domain.UserInfo{}, &domain.UserNotFoundError{Msg: "user not found"})
			},
		},
		{
			name:           "store unavailable",
			expectedStatus: http.StatusServiceUnavailable,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.userInfoGetter.EXPECT().GetUserInfo(gomock.Any(), 1).
					Return(domain.UserInfo{}, &domain.StoreUnavailableError{Msg: "database is unavailable"})
				d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())
			},
		},
		{
			name:           "internal server error",
			expectedStatus: http.StatusInternalServerError,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.userInfoGetter.EXPECT().GetUserInfo(gomock.Any(), 1).
					Return(domain.UserInfo{}, assert.AnError)
				d.logger.EXPECT().Error(gomock.Any(), gomock.Any())
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newStoreDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newAuthorizedContext(http.MethodGet, "/api/info", "")
			d.handler().GetInfo(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestStoreHandler_SendCoin(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		body           string
		expectedStatus int

		prepareFn func(t *testing.T, d *storeDeps)
	}

	tests := []testCase{
		{
			name:           "successful transfer",
			body:           `{"toUser":"bob","amount":10}`,
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.coinsSender.EXPECT().SendCoins(gomock.Any(), alice, "bob", 10).
					Return(domain.Transfer{ID: 1, SenderID: 1, RecipientID: 2, Amount: 10}, nil)
			},
		},
		{
			name:           "missing recipient",
			body:           `{"amount":10}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, d *storeDeps) {},
		},
		{
			name:           "non numeric amount",
			body:           `{"toUser":"bob","amount":"ten"}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, d *storeDeps) {},
		},
		{
			name:           "zero amount rejected by engine",
			body:           `{"toUser":"bob","amount":0}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.coinsSender.EXPECT().SendCoins(gomock.Any(), alice, "bob", 0).
					Return(domain.Transfer{}, &domain.InvalidArgumentsError{Msg: "amount must be positive"})
			},
		},
		{
			name:           "insufficient balance",
			body:           `{"toUser":"bob","amount":5000}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.coinsSender.EXPECT().SendCoins(gomock.Any(), alice, "bob", 5000).
					Return(domain.Transfer{}, &domain.InsufficientBalanceError{Msg: "insufficient balance"})
			},
		},
		{
			name:           "conflict after retries",
			body:           `{"toUser":"bob","amount":10}`,
			expectedStatus: http.StatusServiceUnavailable,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.coinsSender.EXPECT().SendCoins(gomock.Any(), alice, "bob", 10).
					Return(domain.Transfer{}, &domain.ConflictError{Msg: "concurrent update conflict"})
				d.logger.EXPECT().Warn(gomock.Any(), gomock.Any())
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newStoreDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newAuthorizedContext(http.MethodPost, "/api/sendCoin", tt.body)
			d.handler().SendCoin(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestStoreHandler_BuyItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		item           string
		expectedStatus int

		prepareFn func(t *testing.T, d *storeDeps)
	}

	tests := []testCase{
		{
			name:           "successful purchase",
			item:           "t-shirt",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.itemBuyer.EXPECT().BuyItem(gomock.Any(), 1, "t-shirt").
					Return(domain.Order{ID: 1, OwnerID: 1, ItemID: 1, ItemName: "t-shirt"}, nil)
			},
		},
		{
			name:           "unknown item",
			item:           "yacht",
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.itemBuyer.EXPECT().BuyItem(gomock.Any(), 1, "yacht").
					Return(domain.Order{}, &domain.GoodNotFoundError{Msg: "good yacht not found"})
			},
		},
		{
			name:           "insufficient balance",
			item:           "pink-hoody",
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, d *storeDeps) {
				d.itemBuyer.EXPECT().BuyItem(gomock.Any(), 1, "pink-hoody").
					Return(domain.Order{}, &domain.InsufficientBalanceError{Msg: "insufficient balance"})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := newStoreDeps(ctrl)
			tt.prepareFn(t, d)

			c, writer := newAuthorizedContext(http.MethodGet, "/api/buy/"+tt.item, "")
			c.Params = gin.Params{{Key: ItemNameKey, Value: tt.item}}
			d.handler().BuyItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestStoreHandler_ListMerch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)

	d := newStoreDeps(ctrl)
	d.catalogLister.EXPECT().ListCatalog(gomock.Any()).Return([]domain.MerchItem{
		{ID: 4, Name: "pen", Price: 10},
		{ID: 1, Name: "t-shirt", Price: 80},
	}, nil)

	c, writer := newAuthorizedContext(http.MethodGet, "/api/merch", "")
	d.handler().ListMerch(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	assert.JSONEq(t, `[{"name":"pen","price":10},{"name":"t-shirt","price":80}]`, writer.Body.String())
}
