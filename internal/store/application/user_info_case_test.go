package application

import (
	"context"
	"testing"

	dbmocks "github.com/Lexv0lk/merch-ledger/gen/mocks/database"
	storemocks "github.com/Lexv0lk/merch-ledger/gen/mocks/store"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestUserInfoCase_GetUserInfo(t *testing.T) {
	t.Parallel()

	type deps struct {
		userRepository *storemocks.MockUserInfoRepository
		txManager      *dbmocks.MockTxManager
	}

	type testCase struct {
		name   string
		userId int

		prepareFn func(t *testing.T, d *deps)

		expectedInfo domain.UserInfo
		expectedErr  error
	}

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	tests := []testCase{
		{
			name:   "full account view",
			userId: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.userRepository.EXPECT().FetchBalance(gomock.Any(), nil, 1).
					Return(870, nil)
				d.userRepository.EXPECT().FetchOrders(gomock.Any(), nil, 1).
					Return([]domain.Order{
						{ID: 1, OwnerID: 1, ItemID: 1, ItemName: "t-shirt"},
						{ID: 2, OwnerID: 1, ItemID: 4, ItemName: "pen"},
						{ID: 3, OwnerID: 1, ItemID: 4, ItemName: "pen"},
					}, nil)
				d.userRepository.EXPECT().FetchTransfers(gomock.Any(), nil, 1).
					Return([]domain.Transfer{
						{ID: 9, SenderID: 3, SenderName: "carol", RecipientID: 1, RecipientName: "alice", Amount: 50},
						{ID: 5, SenderID: 1, SenderName: "alice", RecipientID: 2, RecipientName: "bob", Amount: 70},
					}, nil)
			},
			expectedInfo: domain.UserInfo{
				Balance:   870,
				Inventory: map[string]int{"t-shirt": 1, "pen": 2},
				CoinTransferHistory: domain.CoinTransferHistory{
					IncomingTransfers:  []domain.DirectTransfer{{TargetName: "carol", Amount: 50}},
					OutcomingTransfers: []domain.DirectTransfer{{TargetName: "bob", Amount: 70}},
				},
			},
		},
		{
			name:   "fresh account",
			userId: 2,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.userRepository.EXPECT().FetchBalance(gomock.Any(), nil, 2).
					Return(1000, nil)
				d.userRepository.EXPECT().FetchOrders(gomock.Any(), nil, 2).
					Return([]domain.Order{}, nil)
				d.userRepository.EXPECT().FetchTransfers(gomock.Any(), nil, 2).
					Return([]domain.Transfer{}, nil)
			},
			expectedInfo: domain.UserInfo{
				Balance:   1000,
				Inventory: map[string]int{},
				CoinTransferHistory: domain.CoinTransferHistory{
					IncomingTransfers:  []domain.DirectTransfer{},
					OutcomingTransfers: []domain.DirectTransfer{},
				},
			},
		},
		{
			name:   "user not found",
			userId: 404,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.userRepository.EXPECT().FetchBalance(gomock.Any(), nil, 404).
					Return(0, &domain.UserNotFoundError{Msg: "user not found"})
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:   "orders fetch error",
			userId: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.userRepository.EXPECT().FetchBalance(gomock.Any(), nil, 1).
					Return(100, nil)
				d.userRepository.EXPECT().FetchOrders(gomock.Any(), nil, 1).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:   "transfers fetch error",
			userId: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.userRepository.EXPECT().FetchBalance(gomock.Any(), nil, 1).
					Return(100, nil)
				d.userRepository.EXPECT().FetchOrders(gomock.Any(), nil, 1).
					Return([]domain.Order{}, nil)
				d.userRepository.EXPECT().FetchTransfers(gomock.Any(), nil, 1).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:   "store unavailable",
			userId: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinSnapshot(gomock.Any(), gomock.Any()).
					Return(&domain.StoreUnavailableError{Msg: "database is unavailable"})
			},
			expectedErr: &domain.StoreUnavailableError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				userRepository: storemocks.NewMockUserInfoRepository(ctrl),
				txManager:      dbmocks.NewMockTxManager(ctrl),
			}

			tt.prepareFn(t, d)

			userInfoCase := NewUserInfoCase(d.userRepository, d.txManager)
			info, err := userInfoCase.GetUserInfo(t.Context(), tt.userId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.UserInfo{}, info)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedInfo, info)
			}
		})
	}
}

func TestSplitTransferHistory(t *testing.T) {
	t.Parallel()

	transfers := []domain.Transfer{
		{SenderID: 1, SenderName: "alice", RecipientID: 2, RecipientName: "bob", Amount: 10},
		{SenderID: 2, SenderName: "bob", RecipientID: 1, RecipientName: "alice", Amount: 3},
		{SenderID: 1, SenderName: "alice", RecipientID: 3, RecipientName: "carol", Amount: 7},
	}

	history := splitTransferHistory(1, transfers)

	assert.Equal(t, []domain.DirectTransfer{{TargetName: "bob", Amount: 3}}, history.IncomingTransfers)
	assert.Equal(t, []domain.DirectTransfer{
		{TargetName: "bob", Amount: 10},
		{TargetName: "carol", Amount: 7},
	}, history.OutcomingTransfers)
}
