package postgres

import (
	"context"
	"testing"

	dbmocks "github.com/Lexv0lk/merch-ledger/gen/mocks/database"
	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/golang/mock/gomock"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeeder_SeedIfEmpty(t *testing.T) {
	t.Parallel()

	catalog := []domain.MerchItem{
		{Name: "t-shirt", Price: 80},
		{Name: "cup", Price: 20},
	}

	type testCase struct {
		name string

		expectedSeeded bool
		expectedErr    error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "empty table gets seeded",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("LOCK TABLE merch IN EXCLUSIVE MODE").
					WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO merch").
					WithArgs("t-shirt", 80).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO merch").
					WithArgs("cup", 20).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedSeeded: true,
		},
		{
			name: "populated table left alone",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("LOCK TABLE merch IN EXCLUSIVE MODE").
					WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(10))
			},
			expectedSeeded: false,
		},
		{
			name: "lock error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("LOCK TABLE merch IN EXCLUSIVE MODE").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "insert error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("LOCK TABLE merch IN EXCLUSIVE MODE").
					WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
				mock.ExpectQuery("SELECT COUNT").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO merch").
					WithArgs("t-shirt", 80).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			txManager := dbmocks.NewMockTxManager(ctrl)
			txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, txFn database.TxFunc) error {
					return txFn(ctx, mock)
				})

			seeder := NewCatalogSeeder(txManager, catalog)
			seeded, err := seeder.SeedIfEmpty(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, seeded)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSeeded, seeded)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
