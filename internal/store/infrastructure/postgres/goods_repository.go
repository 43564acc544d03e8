package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type GoodsRepository struct {
	querier database.Querier
}

func NewGoodsRepository(querier database.Querier) *GoodsRepository {
	return &GoodsRepository{
		querier: querier,
	}
}

func (gr *GoodsRepository) GetItemByName(ctx context.Context, name string) (domain.MerchItem, error) {
	findItemSQL := `SELECT id, name, price FROM merch WHERE name = $1`

	var item domain.MerchItem
	err := gr.querier.QueryRow(ctx, findItemSQL, name).Scan(&item.ID, &item.Name, &item.Price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MerchItem{}, &domain.GoodNotFoundError{Msg: fmt.Sprintf("good %s not found", name)}
		}

		return domain.MerchItem{}, fmt.Errorf("failed to find good: %w", database.ClassifyError(err))
	}

	return item, nil
}

func (gr *GoodsRepository) ListCatalog(ctx context.Context) ([]domain.MerchItem, error) {
	listSQL := `SELECT id, name, price FROM merch ORDER BY price, name`

	rows, err := gr.querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	items := make([]domain.MerchItem, 0)
	for rows.Next() {
		var item domain.MerchItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", database.ClassifyError(err))
	}

	return items, nil
}
