package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/database"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type CatalogSeeder struct {
	txManager database.TxManager
	catalog   []domain.MerchItem
}

func NewCatalogSeeder(txManager database.TxManager, catalog []domain.MerchItem) *CatalogSeeder {
	return &CatalogSeeder{
		txManager: txManager,
		catalog:   catalog,
	}
}

// SeedIfEmpty inserts the catalog only when the merch table has no rows. The table lock serializes
// concurrent bootstraps, so at most one of them seeds.
func (cs *CatalogSeeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false

	err := cs.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		seeded = false

		_, err := executor.Exec(ctx, `LOCK TABLE merch IN EXCLUSIVE MODE`)
		if err != nil {
			return fmt.Errorf("failed to lock merch table: %w", err)
		}

		var count int
		err = executor.QueryRow(ctx, `SELECT COUNT(*) FROM merch`).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count merch rows: %w", err)
		}

		if count > 0 {
			return nil
		}

		insertItemSQL := `INSERT INTO merch (name, price) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
		for _, item := range cs.catalog {
			_, err = executor.Exec(ctx, insertItemSQL, item.Name, item.Price)
			if err != nil {
				return fmt.Errorf("failed to insert merch item %s: %w", item.Name, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}
