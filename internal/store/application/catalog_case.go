package application

import (
	"context"

	"github.com/Lexv0lk/merch-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/merch-ledger/internal/store/domain"
)

type CatalogCase struct {
	goodsRepository domain.GoodsRepository
	catalogSeeder   domain.CatalogSeeder
	logger          logging.Logger
}

func NewCatalogCase(goodsRepository domain.GoodsRepository, catalogSeeder domain.CatalogSeeder, logger logging.Logger) *CatalogCase {
	return &CatalogCase{
		goodsRepository: goodsRepository,
		catalogSeeder:   catalogSeeder,
		logger:          logger,
	}
}

func (cc *CatalogCase) ListCatalog(ctx context.Context) ([]domain.MerchItem, error) {
	return cc.goodsRepository.ListCatalog(ctx)
}

func (cc *CatalogCase) EnsureCatalogSeeded(ctx context.Context) error {
	seeded, err := cc.catalogSeeder.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}

	if seeded {
		cc.logger.Info("merch catalog seeded", "items", len(domain.DefaultCatalog))
	} else {
		cc.logger.Info("merch catalog already present, skipping seed")
	}

	return nil
}
