package domain

import (
	"context"
)

type GoodsRepository interface {
	GetItemByName(ctx context.Context, name string) (MerchItem, error)
	ListCatalog(ctx context.Context) ([]MerchItem, error)
}

type CatalogSeeder interface {
	SeedIfEmpty(ctx context.Context) (bool, error)
}

type MerchItem struct {
	ID    int
	Name  string
	Price int
}

// DefaultCatalog is loaded once, when the merch table is empty.
var DefaultCatalog = []MerchItem{
	{Name: "t-shirt", Price: 80},
	{Name: "cup", Price: 20},
	{Name: "book", Price: 50},
	{Name: "pen", Price: 10},
	{Name: "powerbank", Price: 200},
	{Name: "hoody", Price: 300},
	{Name: "umbrella", Price: 200},
	{Name: "socks", Price: 10},
	{Name: "wallet", Price: 50},
	{Name: "pink-hoody", Price: 500},
}
