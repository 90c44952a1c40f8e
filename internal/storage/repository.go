package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

type InventoryRepository interface {
	GetItem(ctx context.Context, id string) (InventoryItem, error)
	ListItems(ctx context.Context, filter InventoryListFilter) ([]InventoryItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int, at time.Time) error
	// ReplaceAll swaps the whole inventory for items in one transaction.
	ReplaceAll(ctx context.Context, items []InventoryItem) error
}
