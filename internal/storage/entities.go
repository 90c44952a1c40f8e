package storage

import "time"

type InventoryItem struct {
	ID        string
	Name      string
	Notes     string
	Quantity  int
	Position  int
	UpdatedAt time.Time
}

type InventoryListFilter struct {
	NamePrefix string
	Limit      int
	Offset     int
}
