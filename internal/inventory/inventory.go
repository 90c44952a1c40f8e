// Package inventory is the Omni Arena stock counter list: a few items with a
// quantity stepper bounded to [0, 50] and a reset back to the seed counts.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/backalley/internal/model"
	"github.com/sandeepkv93/backalley/internal/storage"
)

var ErrAmbiguousItem = errors.New("inventory: ambiguous item name")

func Seed() []model.InventoryItem {
	return []model.InventoryItem{
		model.NewInventoryItem("VR Headsets", 8, "Check lenses & foam daily"),
		model.NewInventoryItem("Controllers", 16, "Keep pairs charged in cabinet"),
		model.NewInventoryItem("Trackers", 16, "Label per station for easy swaps"),
		model.NewInventoryItem("Harnesses", 8, "Inspect straps before each session"),
	}
}

type Service struct {
	repo storage.InventoryRepository
	seed []model.InventoryItem
	now  func() time.Time
}

// NewService validates seed and loads it into repo.
func NewService(ctx context.Context, repo storage.InventoryRepository, seed []model.InventoryItem) (*Service, error) {
	if repo == nil {
		return nil, errors.New("inventory: nil repository")
	}
	for _, item := range seed {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("inventory seed %q: %w", item.Name, err)
		}
	}
	s := &Service{
		repo: repo,
		seed: append([]model.InventoryItem(nil), seed...),
		now:  time.Now,
	}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) List(ctx context.Context) ([]model.InventoryItem, error) {
	rows, err := s.repo.ListItems(ctx, storage.InventoryListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	out := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

// Find resolves an id, an exact name or a unique name prefix, ignoring case.
func (s *Service) Find(ctx context.Context, ref string) (model.InventoryItem, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.InventoryItem{}, storage.ErrNotFound
	}
	if row, err := s.repo.GetItem(ctx, ref); err == nil {
		return fromRow(row), nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return model.InventoryItem{}, err
	}

	rows, err := s.repo.ListItems(ctx, storage.InventoryListFilter{NamePrefix: ref})
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("find inventory %q: %w", ref, err)
	}
	for _, row := range rows {
		if strings.EqualFold(row.Name, ref) {
			return fromRow(row), nil
		}
	}
	switch len(rows) {
	case 0:
		return model.InventoryItem{}, fmt.Errorf("%w: %s", storage.ErrNotFound, ref)
	case 1:
		return fromRow(rows[0]), nil
	default:
		return model.InventoryItem{}, fmt.Errorf("%w: %s", ErrAmbiguousItem, ref)
	}
}

// Adjust steps the quantity by delta, pinned to the stepper range. A step
// past either bound leaves the quantity at that bound.
func (s *Service) Adjust(ctx context.Context, id string, delta int) (model.InventoryItem, error) {
	row, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	next := model.ClampQuantity(row.Quantity + delta)
	if next == row.Quantity {
		return fromRow(row), nil
	}
	return s.write(ctx, row, next)
}

func (s *Service) Set(ctx context.Context, id string, quantity int) (model.InventoryItem, error) {
	if err := model.CheckQuantity(quantity); err != nil {
		return model.InventoryItem{}, err
	}
	row, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	return s.write(ctx, row, quantity)
}

// Reset restores every item to its seed quantity.
func (s *Service) Reset(ctx context.Context) error {
	at := s.now()
	rows := make([]storage.InventoryItem, 0, len(s.seed))
	for i, item := range s.seed {
		rows = append(rows, storage.InventoryItem{
			ID:        item.ID,
			Name:      item.Name,
			Notes:     item.Notes,
			Quantity:  item.Quantity,
			Position:  i,
			UpdatedAt: at,
		})
	}
	if err := s.repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("reset inventory: %w", err)
	}
	return nil
}

func (s *Service) write(ctx context.Context, row storage.InventoryItem, quantity int) (model.InventoryItem, error) {
	if err := s.repo.UpdateQuantity(ctx, row.ID, quantity, s.now()); err != nil {
		return model.InventoryItem{}, fmt.Errorf("update %s: %w", row.Name, err)
	}
	row.Quantity = quantity
	return fromRow(row), nil
}

func fromRow(row storage.InventoryItem) model.InventoryItem {
	return model.InventoryItem{
		ID:       row.ID,
		Name:     row.Name,
		Quantity: row.Quantity,
		Notes:    row.Notes,
	}
}
