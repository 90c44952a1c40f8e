package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	MinQuantity = 0
	MaxQuantity = 50
)

var ErrQuantityOutOfRange = errors.New("model: quantity out of range")

var inventoryNamespace = uuid.MustParse("9c0e6d1b-2f8a-4e57-b3c4-71a5d2f08e66")

type InventoryItem struct {
	ID       string
	Name     string
	Quantity int
	Notes    string
}

func NewInventoryItem(name string, quantity int, notes string) InventoryItem {
	return InventoryItem{
		ID:       InventoryID(name),
		Name:     name,
		Quantity: quantity,
		Notes:    notes,
	}
}

func InventoryID(name string) string {
	return uuid.NewSHA1(inventoryNamespace, []byte(strings.ToLower(strings.TrimSpace(name)))).String()
}

func (i InventoryItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return errors.New("model: inventory id is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("model: inventory name is required")
	}
	if err := CheckQuantity(i.Quantity); err != nil {
		return err
	}
	return nil
}

func CheckQuantity(q int) error {
	if q < MinQuantity || q > MaxQuantity {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrQuantityOutOfRange, q, MinQuantity, MaxQuantity)
	}
	return nil
}

// ClampQuantity pins q into the stepper range.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
