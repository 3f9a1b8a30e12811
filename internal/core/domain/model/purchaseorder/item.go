package purchaseorder

import (
	"fmt"
	"strings"
)

// Item is one line of a purchase order.
type Item struct {
	name     string
	quantity int
}

// NewItem returns an Item or an error wrapping ErrInvalidItems.
func NewItem(name string, quantity int) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("%w: item name is empty", ErrInvalidItems)
	}
	if quantity < 1 {
		return Item{}, fmt.Errorf("%w: quantity of %q is %d, must be at least 1", ErrInvalidItems, name, quantity)
	}
	return Item{name: name, quantity: quantity}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

// TotalQuantity is the derived order quantity: the sum of all item quantities.
func TotalQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.quantity
	}
	return total
}

// validateItems rejects empty lists and items that bypassed NewItem.
func validateItems(items []Item) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidItems)
	}
	for idx, item := range items {
		if strings.TrimSpace(item.name) == "" || item.quantity < 1 {
			return fmt.Errorf("%w: item %d must have a name and a quantity of at least 1", ErrInvalidItems, idx)
		}
	}
	return nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
