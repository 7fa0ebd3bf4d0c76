package catalog

import (
	"fmt"

	"antshop/models"
	"antshop/utils"
)

const (
	GelID   = "gel-xyz"
	TrapID  = "trap-abc"
	SprayID = "spray-123"
)

// Catalog is the fixed, read-only list of products plus the delivery windows
// offered at checkout.
type Catalog struct {
	items []models.CatalogItem
	byID  map[string]int
	slots []models.DeliverySlot
}

// New builds a catalog, rejecting duplicate ids and empty slot lists.
func New(items []models.CatalogItem, slots []models.DeliverySlot) (*Catalog, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("catalog: no delivery slots configured")
	}
	c := &Catalog{
		items: make([]models.CatalogItem, len(items)),
		byID:  make(map[string]int, len(items)),
		slots: append([]models.DeliverySlot(nil), slots...),
	}
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog: item %d has no id", i)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", item.ID)
		}
		item.Price = utils.MinorToMajor(item.PriceMinor)
		c.items[i] = item
		c.byID[item.ID] = i
	}
	return c, nil
}

// Default returns the built-in three-product catalog.
func Default() *Catalog {
	c, err := New(defaultItems(), defaultSlots())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Items returns the products in catalog order.
func (c *Catalog) Items() []models.CatalogItem {
	return append([]models.CatalogItem(nil), c.items...)
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (models.CatalogItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.CatalogItem{}, false
	}
	return c.items[i], true
}

// FirstOtherThan returns the first product, in catalog order, whose id differs from id.
func (c *Catalog) FirstOtherThan(id string) (models.CatalogItem, bool) {
	for _, item := range c.items {
		if item.ID != id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// DeliverySlots returns the ordered slot labels. Index 0 is offered to users as "1".
func (c *Catalog) DeliverySlots() []models.DeliverySlot {
	return append([]models.DeliverySlot(nil), c.slots...)
}

// Slot resolves a 1-based slot number.
func (c *Catalog) Slot(n int) (models.DeliverySlot, bool) {
	if n < 1 || n > len(c.slots) {
		return "", false
	}
	return c.slots[n-1], true
}

// Require fails when any of ids is missing from the catalog.
func (c *Catalog) Require(ids ...string) error {
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			return fmt.Errorf("catalog: required product %q is missing", id)
		}
	}
	return nil
}
