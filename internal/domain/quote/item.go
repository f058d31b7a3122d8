package quote

import "strings"

const MaxItemNameLength = 255

// Item is an opaque cost line; TotalCost is always UnitCost × Quantity.
type Item struct {
	Name      string
	Quantity  float64
	UnitCost  Money
	TotalCost Money
}

func NewItem(name string, quantity float64, unitCost Money) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, newValidationError("items.name", "must not be empty")
	}
	if len(name) > MaxItemNameLength {
		return Item{}, newValidationError("items.name", "exceeds maximum length")
	}
	if quantity <= 0 {
		return Item{}, newValidationError("items.quantity", "must be greater than zero")
	}
	if unitCost.IsNegative() {
		return Item{}, newValidationError("items.unit_cost", "must not be negative")
	}
	return Item{
		Name:      name,
		Quantity:  quantity,
		UnitCost:  unitCost,
		TotalCost: unitCost.Times(quantity),
	}, nil
}

type Costs struct {
	LaborCost Money
	PartsCost Money
	Discount  Money
	TaxAmount Money
}

func (c Costs) validate() error {
	switch {
	case c.LaborCost.IsNegative():
		return newValidationError("labor_cost", "must not be negative")
	case c.PartsCost.IsNegative():
		return newValidationError("parts_cost", "must not be negative")
	case c.Discount.IsNegative():
		return newValidationError("discount", "must not be negative")
	case c.TaxAmount.IsNegative():
		return newValidationError("tax_amount", "must not be negative")
	}
	return nil
}

func itemsTotal(items []Item) Money {
	total := NewMoney(0)
	for _, it := range items {
		total = total.Add(it.TotalCost)
	}
	return total
}

// Subtotal is items plus labor and parts, before discount and tax.
func Subtotal(items []Item, c Costs) Money {
	return itemsTotal(items).Add(c.LaborCost).Add(c.PartsCost)
}

func GrandTotal(items []Item, c Costs) Money {
	return Subtotal(items, c).Sub(c.Discount).Add(c.TaxAmount)
}

func validatePricing(items []Item, c Costs) error {
	if err := c.validate(); err != nil {
		return err
	}
	if Subtotal(items, c).Sub(c.Discount).IsNegative() {
		return newValidationError("discount", "must not exceed the subtotal")
	}
	return nil
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
