package menu

import "github.com/shopspring/decimal"

// Extra wraps a single item and adds a fixed surcharge and a name suffix.
// Extras stack in any order and multiplicity; wrapping twice charges twice.
type Extra struct {
	item      Item
	suffix    string
	surcharge decimal.Decimal
}

func WithExtra(item Item, suffix string, surcharge decimal.Decimal) Item {
	return Extra{item: item, suffix: suffix, surcharge: surcharge}
}

func WithCheese(item Item) Item {
	return WithExtra(item, "Queso", decimal.NewFromInt(2))
}

func WithBacon(item Item) Item {
	return WithExtra(item, "Tocino", decimal.NewFromInt(3))
}

func (e Extra) Name() string           { return e.item.Name() + " + " + e.suffix }
func (e Extra) Price() decimal.Decimal { return e.item.Price().Add(e.surcharge) }
