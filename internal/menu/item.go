package menu

import "github.com/shopspring/decimal"

// Item is anything on the menu with a display name and a price.
type Item interface {
	Name() string
	Price() decimal.Decimal
}

// Drink is a base beverage item. Immutable after construction.
type Drink struct {
	name  string
	price decimal.Decimal
}

func NewDrink(name string, price decimal.Decimal) Drink {
	return Drink{name: name, price: price}
}

func (d Drink) Name() string           { return d.name }
func (d Drink) Price() decimal.Decimal { return d.price }

// Dish is a base main-course item. Immutable after construction.
type Dish struct {
	name  string
	price decimal.Decimal
}

func NewDish(name string, price decimal.Decimal) Dish {
	return Dish{name: name, price: price}
}

func (d Dish) Name() string           { return d.name }
func (d Dish) Price() decimal.Decimal { return d.price }
