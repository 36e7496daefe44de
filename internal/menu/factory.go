package menu

import "github.com/shopspring/decimal"

// Factory creates a menu item from a category code. Unknown codes fall back
// to the category default, never an error.
type Factory interface {
	CreateItem(code string) Item
}

type menuEntry struct {
	name  string
	price decimal.Decimal
}

// DrinkFactory owns the fixed drink price table.
type DrinkFactory struct{}

var drinkMenu = map[string]menuEntry{
	"COCA": {name: "Coca-Cola", price: decimal.NewFromInt(3)},
	"JUGO": {name: "Jugo Natural", price: decimal.NewFromInt(4)},
}

var defaultDrink = menuEntry{name: "Agua", price: decimal.NewFromInt(2)}

func (DrinkFactory) CreateItem(code string) Item {
	e, ok := drinkMenu[code]
	if !ok {
		e = defaultDrink
	}
	return NewDrink(e.name, e.price)
}

// DishFactory owns the fixed dish price table.
type DishFactory struct{}

var dishMenu = map[string]menuEntry{
	"HAMBURGUESA": {name: "Hamburguesa", price: decimal.NewFromInt(12)},
	"PIZZA":       {name: "Pizza", price: decimal.NewFromInt(15)},
}

var defaultDish = menuEntry{name: "Ensalada", price: decimal.NewFromInt(8)}

func (DishFactory) CreateItem(code string) Item {
	e, ok := dishMenu[code]
	if !ok {
		e = defaultDish
	}
	return NewDish(e.name, e.price)
}
