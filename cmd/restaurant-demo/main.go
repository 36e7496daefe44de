package main

import (
	"fmt"
	"os"

	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/menu"
	"restaurant-system/internal/order"
	"restaurant-system/internal/staff"
	"restaurant-system/internal/tui"
)

// The demo is a fixed scenario: build two items via factories, stack two
// extras on the dish, then drive one order through three status changes
// with the kitchen and the cashier watching.
func main() {
	lg := logger.New("restaurant-demo")
	lg.Info("demo_started", nil)

	fmt.Println(tui.Banner("SISTEMA DE RESTAURANTE"))
	fmt.Println()

	fmt.Println(tui.Header(1, "FACTORY METHOD - creating products"))
	drinks := menu.DrinkFactory{}
	dishes := menu.DishFactory{}

	coca := drinks.CreateItem("COCA")
	burger := dishes.CreateItem("HAMBURGUESA")
	fmt.Println(tui.ItemLine("created", coca))
	fmt.Println(tui.ItemLine("created", burger))
	fmt.Println()

	fmt.Println(tui.Header(2, "DECORATOR - adding extras"))
	loaded := menu.WithBacon(menu.WithCheese(burger))
	fmt.Println(tui.ItemLine("original", burger))
	fmt.Println(tui.ItemLine("decorated", loaded))
	fmt.Println()

	fmt.Println(tui.Header(3, "OBSERVER - status notifications"))
	ord := order.New()
	ord.Subscribe(staff.NewKitchen(os.Stdout))
	ord.Subscribe(staff.NewCashier(os.Stdout))

	ord.AddItem(loaded)
	ord.AddItem(coca)

	ord.SetStatus(order.StatusInPreparation)
	ord.SetStatus(order.StatusReady)
	ord.SetStatus(order.StatusDelivered)
	fmt.Println()

	fmt.Println(tui.Receipt(ord))

	lg.Info("demo_finished", map[string]any{
		"order_number": ord.Number(),
		"total":        ord.Total().StringFixed(2),
	})
}
