package order_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-system/internal/menu"
	"restaurant-system/internal/order"
	"restaurant-system/internal/staff"
)

// The demo scenario end to end: one drink, one dish with two extras, two
// observers, three status changes.
func TestDemoScenario(t *testing.T) {
	drinks := menu.DrinkFactory{}
	dishes := menu.DishFactory{}

	coca := drinks.CreateItem("COCA")
	burger := dishes.CreateItem("HAMBURGUESA")
	loaded := menu.WithBacon(menu.WithCheese(burger))

	assert.Equal(t, "Hamburguesa + Queso + Tocino", loaded.Name())
	assert.Equal(t, "17.00", loaded.Price().StringFixed(2))

	var kitchenOut, cashierOut bytes.Buffer
	o := order.New()
	o.Subscribe(staff.NewKitchen(&kitchenOut))
	o.Subscribe(staff.NewCashier(&cashierOut))

	o.AddItem(loaded)
	o.AddItem(coca)

	statuses := []order.Status{order.StatusInPreparation, order.StatusReady, order.StatusDelivered}
	for _, s := range statuses {
		o.SetStatus(s)
	}

	kitchenLines := nonEmptyLines(kitchenOut.String())
	cashierLines := nonEmptyLines(cashierOut.String())
	require.Len(t, kitchenLines, 3)
	require.Len(t, cashierLines, 3)
	for i, s := range statuses {
		assert.Contains(t, kitchenLines[i], "[KITCHEN]")
		assert.Contains(t, kitchenLines[i], string(s))
		assert.Contains(t, cashierLines[i], "[CASHIER]")
		assert.Contains(t, cashierLines[i], string(s))
	}

	assert.Equal(t, order.StatusDelivered, o.Status())
	assert.Equal(t, "20.00", o.Total().StringFixed(2))
	assert.Len(t, o.History(), 3)
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}
