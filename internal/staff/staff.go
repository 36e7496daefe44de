// Package staff holds the stations that watch an order: the kitchen fires
// the dishes, the cashier settles the bill. Both are stateless observers
// that render each notification as one tagged line.
package staff

import (
	"fmt"
	"io"
	"os"

	"restaurant-system/internal/order"
)

type Kitchen struct {
	out io.Writer
}

func NewKitchen(out io.Writer) *Kitchen {
	if out == nil {
		out = os.Stdout
	}
	return &Kitchen{out: out}
}

func (k *Kitchen) OnStatusChange(c order.StatusChange) {
	fmt.Fprintf(k.out, "  [KITCHEN] %s\n", c.Message())
}

type Cashier struct {
	out io.Writer
}

func NewCashier(out io.Writer) *Cashier {
	if out == nil {
		out = os.Stdout
	}
	return &Cashier{out: out}
}

func (c *Cashier) OnStatusChange(ch order.StatusChange) {
	fmt.Fprintf(c.out, "  [CASHIER] %s\n", ch.Message())
}
