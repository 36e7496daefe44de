package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-system/internal/menu"
)

// Status is an open string: the demo uses the constants below, but
// SetStatus accepts anything and transitions are not validated.
type Status string

const (
	StatusNew           Status = "NUEVO"
	StatusInPreparation Status = "EN PREPARACIÓN"
	StatusReady         Status = "LISTO"
	StatusDelivered     Status = "ENTREGADO"
)

// StatusChange is the event delivered to observers on every status change.
type StatusChange struct {
	OrderNumber string
	OldStatus   Status
	NewStatus   Status
	ChangedAt   time.Time
}

func (c StatusChange) Message() string {
	return fmt.Sprintf("order %s changed to: %s", c.OrderNumber, c.NewStatus)
}

// Observer is notified synchronously whenever the order status changes.
type Observer interface {
	OnStatusChange(StatusChange)
}

// Order holds the items, current status and subscribed observers for one
// customer transaction. Not safe for concurrent use; the demo is
// single-threaded.
type Order struct {
	number    string
	items     []menu.Item
	status    Status
	history   []StatusChange
	observers []Observer
}

func New() *Order {
	return &Order{
		number: newNumber(),
		status: StatusNew,
	}
}

// newNumber derives a short printable order number from a fresh uuid.
func newNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (o *Order) Number() string { return o.number }

// Subscribe appends the observer to the notification list. No duplicate
// check: subscribing twice means being notified twice.
func (o *Order) Subscribe(obs Observer) {
	o.observers = append(o.observers, obs)
}

// Unsubscribe removes the first matching observer, if subscribed.
func (o *Order) Unsubscribe(obs Observer) {
	for i, cur := range o.observers {
		if cur == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

func (o *Order) AddItem(item menu.Item) {
	o.items = append(o.items, item)
}

// SetStatus overwrites the status, records the change, then notifies every
// observer in subscription order. The loop is a plain synchronous call
// sequence with no isolation: a panicking observer aborts the rest.
func (o *Order) SetStatus(s Status) {
	change := StatusChange{
		OrderNumber: o.number,
		OldStatus:   o.status,
		NewStatus:   s,
		ChangedAt:   time.Now().UTC(),
	}
	o.status = s
	o.history = append(o.history, change)
	for _, obs := range o.observers {
		obs.OnStatusChange(change)
	}
}

func (o *Order) Status() Status { return o.status }

func (o *Order) Items() []menu.Item { return o.items }

// History returns every recorded status change, oldest first.
func (o *Order) History() []StatusChange { return o.history }

// Total sums the current item prices. Computed on every call, never cached.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Price())
	}
	return total
}

// Render produces the plain-text order report: status, one line per item,
// then the total.
func (o *Order) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- ORDER %s (%s) ---\n", o.number, o.status)
	for _, it := range o.items {
		fmt.Fprintf(&b, "  %-28s $%s\n", it.Name(), it.Price().StringFixed(2))
	}
	fmt.Fprintf(&b, "  %-28s $%s\n", "TOTAL:", o.Total().StringFixed(2))
	return b.String()
}
