package staff_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restaurant-system/internal/order"
	"restaurant-system/internal/staff"
)

func sampleChange() order.StatusChange {
	return order.StatusChange{
		OrderNumber: "ORD-TEST1234",
		OldStatus:   order.StatusNew,
		NewStatus:   order.StatusInPreparation,
		ChangedAt:   time.Now().UTC(),
	}
}

func TestKitchen_RendersTaggedLine(t *testing.T) {
	var buf bytes.Buffer
	staff.NewKitchen(&buf).OnStatusChange(sampleChange())

	assert.Contains(t, buf.String(), "[KITCHEN]")
	assert.Contains(t, buf.String(), "ORD-TEST1234")
	assert.Contains(t, buf.String(), "EN PREPARACIÓN")
}

func TestCashier_RendersTaggedLine(t *testing.T) {
	var buf bytes.Buffer
	staff.NewCashier(&buf).OnStatusChange(sampleChange())

	assert.Contains(t, buf.String(), "[CASHIER]")
	assert.Contains(t, buf.String(), "EN PREPARACIÓN")
}

func TestNew_NilWriterDefaultsToStdout(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = staff.NewKitchen(nil)
		_ = staff.NewCashier(nil)
	})
}
