// Package tui renders the demo transcript and the final receipt. Styling is
// cosmetic; the information content (names, prices, statuses, total) is what
// the tests pin down.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"restaurant-system/internal/menu"
	"restaurant-system/internal/order"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 3)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)

	separatorLine = faintStyle.Render(strings.Repeat("─", 40))
)

// Banner renders the demo title box.
func Banner(title string) string {
	return bannerStyle.Render(title)
}

// Header renders a numbered transcript section header.
func Header(n int, title string) string {
	return headerStyle.Render(fmt.Sprintf("%d. %s", n, title))
}

// ItemLine renders one labeled menu item with its price.
func ItemLine(label string, it menu.Item) string {
	return fmt.Sprintf("   %s %s - $%s",
		dimStyle.Render(label+":"), it.Name(), it.Price().StringFixed(2))
}

// Receipt renders the final order report: status, line items, total.
func Receipt(o *order.Order) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("ORDER %s", o.Number())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(string(o.Status())))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	for _, it := range o.Items() {
		b.WriteString(fmt.Sprintf("  %-28s $%s\n", it.Name(), it.Price().StringFixed(2)))
	}
	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("  %-28s $%s", "TOTAL:", o.Total().StringFixed(2))))
	b.WriteString("\n")
	return b.String()
}
