package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/orderup/internal/order"
)

func (a *App) View() string {
	var body string
	switch a.session.Screen() {
	case order.ScreenNotStarted:
		body = a.renderStart()
	case order.ScreenDetail:
		body = a.renderModal(a.renderDetail())
	case order.ScreenSummary:
		if a.confirmRemove != nil {
			body = a.renderModal(a.renderConfirm())
		} else {
			body = a.renderModal(a.renderSummary())
		}
	default:
		body = a.renderMenu()
	}
	return body
}

func (a *App) renderStart() string {
	out := titleStyle.Render("Welcome") + "\n\n"
	out += buttonStyle.Render("Start Ordering") + "\n"
	if a.status != "" {
		out += statusStyle.Render(a.status) + "\n"
	}
	return out + "\n" + a.helpView(a.keys.startHelp())
}

func (a *App) renderMenu() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(a.title))
	b.WriteString("\n")
	if a.filtering || a.filter.Value() != "" {
		b.WriteString(a.filter.View())
		b.WriteString("\n\n")
	}
	if len(a.visible) == 0 {
		b.WriteString(mutedStyle.Render("No dishes match."))
		b.WriteString("\n")
	}
	for i, d := range a.visible {
		b.WriteString(a.renderDish(d, i == a.menuCursor))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\nTotal Selected Items: %d\n", a.session.Count()))
	if a.session.OrderComplete {
		b.WriteString(completeStyle.Render("Order complete! Thank you!"))
		b.WriteString("\n")
		if a.orderRef != "" {
			b.WriteString(mutedStyle.Render("Order ref: " + shortRef(a.orderRef)))
			b.WriteString("\n")
		}
	}
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if a.filtering {
		b.WriteString(a.helpView(a.keys.filterHelp()))
	} else {
		b.WriteString(a.helpView(a.keys.browseHelp()))
	}
	return b.String()
}

func (a *App) renderDish(d order.Dish, active bool) string {
	lines := []string{
		itemNameStyle.Render(d.Name),
		d.Description,
		priceStyle.Render(d.Price.Format(a.currency)),
	}
	block := strings.Join(lines, "\n")
	if active {
		return activeItemStyle.Render(block)
	}
	return itemStyle.Render(block)
}

func (a *App) renderDetail() string {
	d := a.session.SelectedDish
	if d == nil {
		return titleStyle.Render("No dish selected")
	}
	out := titleStyle.Render(d.Name) + "\n\n"
	out += d.Description + "\n"
	out += priceStyle.Render(d.Price.Format(a.currency)) + "\n\n"
	out += a.helpView(a.keys.detailHelp())
	return out
}

func (a *App) renderSummary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Added Dishes"))
	b.WriteString("\n\n")
	if a.session.Count() == 0 {
		b.WriteString("No dishes added yet.\n")
	}
	for i, d := range a.session.SelectedDishes {
		b.WriteString(a.renderDish(d, i == a.summaryCursor))
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render("Total Cost: " + a.session.Total().Format(a.currency)))
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.helpView(a.keys.summaryHelp()))
	return b.String()
}

func (a *App) renderConfirm() string {
	d := a.confirmRemove
	out := titleStyle.Render("Remove Dish") + "\n\n"
	out += "Are you sure you want to remove this dish?\n"
	out += itemNameStyle.Render(d.Name) + "\n\n"
	out += a.helpView(a.keys.confirmHelp())
	return out
}

func (a *App) renderModal(content string) string {
	card := modalStyle.Render(content)
	if a.width <= 0 || a.height <= 0 {
		return card
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a *App) helpView(k help.KeyMap) string {
	return a.help.View(k)
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
