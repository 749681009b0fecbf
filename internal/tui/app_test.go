package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/orderup/internal/config"
	"github.com/jask/orderup/internal/logging"
	"github.com/jask/orderup/internal/order"
	"github.com/jask/orderup/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	c, err := order.NewCatalog(order.DefaultDishes())
	require.NoError(t, err)
	a := New(service.NewMenu(c), config.UIConfig{CurrencySymbol: "R"}, nil)
	a.newRef = func() string { return "0123456789abcdef" }
	return a
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, a *App, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = a.Update(keyMsg(k))
		require.Same(t, a, model)
	}
	return cmd
}

func typeText(t *testing.T, a *App, text string) {
	t.Helper()
	for _, r := range text {
		press(t, a, string(r))
	}
}

func view(a *App) string {
	return ansi.Strip(a.View())
}

func orderedNames(a *App) []string {
	var out []string
	for _, d := range a.Session().SelectedDishes {
		out = append(out, d.Name)
	}
	return out
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestStartScreen(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	require.Contains(t, view(a), "Start Ordering")
	require.Equal(t, order.ScreenNotStarted, a.Session().Screen())

	// browse keys do nothing before starting
	press(t, a, "v")
	require.False(t, a.Session().SummaryVisible)

	press(t, a, "enter")
	require.True(t, a.Session().HasStarted)
	out := view(a)
	require.Contains(t, out, "Menu")
	require.Contains(t, out, "Starters Menu")
	require.Contains(t, out, "R200.00")
	require.Contains(t, out, "Total Selected Items: 0")
}

func TestOrderingFlow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter")

	// starters
	press(t, a, "enter")
	require.Equal(t, order.ScreenDetail, a.Session().Screen())
	require.Contains(t, view(a), "Dark chicken and sour cherry terrine...")
	press(t, a, "a")
	require.Equal(t, order.ScreenBrowsing, a.Session().Screen())

	// main course
	press(t, a, "down", "enter", "a")
	require.Equal(t, []string{"Starters Menu", "Main Course"}, orderedNames(a))
	require.Contains(t, view(a), "Total Selected Items: 2")

	press(t, a, "v")
	require.Equal(t, order.ScreenSummary, a.Session().Screen())
	out := view(a)
	require.Contains(t, out, "Added Dishes")
	require.Contains(t, out, "Total Cost: R300.00")

	// remove starters: cancel first, then confirm
	press(t, a, "x")
	require.Contains(t, view(a), "Are you sure you want to remove this dish?")
	press(t, a, "n")
	require.Equal(t, []string{"Starters Menu", "Main Course"}, orderedNames(a))
	require.Contains(t, view(a), "Total Cost: R300.00")

	press(t, a, "x", "y")
	require.Equal(t, []string{"Main Course"}, orderedNames(a))
	require.Contains(t, view(a), "Total Cost: R200.00")

	press(t, a, "c")
	s := a.Session()
	require.True(t, s.OrderComplete)
	require.False(t, s.SummaryVisible)
	out = view(a)
	require.Contains(t, out, "Order complete! Thank you!")
	require.Contains(t, out, "Order ref: 01234567")
	require.Contains(t, out, "Total Selected Items: 1")

	press(t, a, "b")
	require.Equal(t, order.Session{}, a.Session())
	require.Contains(t, view(a), "Start Ordering")
	require.Empty(t, a.orderRef)
}

func TestDuplicateAddShowsStatus(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter", "enter", "a", "enter", "enter")
	require.Equal(t, []string{"Starters Menu"}, orderedNames(a))
	require.False(t, a.Session().DetailVisible)
	require.Contains(t, view(a), "Starters Menu is already in your order")
}

func TestDetailBackAndSummaryClose(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter", "down", "down", "enter")
	require.Equal(t, "Dessert", a.Session().SelectedDish.Name)
	press(t, a, "esc")
	require.Nil(t, a.Session().SelectedDish)
	require.Empty(t, a.Session().SelectedDishes)

	press(t, a, "v")
	require.Contains(t, view(a), "No dishes added yet.")
	require.Contains(t, view(a), "Total Cost: R0.00")
	// remove on an empty order never opens the dialog
	press(t, a, "x")
	require.Nil(t, a.confirmRemove)
	press(t, a, "esc")
	require.Equal(t, order.ScreenBrowsing, a.Session().Screen())
}

func TestSummaryCursorRemovesSelectedRow(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter")
	press(t, a, "enter", "a", "down", "enter", "a", "down", "enter", "a")
	require.Len(t, a.Session().SelectedDishes, 3)

	press(t, a, "v", "down", "down", "x", "enter")
	require.Equal(t, []string{"Starters Menu", "Main Course"}, orderedNames(a))
	require.Equal(t, 1, a.summaryCursor)

	press(t, a, "up", "delete", "y")
	require.Equal(t, []string{"Main Course"}, orderedNames(a))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter", "/")
	require.True(t, a.filtering)

	// q is text while filtering, not quit
	press(t, a, "q")
	require.True(t, a.filtering)
	require.Equal(t, "q", a.filter.Value())

	a.filter.SetValue("")
	typeText(t, a, "carrot")
	require.Len(t, a.visible, 1)
	press(t, a, "enter")
	require.False(t, a.filtering)
	require.Contains(t, view(a), "/ carrot")

	press(t, a, "enter")
	require.Equal(t, "Dessert", a.Session().SelectedDish.Name)
	press(t, a, "esc")

	press(t, a, "/", "esc")
	require.Len(t, a.visible, 3)
	require.Empty(t, a.filter.Value())
}

func TestFilterNoMatches(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	press(t, a, "enter", "/")
	typeText(t, a, "zzzzzzzz")
	press(t, a, "enter")
	require.Empty(t, a.visible)
	require.Contains(t, view(a), "No dishes match.")

	press(t, a, "enter")
	require.False(t, a.Session().DetailVisible)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	require.True(t, isQuit(press(t, a, "q")))
	require.True(t, isQuit(press(t, a, "ctrl+c")))
}

func TestWindowSizeCentresModal(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	press(t, a, "enter", "enter")
	lines := strings.Split(a.View(), "\n")
	require.Len(t, lines, 24)
}

func TestCompleteOrderIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c, err := order.NewCatalog(order.DefaultDishes())
	require.NoError(t, err)
	a := New(service.NewMenu(c), config.UIConfig{CurrencySymbol: "R"}, logging.New(&buf, 0))
	a.newRef = func() string { return "ref-1" }

	press(t, a, "enter", "enter", "a", "v", "c")
	out := buf.String()
	require.Contains(t, out, "order complete")
	require.Contains(t, out, "ref=ref-1")
	require.Contains(t, out, "total=R100.00")
}
