package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/orderup/internal/config"
	"github.com/jask/orderup/internal/logging"
	"github.com/jask/orderup/internal/order"
	"github.com/jask/orderup/internal/service"
)

// App renders an order.Session and turns key presses into intents.
type App struct {
	menu      *service.Menu
	session   order.Session
	log       *slog.Logger
	keys      keyMap
	help      help.Model
	filter    textinput.Model
	filtering bool

	// visible is the menu after filtering, in display order.
	visible       []order.Dish
	menuCursor    int
	summaryCursor int
	// confirmRemove is the dish awaiting a yes/no before RemoveDish.
	confirmRemove *order.Dish

	status    string
	title     string
	currency  string
	orderRef  string
	sessionID string
	newRef    func() string
	width     int
	height    int
}

func New(menu *service.Menu, ui config.UIConfig, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	if ui.Title == "" {
		ui.Title = "Menu"
	}
	in := textinput.New()
	in.Placeholder = "filter dishes"
	in.Prompt = "/ "
	a := &App{
		menu:      menu,
		keys:      newKeyMap(),
		help:      help.New(),
		filter:    in,
		title:     ui.Title,
		currency:  ui.CurrencySymbol,
		sessionID: uuid.NewString(),
		newRef:    uuid.NewString,
	}
	a.log = logger.With("session", a.sessionID)
	a.refreshMenu()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Session exposes the current state for the binary's exit summary.
func (a *App) Session() order.Session { return a.session }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.filtering {
			return a.handleFilterKey(m)
		}
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.confirmRemove != nil {
			return a.handleConfirmKey(m)
		}
		switch a.session.Screen() {
		case order.ScreenNotStarted:
			return a.handleStartKey(m)
		case order.ScreenDetail:
			return a.handleDetailKey(m)
		case order.ScreenSummary:
			return a.handleSummaryKey(m)
		default:
			return a.handleBrowseKey(m)
		}
	}
	return a, nil
}

func (a *App) dispatch(in order.Intent) {
	before := a.session
	a.session = order.Reduce(a.session, in)
	a.log.Debug("intent", "name", in.Name(), "from", before.Screen(), "to", a.session.Screen(), "items", a.session.Count())
}

func (a *App) handleStartKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Start) {
		a.status = ""
		a.dispatch(order.StartOrdering{})
	}
	return a, nil
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Up):
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.menuCursor < len(a.visible)-1 {
			a.menuCursor++
		}
	case key.Matches(m, a.keys.Open):
		if len(a.visible) == 0 {
			a.status = "no dish selected"
			return a, nil
		}
		a.status = ""
		a.dispatch(order.SelectDish{Dish: a.visible[a.menuCursor]})
	case key.Matches(m, a.keys.Summary):
		a.status = ""
		a.summaryCursor = 0
		a.dispatch(order.OpenSummary{})
	case key.Matches(m, a.keys.Filter):
		a.filtering = true
		return a, a.filter.Focus()
	case key.Matches(m, a.keys.Reset):
		a.dispatch(order.Reset{})
		a.orderRef = ""
		a.status = ""
		a.menuCursor, a.summaryCursor = 0, 0
		a.filter.SetValue("")
		a.refreshMenu()
	}
	return a, nil
}

func (a *App) handleFilterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.filter.SetValue("")
		a.stopFiltering()
		return a, nil
	case tea.KeyEnter:
		a.stopFiltering()
		if len(a.visible) == 0 {
			a.status = "no dishes match"
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(m)
	a.refreshMenu()
	return a, cmd
}

func (a *App) stopFiltering() {
	a.filtering = false
	a.filter.Blur()
	a.refreshMenu()
}

func (a *App) refreshMenu() {
	if a.menu == nil {
		a.visible = nil
	} else {
		a.visible = a.menu.Search(a.filter.Value())
	}
	if a.menuCursor >= len(a.visible) {
		a.menuCursor = max(0, len(a.visible)-1)
	}
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Add):
		if d := a.session.SelectedDish; d != nil {
			if a.session.Contains(d.ID) {
				a.status = d.Name + " is already in your order"
			} else {
				a.status = d.Name + " added"
			}
		}
		a.dispatch(order.AddSelectedDish{})
	case key.Matches(m, a.keys.Back):
		a.dispatch(order.CloseDetail{})
	}
	return a, nil
}

func (a *App) handleSummaryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	dishes := a.session.SelectedDishes
	switch {
	case key.Matches(m, a.keys.Up):
		if a.summaryCursor > 0 {
			a.summaryCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.summaryCursor < len(dishes)-1 {
			a.summaryCursor++
		}
	case key.Matches(m, a.keys.Remove):
		if len(dishes) == 0 {
			return a, nil
		}
		d := dishes[a.summaryCursor]
		a.confirmRemove = &d
	case key.Matches(m, a.keys.Complete):
		a.completeOrder()
	case key.Matches(m, a.keys.Back):
		a.dispatch(order.CloseSummary{})
	}
	return a, nil
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Confirm):
		d := *a.confirmRemove
		a.confirmRemove = nil
		a.dispatch(order.RemoveDish{Dish: d})
		a.status = d.Name + " removed"
		if a.summaryCursor >= a.session.Count() {
			a.summaryCursor = max(0, a.session.Count()-1)
		}
	case key.Matches(m, a.keys.Cancel):
		a.confirmRemove = nil
	}
	return a, nil
}

func (a *App) completeOrder() {
	if !a.session.SummaryVisible {
		return
	}
	a.dispatch(order.CompleteOrder{})
	a.orderRef = a.newRef()
	a.status = ""
	a.log.Info("order complete",
		"ref", a.orderRef,
		"items", a.session.Count(),
		"total", a.session.Total().Format(a.currency),
	)
}
