package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start     key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Add       key.Binding
	Back      key.Binding
	Summary   key.Binding
	Remove    key.Binding
	Complete  key.Binding
	Reset     key.Binding
	Filter    key.Binding
	Apply     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start ordering")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view dish")),
		Add:       key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add to menu")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to menu")),
		Summary:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view added menu")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Complete:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete order")),
		Reset:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back to start")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply filter")),
		Confirm:   key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "ok")),
		Cancel:    key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys adapts a per-screen binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) startHelp() helpKeys { return helpKeys{k.Start, k.Quit} }

func (k keyMap) browseHelp() helpKeys {
	return helpKeys{k.Up, k.Down, k.Open, k.Summary, k.Filter, k.Reset, k.Quit}
}

func (k keyMap) filterHelp() helpKeys {
	cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter"))
	return helpKeys{k.Apply, cancel}
}

func (k keyMap) detailHelp() helpKeys { return helpKeys{k.Add, k.Back, k.Quit} }

func (k keyMap) summaryHelp() helpKeys {
	closeKey := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"))
	return helpKeys{k.Up, k.Down, k.Remove, k.Complete, closeKey, k.Quit}
}

func (k keyMap) confirmHelp() helpKeys { return helpKeys{k.Confirm, k.Cancel} }
