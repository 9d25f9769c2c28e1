package tui

import "github.com/charmbracelet/bubbles/key"

type listKeys struct {
	Open, Add, Edit, Delete  key.Binding
	Search, Difficulty, Time key.Binding
	Clear, Theme, Quit       key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Difficulty: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "difficulty")),
		Time:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "max time")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) extra() []key.Binding {
	return []key.Binding{k.Open, k.Add, k.Edit, k.Delete, k.Search, k.Difficulty, k.Time, k.Clear, k.Theme}
}

type detailKeys struct {
	Lower, Raise, Commit, Digit key.Binding
	Edit, Delete, Back, Quit    key.Binding
}

func newDetailKeys() detailKeys {
	return detailKeys{
		Lower:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-½ star")),
		Raise:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "+½ star")),
		Commit: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "save rating")),
		Digit:  key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5"), key.WithHelp("0-5", "rate")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace", "q"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Lower, k.Raise, k.Commit, k.Digit, k.Edit, k.Delete, k.Back}
}

func (k detailKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type formKeys struct {
	Next, Prev, Cycle, Submit, Cancel, Quit key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Cycle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "difficulty")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Cycle, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type confirmKeys struct {
	Yes, No key.Binding
}

func newConfirmKeys() confirmKeys {
	return confirmKeys{
		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		No:  key.NewBinding(key.WithKeys("n", "N", "esc", "q"), key.WithHelp("n", "keep")),
	}
}

func (k confirmKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Yes, k.No} }
func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
