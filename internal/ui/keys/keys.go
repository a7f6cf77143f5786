// Package keys defines the application key bindings
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all key bindings for the application
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Tab    key.Binding
	Help   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Board actions
	MoveLeft  key.Binding
	MoveRight key.Binding
	Complete  key.Binding
	Comment   key.Binding

	// Timer actions
	Timer      key.Binding
	TimerReset key.Binding
	Break      key.Binding

	// Filters
	FilterProject  key.Binding
	FilterAssignee key.Binding
	FilterDate     key.Binding
	FilterDone     key.Binding

	// View switching
	ViewMode  key.Binding
	Projects  key.Binding
	Completed key.Binding
	Trash     key.Binding
	Restore   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move right"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		Comment: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "comment"),
		),
		Timer: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause timer"),
		),
		TimerReset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset timer"),
		),
		Break: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "break"),
		),
		FilterProject: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "project filter"),
		),
		FilterAssignee: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assignee filter"),
		),
		FilterDate: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "date filter"),
		),
		FilterDone: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "completed only"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view mode"),
		),
		Projects: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "projects"),
		),
		Completed: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "completed"),
		),
		Trash: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "trash"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}
