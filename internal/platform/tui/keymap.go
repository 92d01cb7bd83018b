package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/core"
)

// KeyMap holds the in-game key bindings. It doubles as the help.KeyMap
// behind the help screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Undo        key.Binding
	NewGame     key.Binding
	Theme       key.Binding
	Pause       key.Binding
	Help        key.Binding
	Leaderboard key.Binding
	Screenshot  key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.NewGame, k.Pause, k.Theme},
		{k.Leaderboard, k.Screenshot, k.Help},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns arrows/WASD movement plus the command keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "slide up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slide down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "slide left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "slide right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "u"),
			key.WithHelp("z", "undo"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r", "new game"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause clock"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l", "leaderboard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys     KeyMap
	bindings []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a mapper for custom bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	km.bindings = []boundAction{
		{&km.keys.Quit, core.ActionQuit},
		{&km.keys.Up, core.ActionUp},
		{&km.keys.Down, core.ActionDown},
		{&km.keys.Left, core.ActionLeft},
		{&km.keys.Right, core.ActionRight},
		{&km.keys.Undo, core.ActionUndo},
		{&km.keys.NewGame, core.ActionNewGame},
		{&km.keys.Theme, core.ActionTheme},
		{&km.keys.Pause, core.ActionPause},
		{&km.keys.Help, core.ActionHelp},
		{&km.keys.Leaderboard, core.ActionLeaderboard},
		{&km.keys.Screenshot, core.ActionScreenshot},
		{&km.keys.Back, core.ActionBack},
	}
	return km
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey returns the action bound to msg, ActionNone when unbound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction is an action on a list screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionLeaderboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "l":
		return MenuActionLeaderboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
