package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/stats"
)

// MenuItem is one selectable variant.
type MenuItem struct {
	Variant registry.Variant
	// Saved is true when the player has a suspended game on this variant.
	Saved bool
}

// MenuItemsFor lists every registered variant for the player behind
// tracker.
func MenuItemsFor(ctx context.Context, tracker *stats.Tracker) []MenuItem {
	variants := registry.List()
	items := make([]MenuItem, 0, len(variants))
	for _, v := range variants {
		_, saved := tracker.ForVariant(v.StatsScope).SavedGame(ctx)
		items = append(items, MenuItem{Variant: v, Saved: saved})
	}
	return items
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	player    string
	palette   Palette
	keyMapper *KeyMapper
	notice    string

	quitting        bool
	selected        *MenuItem
	openLeaderboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(items []MenuItem, player string, p Palette, width, height int) MenuModel {
	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		player:    player,
		palette:   p,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionLeaderboard:
		m.openLeaderboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		m.palette.Title.Render("2 0 4 8"),
		"",
	}
	if m.player != "" {
		lines = append(lines, m.palette.Muted.Render("Welcome, "+m.player), "")
	}
	lines = append(lines, m.palette.Normal.Render("Choose a board"), "")

	for i, item := range m.items {
		label := fmt.Sprintf("%-8s %s", item.Variant.Title, item.Variant.Description)
		if item.Saved {
			label += "  [continue]"
		}
		if i == m.cursor {
			lines = append(lines, m.palette.Selected.Render("> "+label))
		} else {
			lines = append(lines, m.palette.Normal.Render("  "+label))
		}
	}

	if m.notice != "" {
		lines = append(lines, "", m.palette.Warning.Render(m.notice))
	}

	lines = append(lines, "",
		m.palette.Muted.Render(strings.Join([]string{
			"↑/↓ navigate", "enter play", "tab leaderboard", "q quit",
		}, "  |  ")),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// SetNotice shows a one-line message under the list.
func (m *MenuModel) SetNotice(s string) {
	m.notice = s
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Cursor returns the highlighted item index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsLeaderboard returns true if the user asked for the leaderboard.
func (m MenuModel) WantsLeaderboard() bool {
	return m.openLeaderboard
}
