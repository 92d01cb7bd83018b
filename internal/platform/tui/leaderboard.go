package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
	"github.com/vovakirdan/t2048/internal/stats"
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next board"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "l"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardPage is the leaderboard and lifetime totals of one variant.
type LeaderboardPage struct {
	Title   string
	Entries []stats.Entry
	Totals  stats.Totals
}

// PageForSession builds the page of a running game, its clock included.
func PageForSession(ctx context.Context, title string, s *session.Session) LeaderboardPage {
	sum := s.Summary()
	return LeaderboardPage{
		Title:   title,
		Entries: s.Leaderboard(ctx),
		Totals:  totalsFromSummary(sum),
	}
}

func totalsFromSummary(sum session.Summary) stats.Totals {
	return stats.Totals{
		BestScore:       sum.BestScore,
		GamesPlayed:     sum.GamesPlayed,
		TotalMoves:      sum.TotalMoves,
		TotalScore:      sum.TotalScore,
		TotalTimePlayed: sum.TotalTimePlayed,
	}
}

// PagesForPlayer builds one page per registered variant.
func PagesForPlayer(ctx context.Context, tracker *stats.Tracker) []LeaderboardPage {
	variants := registry.List()
	pages := make([]LeaderboardPage, 0, len(variants))
	for _, v := range variants {
		t := tracker.ForVariant(v.StatsScope)
		pages = append(pages, LeaderboardPage{
			Title:   v.Title,
			Entries: t.Leaderboard(ctx),
			Totals:  t.Totals(ctx),
		})
	}
	return pages
}

// LeaderboardModel shows the top games and lifetime totals, one page per
// variant.
type LeaderboardModel struct {
	pages     []LeaderboardPage
	cursor    int
	palette   Palette
	table     table.Model
	help      help.Model
	keys      LeaderboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLeaderboardModel creates a leaderboard screen starting on page start.
func NewLeaderboardModel(pages []LeaderboardPage, start int, p Palette, width, height int) LeaderboardModel {
	h := help.New()
	h.Width = width

	m := LeaderboardModel{
		pages:   pages,
		palette: p,
		keys:    DefaultLeaderboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	if len(pages) > 0 {
		m.cursor = ((start % len(pages)) + len(pages)) % len(pages)
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(stats.LeaderboardSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.palette.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.palette.Selected
	t.SetStyles(s)
	return t
}

func (m *LeaderboardModel) updateTableRows() {
	var entries []stats.Entry
	if len(m.pages) > 0 {
		entries = m.pages[m.cursor].Entries
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.HighestTile),
			strconv.Itoa(e.Moves),
			e.Date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if len(m.pages) > 0 {
				m.cursor = (m.cursor + 1) % len(m.pages)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.pages) > 0 {
				m.cursor = (m.cursor - 1 + len(m.pages)) % len(m.pages)
				m.updateTableRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "LEADERBOARD"
	var page LeaderboardPage
	if len(m.pages) > 0 {
		page = m.pages[m.cursor]
		title = fmt.Sprintf("LEADERBOARD - %s", page.Title)
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.palette.Border).
		Padding(0, 1)

	var body string
	if len(page.Entries) == 0 {
		body = m.palette.Muted.Italic(true).Padding(1, 2).
			Render("No finished games yet.\nRun out of moves to get on the board!")
	} else {
		body = m.table.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.palette.Title.Render(title),
		m.pageTabs(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(body),
			"  ",
			boxStyle.Render(m.renderTotals(page.Totals)),
		),
		"",
		m.palette.Muted.Render(m.help.View(m.keys)),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m LeaderboardModel) pageTabs() string {
	if len(m.pages) < 2 {
		return ""
	}
	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.cursor {
			tabs[i] = m.palette.Selected.Padding(0, 1).Render(p.Title)
		} else {
			tabs[i] = m.palette.Muted.Render(" " + p.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m LeaderboardModel) renderTotals(t stats.Totals) string {
	rows := []struct {
		label string
		value string
	}{
		{"Best score", strconv.Itoa(t.BestScore)},
		{"Games played", strconv.Itoa(t.GamesPlayed)},
		{"Average score", strconv.Itoa(t.AverageScore())},
		{"Total moves", strconv.Itoa(t.TotalMoves)},
		{"Time played", t2048.FormatDuration(time.Duration(t.TotalTimePlayed) * time.Second)},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.palette.Muted.Render(fmt.Sprintf("%-14s", r.label)))
		b.WriteString(m.palette.Normal.Render(fmt.Sprintf("%8s", r.value)))
	}
	return b.String()
}

// Page returns the index of the page on screen.
func (m LeaderboardModel) Page() int {
	return m.cursor
}

// IsGoingBack returns true if the user closed the leaderboard.
func (m LeaderboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
