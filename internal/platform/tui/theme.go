package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/stats"
)

// Palette maps colour roles to concrete styles for one theme, plus the
// chrome used by the menu and leaderboard screens.
type Palette struct {
	Theme  stats.Theme
	styles map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Border   lipgloss.Color
}

// Style returns the style for a role, falling back to the default role.
func (p Palette) Style(c core.Color, bold bool) lipgloss.Style {
	s, ok := p.styles[c]
	if !ok {
		s = p.styles[core.ColorDefault]
	}
	if bold {
		s = s.Bold(true)
	}
	return s
}

// tileColors is the foreground and background of each tile role,
// ordered like core.TileColors.
type tileColors [12][2]string

type paletteColors struct {
	text, muted, accent, grid string
	emptyFG, emptyBG          string
	warning, win, lose        string
	selectedFG, selectedBG    string
	tiles                     tileColors
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func newPalette(th stats.Theme, pc paletteColors) Palette {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorText:    fg(pc.text),
		core.ColorMuted:   fg(pc.muted),
		core.ColorAccent:  fg(pc.accent),
		core.ColorGrid:    fg(pc.grid),
		core.ColorEmpty:   fg(pc.emptyFG).Background(lipgloss.Color(pc.emptyBG)),
		core.ColorWarning: fg(pc.warning),
		core.ColorWin:     fg(pc.win),
		core.ColorLose:    fg(pc.lose),
	}
	for i, role := range core.TileColors {
		styles[role] = fg(pc.tiles[i][0]).Background(lipgloss.Color(pc.tiles[i][1]))
	}

	return Palette{
		Theme:    th,
		styles:   styles,
		Title:    fg(pc.accent).Bold(true),
		Selected: fg(pc.selectedFG).Background(lipgloss.Color(pc.selectedBG)).Bold(true),
		Normal:   fg(pc.text),
		Muted:    fg(pc.muted),
		Warning:  fg(pc.warning),
		Border:   lipgloss.Color(pc.grid),
	}
}

var palettes = map[stats.Theme]Palette{
	stats.ThemeDark: newPalette(stats.ThemeDark, paletteColors{
		text: "252", muted: "245", accent: "214", grid: "240",
		emptyFG: "240", emptyBG: "236",
		warning: "220", win: "46", lose: "196",
		selectedFG: "229", selectedBG: "57",
		tiles: tileColors{
			{"236", "254"}, {"236", "223"}, {"231", "215"}, {"231", "209"},
			{"231", "203"}, {"231", "196"}, {"236", "229"}, {"236", "228"},
			{"236", "227"}, {"236", "220"}, {"236", "214"}, {"231", "53"},
		},
	}),
	stats.ThemeLight: newPalette(stats.ThemeLight, paletteColors{
		text: "#776e65", muted: "#a39789", accent: "#f67c5f", grid: "#bbada0",
		emptyFG: "#bbada0", emptyBG: "#cdc1b4",
		warning: "#f59563", win: "#edc22e", lose: "#f65e3b",
		selectedFG: "#f9f6f2", selectedBG: "#8f7a66",
		tiles: tileColors{
			{"#776e65", "#eee4da"}, {"#776e65", "#ede0c8"}, {"#f9f6f2", "#f2b179"},
			{"#f9f6f2", "#f59563"}, {"#f9f6f2", "#f67c5f"}, {"#f9f6f2", "#f65e3b"},
			{"#f9f6f2", "#edcf72"}, {"#f9f6f2", "#edcc61"}, {"#f9f6f2", "#edc850"},
			{"#f9f6f2", "#edc53f"}, {"#f9f6f2", "#edc22e"}, {"#f9f6f2", "#3c3a32"},
		},
	}),
	stats.ThemeNeon: newPalette(stats.ThemeNeon, paletteColors{
		text: "51", muted: "99", accent: "201", grid: "57",
		emptyFG: "57", emptyBG: "234",
		warning: "226", win: "118", lose: "197",
		selectedFG: "16", selectedBG: "201",
		tiles: tileColors{
			{"16", "51"}, {"16", "45"}, {"16", "39"}, {"16", "201"},
			{"16", "199"}, {"16", "197"}, {"16", "118"}, {"16", "226"},
			{"16", "214"}, {"16", "208"}, {"16", "202"}, {"231", "93"},
		},
	}),
}

// PaletteFor returns the palette of a theme, the default one for unknown
// themes.
func PaletteFor(th stats.Theme) Palette {
	if p, ok := palettes[th]; ok {
		return p
	}
	return palettes[stats.DefaultTheme]
}
