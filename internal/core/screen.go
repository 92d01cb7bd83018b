package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character of the screen with its colour role.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
}

var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer. The game draws into it and the front end
// turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions. The game redraws every frame, so the
// content is cleared rather than preserved.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune with the default colour. Out-of-bounds writes are
// ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell. Out-of-bounds writes are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at (x, y), a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text from (x, y) in the given colour, clipped to the
// screen.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	s.drawText(x, y, text, Cell{Color: c})
}

// DrawBoldText is DrawText with the bold attribute set.
func (s *Screen) DrawBoldText(x, y int, text string, c Color) {
	s.drawText(x, y, text, Cell{Color: c, Bold: true})
}

func (s *Screen) drawText(x, y int, text string, style Cell) {
	i := 0
	for _, r := range text {
		style.Rune = r
		s.SetCell(x+i, y, style)
		i++
	}
}

// DrawTextCentered writes text centred on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawText(x, y, text, c)
}

// DrawTextIn writes text centred horizontally inside r on row y.
func (s *Screen) DrawTextIn(r Rect, y int, text string, c Color, bold bool) {
	x := r.X + (r.W-utf8.RuneCountInString(text))/2
	s.drawText(x, y, text, Cell{Color: c, Bold: bold})
}

// FillRect fills r with the given cell.
func (s *Screen) FillRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawBox draws a single-line frame around r.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	set := func(x, y int, ch rune) {
		s.SetCell(x, y, Cell{Rune: ch, Color: c})
	}

	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
}

// String returns the runes of the screen, rows joined by newlines.
// Colours are dropped; it is what screenshots and tests look at.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
