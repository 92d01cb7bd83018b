// Package core holds the terminal-neutral pieces shared by the game and the
// front ends: semantic actions, a coloured cell buffer and layout helpers.
// It has no Bubble Tea dependency so the game renders and tests headless.
package core

import "cmp"

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect places a w x h rectangle in the middle of an outer area.
// Rects larger than the area are pinned to the top-left corner.
func CenteredRect(w, h, outerW, outerH int) Rect {
	return Rect{
		X: max((outerW-w)/2, 0),
		Y: max((outerH-h)/2, 0),
		W: w,
		H: h,
	}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Fits reports whether a w x h area fits inside the rectangle.
func (r Rect) Fits(w, h int) bool {
	return w <= r.W && h <= r.H
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}
