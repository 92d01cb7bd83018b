package engine

// Snapshot is a saved board and score used for undo.
type Snapshot struct {
	Board Board
	Score int
}

// History is a stack of snapshots. With a positive limit the oldest
// snapshot is dropped once the stack is full; a zero limit never drops.
type History struct {
	limit int
	items []Snapshot
}

// NewHistory creates an empty history holding at most limit snapshots.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push saves a snapshot on top of the stack.
func (h *History) Push(s Snapshot) {
	if h.limit > 0 && len(h.items) == h.limit {
		copy(h.items, h.items[1:])
		h.items[len(h.items)-1] = s
		return
	}
	h.items = append(h.items, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.items) == 0 {
		return Snapshot{}, false
	}
	last := len(h.items) - 1
	s := h.items[last]
	h.items[last] = Snapshot{}
	h.items = h.items[:last]
	return s, true
}

// Len returns the number of snapshots available to undo.
func (h *History) Len() int {
	return len(h.items)
}

// Limit returns the configured cap, 0 meaning unbounded.
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every snapshot.
func (h *History) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}
