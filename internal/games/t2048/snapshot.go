package t2048

// Status summarises where the game stands.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won" // win tile reached, still playable
	StatusGameOver Status = "game_over"
	StatusPaused   Status = "paused"
	StatusTooSmall Status = "paused_small_window"
)

// Snapshot is the complete observable game state. Tests use it to check
// determinism and the WebSocket endpoint sends it to clients.
type Snapshot struct {
	Variant        string  `json:"variant"`
	Size           int     `json:"size"`
	Board          [][]int `json:"board"`
	Score          int     `json:"score"`
	BestScore      int     `json:"bestScore"`
	Moves          int     `json:"moves"`
	MaxTile        int     `json:"maxTile"`
	WinTile        int     `json:"winTile"`
	Won            bool    `json:"won"`
	Over           bool    `json:"over"`
	UndoDepth      int     `json:"undoDepth"`
	ElapsedSeconds int     `json:"elapsedSeconds"`
	Theme          string  `json:"theme"`
	Status         Status  `json:"status"`
}

// Snapshot captures the current game.
func (g *Game) Snapshot() Snapshot {
	eng := g.session.Engine()
	sum := g.session.Summary()

	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusTooSmall
	case eng.Over():
		status = StatusGameOver
	case g.session.Paused():
		status = StatusPaused
	case eng.Won():
		status = StatusWon
	}

	return Snapshot{
		Variant:        g.variant.ID,
		Size:           eng.Config().Size,
		Board:          eng.Board(),
		Score:          eng.Score(),
		BestScore:      sum.BestScore,
		Moves:          sum.MovesMade,
		MaxTile:        eng.MaxTile(),
		WinTile:        eng.Config().WinTile,
		Won:            eng.Won(),
		Over:           eng.Over(),
		UndoDepth:      eng.UndoDepth(),
		ElapsedSeconds: int(sum.GameElapsed.Seconds()),
		Theme:          string(g.session.Theme()),
		Status:         status,
	}
}
