package core

// RuntimeConfig is what a front end hands the game when it starts one.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	// Seed feeds the tile spawner. 0 means seed from the current time.
	Seed int64
}

// DefaultConfig returns an 80x24 terminal with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the status a front end needs outside the board itself.
type GameState struct {
	Score     int
	BestScore int
	Moves     int
	MaxTile   int
	Won       bool
	GameOver  bool
	Paused    bool
}

// StepResult reports what one Step did.
type StepResult struct {
	State GameState
	// Moved is true when at least one move changed the board.
	Moved bool
	// JustWon is true on the step that first reached the win tile.
	JustWon bool
	// JustLost is true on the step that ended the game.
	JustLost bool
}
