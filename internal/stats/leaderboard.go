package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// LeaderboardSize is the number of games kept on the leaderboard.
const LeaderboardSize = 5

// DateLayout formats leaderboard dates.
const DateLayout = "2006-01-02"

// Entry is one finished game on the leaderboard.
type Entry struct {
	Score       int    `json:"score"`
	Date        string `json:"date"`
	Moves       int    `json:"moves"`
	HighestTile int    `json:"highestTile"`
}

// InsertEntry returns board with e added, sorted by score descending and
// cut to LeaderboardSize. Equal scores keep insertion order, so an older
// entry stays ahead of a newer one. board is not modified.
func InsertEntry(board []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, e)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out
}

// Leaderboard returns the stored entries, best first.
func (t *Tracker) Leaderboard(ctx context.Context) []Entry {
	var board []Entry
	if !t.readJSON(ctx, KeyLeaderboard, &board) {
		return nil
	}
	return board
}

// AddEntry records a finished game and returns the updated leaderboard.
func (t *Tracker) AddEntry(ctx context.Context, e Entry) ([]Entry, error) {
	board := InsertEntry(t.Leaderboard(ctx), e)

	data, err := json.Marshal(board)
	if err != nil {
		return board, fmt.Errorf("stats: cannot encode leaderboard: %w", err)
	}
	if err := t.set(ctx, KeyLeaderboard, string(data)); err != nil {
		return board, err
	}
	return board, nil
}
