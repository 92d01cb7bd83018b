// Package stats keeps lifetime statistics, the leaderboard, the theme
// preference and the suspended game on top of a storage.Store.
package stats

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/storage"
)

// Logical keys. With a player set they are stored as "<player>/<key>",
// and game keys of a non-classic variant as "<player>/<variant>/<key>".
// The player segment is path-escaped.
const (
	KeyBestScore       = "bestScore"
	KeyGamesPlayed     = "gamesPlayed"
	KeyTotalMoves      = "totalMoves"
	KeyTotalScore      = "totalScore"
	KeyTotalTimePlayed = "totalTimePlayed"
	KeyLeaderboard     = "leaderboard"
	KeyTheme           = "theme"
	KeySavedGame       = "savedGame"
)

// Totals are the lifetime counters of one player.
type Totals struct {
	BestScore   int `json:"bestScore"`
	GamesPlayed int `json:"gamesPlayed"`
	TotalMoves  int `json:"totalMoves"`
	TotalScore  int `json:"totalScore"`
	// TotalTimePlayed is in whole seconds.
	TotalTimePlayed int `json:"totalTimePlayed"`
}

// AverageScore returns TotalScore / GamesPlayed rounded to the nearest
// integer, or 0 before the first game.
func (t Totals) AverageScore() int {
	if t.GamesPlayed <= 0 {
		return 0
	}
	return int(math.Round(float64(t.TotalScore) / float64(t.GamesPlayed)))
}

// Tracker reads and writes one player's statistics.
// Read failures never surface: missing or corrupt values read as zero.
type Tracker struct {
	store   storage.Store
	player  string
	variant string
	logger  *log.Logger
}

// NewTracker creates a tracker for player. An empty player uses the bare
// keys, which is what the local terminal game does.
func NewTracker(store storage.Store, player string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		store:  store,
		player: player,
		logger: logger,
	}
}

// Player returns the namespace the tracker writes to.
func (t *Tracker) Player() string {
	return t.player
}

// ForVariant returns a tracker whose game statistics are kept apart under
// variant. The theme stays shared. An empty variant means the classic board.
func (t *Tracker) ForVariant(variant string) *Tracker {
	c := *t
	c.variant = variant
	return &c
}

// Variant returns the variant scope, "" for the classic board.
func (t *Tracker) Variant() string {
	return t.variant
}

func (t *Tracker) key(name string) string {
	parts := make([]string, 0, 3)
	if t.player != "" {
		// Escaped so a name holding "/" cannot reach another player's keys.
		parts = append(parts, url.PathEscape(t.player))
	}
	if t.variant != "" && name != KeyTheme {
		parts = append(parts, t.variant)
	}
	return strings.Join(append(parts, name), "/")
}

// get returns the raw value for a logical key, "" when missing or unreadable.
func (t *Tracker) get(ctx context.Context, name string) (string, bool) {
	val, ok, err := t.store.Get(ctx, t.key(name))
	if err != nil {
		t.logger.Warn("cannot read stat", "key", t.key(name), "error", err)
		return "", false
	}
	return val, ok
}

func (t *Tracker) set(ctx context.Context, name, value string) error {
	return t.store.Set(ctx, t.key(name), value)
}

// Int returns a counter, 0 when missing or corrupt.
func (t *Tracker) Int(ctx context.Context, name string) int {
	raw, ok := t.get(ctx, name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		t.logger.Warn("corrupt stat, using 0", "key", t.key(name), "value", raw)
		return 0
	}
	return n
}

// SetInt stores a counter.
func (t *Tracker) SetInt(ctx context.Context, name string, n int) error {
	return t.set(ctx, name, strconv.Itoa(n))
}

// Totals loads every lifetime counter.
func (t *Tracker) Totals(ctx context.Context) Totals {
	return Totals{
		BestScore:       t.Int(ctx, KeyBestScore),
		GamesPlayed:     t.Int(ctx, KeyGamesPlayed),
		TotalMoves:      t.Int(ctx, KeyTotalMoves),
		TotalScore:      t.Int(ctx, KeyTotalScore),
		TotalTimePlayed: t.Int(ctx, KeyTotalTimePlayed),
	}
}

// SaveTotals writes every lifetime counter. It stops at the first error.
func (t *Tracker) SaveTotals(ctx context.Context, tot Totals) error {
	for _, kv := range []struct {
		name  string
		value int
	}{
		{KeyBestScore, tot.BestScore},
		{KeyGamesPlayed, tot.GamesPlayed},
		{KeyTotalMoves, tot.TotalMoves},
		{KeyTotalScore, tot.TotalScore},
		{KeyTotalTimePlayed, tot.TotalTimePlayed},
	} {
		if err := t.SetInt(ctx, kv.name, kv.value); err != nil {
			return err
		}
	}
	return nil
}

// SaveGame stores a serialized game for later resumption.
func (t *Tracker) SaveGame(ctx context.Context, data []byte) error {
	return t.set(ctx, KeySavedGame, string(data))
}

// SavedGame returns the stored game, if any.
func (t *Tracker) SavedGame(ctx context.Context) ([]byte, bool) {
	raw, ok := t.get(ctx, KeySavedGame)
	if !ok || raw == "" {
		return nil, false
	}
	return []byte(raw), true
}

// ClearSavedGame drops the stored game.
func (t *Tracker) ClearSavedGame(ctx context.Context) error {
	return t.store.Delete(ctx, t.key(KeySavedGame))
}

// readJSON decodes a JSON value, logging and reporting false when corrupt.
func (t *Tracker) readJSON(ctx context.Context, name string, v any) bool {
	raw, ok := t.get(ctx, name)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		t.logger.Warn("corrupt stat, ignoring", "key", t.key(name), "error", err)
		return false
	}
	return true
}
