package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/storage"
)

func newTracker(t *testing.T, player string) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewTracker(store, player, nil), store
}

func TestTotalsDefaultToZero(t *testing.T) {
	tr, _ := newTracker(t, "")

	assert.Equal(t, Totals{}, tr.Totals(context.Background()))
}

func TestTotalsRoundTrip(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTracker(t, "")

	want := Totals{
		BestScore:       4096,
		GamesPlayed:     3,
		TotalMoves:      512,
		TotalScore:      7000,
		TotalTimePlayed: 900,
	}
	require.NoError(t, tr.SaveTotals(ctx, want))

	assert.Equal(t, want, tr.Totals(ctx))
}

func TestCorruptValuesReadAsZero(t *testing.T) {
	ctx := context.Background()
	tr, store := newTracker(t, "")

	require.NoError(t, store.Set(ctx, KeyBestScore, "not a number"))
	require.NoError(t, store.Set(ctx, KeyGamesPlayed, "-3"))
	require.NoError(t, store.Set(ctx, KeyTotalMoves, "12"))
	require.NoError(t, store.Set(ctx, KeyLeaderboard, "{broken"))
	require.NoError(t, store.Set(ctx, KeyTheme, "sepia"))

	tot := tr.Totals(ctx)
	assert.Equal(t, 0, tot.BestScore)
	assert.Equal(t, 0, tot.GamesPlayed)
	assert.Equal(t, 12, tot.TotalMoves)
	assert.Empty(t, tr.Leaderboard(ctx))
	assert.Equal(t, ThemeDark, tr.Theme(ctx))
}

// failingStore errors on every call.
type failingStore struct{}

var errDown = errors.New("store down")

func (failingStore) Get(context.Context, string) (string, bool, error) { return "", false, errDown }
func (failingStore) Set(context.Context, string, string) error         { return errDown }
func (failingStore) Delete(context.Context, string) error              { return errDown }
func (failingStore) Close() error                                      { return nil }

func TestReadFailuresReadAsZero(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(failingStore{}, "", nil)

	assert.Equal(t, Totals{}, tr.Totals(ctx))
	assert.Nil(t, tr.Leaderboard(ctx))
	assert.Equal(t, DefaultTheme, tr.Theme(ctx))

	_, ok := tr.SavedGame(ctx)
	assert.False(t, ok)

	assert.ErrorIs(t, tr.SetInt(ctx, KeyBestScore, 1), errDown)
}

func TestPlayerNamespace(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	alice := NewTracker(store, "alice", nil)
	bob := NewTracker(store, "bob", nil)

	require.NoError(t, alice.SetInt(ctx, KeyBestScore, 128))
	require.NoError(t, bob.SetInt(ctx, KeyBestScore, 256))

	assert.Equal(t, 128, alice.Int(ctx, KeyBestScore))
	assert.Equal(t, 256, bob.Int(ctx, KeyBestScore))

	raw, ok, err := store.Get(ctx, "alice/bestScore")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "128", raw)
}

func TestVariantNamespace(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	classic := NewTracker(store, "alice", nil)
	big := classic.ForVariant("big")

	require.NoError(t, big.SetInt(ctx, KeyGamesPlayed, 3))
	require.NoError(t, big.SetTheme(ctx, ThemeNeon))

	assert.Equal(t, 0, classic.Int(ctx, KeyGamesPlayed))
	assert.Equal(t, 3, big.Int(ctx, KeyGamesPlayed))
	assert.Equal(t, ThemeNeon, classic.Theme(ctx))
	assert.Equal(t, "big", big.Variant())
	assert.Empty(t, classic.Variant())

	_, ok, err := store.Get(ctx, "alice/big/gamesPlayed")
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = store.Get(ctx, "alice/theme")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPlayerNameCannotReachOtherKeys(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	aliceBig := NewTracker(store, "alice", nil).ForVariant("big")
	slashed := NewTracker(store, "alice/big", nil)

	require.NoError(t, aliceBig.SetInt(ctx, KeyBestScore, 4096))
	require.NoError(t, aliceBig.SaveGame(ctx, []byte(`{"game":{}}`)))

	assert.Equal(t, 0, slashed.Int(ctx, KeyBestScore))
	_, saved := slashed.SavedGame(ctx)
	assert.False(t, saved)

	require.NoError(t, slashed.SetInt(ctx, KeyBestScore, 8))
	require.NoError(t, slashed.ClearSavedGame(ctx))
	assert.Equal(t, 4096, aliceBig.Int(ctx, KeyBestScore))
	_, saved = aliceBig.SavedGame(ctx)
	assert.True(t, saved)

	_, ok, err := store.Get(ctx, "alice%2Fbig/bestScore")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice/big", slashed.Player())
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name string
		tot  Totals
		want int
	}{
		{"no games", Totals{TotalScore: 100}, 0},
		{"exact", Totals{GamesPlayed: 2, TotalScore: 200}, 100},
		{"rounds down", Totals{GamesPlayed: 3, TotalScore: 100}, 33},
		{"rounds half up", Totals{GamesPlayed: 2, TotalScore: 5}, 3},
		{"rounds up", Totals{GamesPlayed: 3, TotalScore: 200}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tot.AverageScore())
		})
	}
}

func TestSavedGame(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTracker(t, "carol")

	_, ok := tr.SavedGame(ctx)
	assert.False(t, ok)

	require.NoError(t, tr.SaveGame(ctx, []byte(`{"size":4}`)))
	data, ok := tr.SavedGame(ctx)
	require.True(t, ok)
	assert.JSONEq(t, `{"size":4}`, string(data))

	require.NoError(t, tr.ClearSavedGame(ctx))
	_, ok = tr.SavedGame(ctx)
	assert.False(t, ok)
}
