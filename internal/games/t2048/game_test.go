package t2048

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

func openGame(t *testing.T, store storage.Store, variantID string, w, h int, seed int64) *Game {
	t.Helper()
	v, err := registry.Get(variantID)
	if err != nil {
		t.Fatalf("variant %s: %v", variantID, err)
	}
	g, err := Open(context.Background(), v, config.DefaultGameConfig(), store, "tester", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	g.Start(context.Background(), core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
	return g
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return openGame(t, storage.NewMemoryStore(), VariantClassic, 80, 24, 42)
}

func setBoard(t *testing.T, g *Game, b engine.Board) {
	t.Helper()
	if err := g.Session().Engine().Restore(engine.State{Size: len(b), Board: b}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(context.Background(), core.NewInputFrame(actions...))
}

// nearlyLocked has no moves left once it is slid right, whatever spawns.
func nearlyLocked() engine.Board {
	return engine.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{8, 4, 2, 4},
		{16, 32, 16, 0},
	}
}

func render(g *Game, w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	g.Render(s)
	return s
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id      string
		size    int
		winTile int
	}{
		{VariantClassic, 4, 2048},
		{VariantMini, 3, 256},
		{VariantBig, 5, 4096},
		{VariantEndless, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, err := registry.Get(tt.id)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			cfg := v.Apply(config.DefaultGameConfig())
			if cfg.Board.Size != tt.size || cfg.Board.WinTile != tt.winTile {
				t.Errorf("config = %+v, want size %d win %d", cfg.Board, tt.size, tt.winTile)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("variant config invalid: %v", err)
			}
		})
	}

	if list := registry.List(); len(list) < 4 || list[0].ID != VariantClassic {
		t.Errorf("classic should be listed first, got %v", list)
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	v, _ := registry.Get(VariantClassic)
	base := config.DefaultGameConfig()
	base.Spawn.FourProbability = 2

	if _, err := Open(context.Background(), v, base, storage.NewMemoryStore(), "", nil); err == nil {
		t.Error("Open should reject an invalid config")
	}
}

func TestDeterministicStart(t *testing.T) {
	g1 := openGame(t, storage.NewMemoryStore(), VariantClassic, 80, 24, 12345)
	g2 := openGame(t, storage.NewMemoryStore(), VariantClassic, 80, 24, 12345)

	b1, b2 := engine.Board(g1.Snapshot().Board), engine.Board(g2.Snapshot().Board)
	if !b1.Equal(b2) {
		t.Errorf("same seed should deal the same board:\n%v\nvs\n%v", b1, b2)
	}

	tiles := 0
	for _, row := range b1 {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != 2 {
		t.Errorf("new game should start with 2 tiles, got %d", tiles)
	}
}

func TestNewGameSeedsFollowOn(t *testing.T) {
	g := openGame(t, storage.NewMemoryStore(), VariantClassic, 80, 24, 7)
	step(g, core.ActionNewGame)

	want := openGame(t, storage.NewMemoryStore(), VariantClassic, 80, 24, 8)
	got := engine.Board(g.Snapshot().Board)
	if !got.Equal(want.Snapshot().Board) {
		t.Errorf("second deal should use the next seed:\n%v\nvs\n%v", got, engine.Board(want.Snapshot().Board))
	}
	if g.Snapshot().Score != 0 || g.Snapshot().Moves != 0 {
		t.Error("new game should reset score and moves")
	}
}

func TestStepMove(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionLeft)
	if !res.Moved {
		t.Fatal("left should move")
	}
	if res.State.Score != 4 || res.State.Moves != 1 || res.State.BestScore != 4 {
		t.Errorf("state after merge = %+v", res.State)
	}
	if got := g.Snapshot().Board[0][0]; got != 4 {
		t.Errorf("board[0][0] = %d, want 4", got)
	}
	if len(g.LastMove().Merged) != 1 || g.LastMove().Spawned == nil {
		t.Errorf("last move = %+v, want one merge and a spawn", g.LastMove())
	}
}

func TestStepNoOpMove(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionLeft)
	if res.Moved || res.State.Moves != 0 {
		t.Errorf("left on a packed row should do nothing, got %+v", res)
	}
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionLeft, core.ActionUndo)
	if !res.Moved {
		t.Error("the move should be reported even though it was undone")
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Board[0][0] != 2 || snap.Board[0][1] != 2 {
		t.Errorf("undo should restore the board, got %v score %d", snap.Board, snap.Score)
	}
	if g.LastMove().Moved {
		t.Error("undo should clear the last move highlight")
	}
}

func TestMovesIgnoredWhilePaused(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionPause, core.ActionLeft)
	if res.Moved {
		t.Error("moves should be ignored while paused")
	}
	if !res.State.Paused || g.Snapshot().Status != StatusPaused {
		t.Error("game should report paused")
	}
	if !strings.Contains(render(g, 80, 24).String(), "PAUSED") {
		t.Error("paused overlay should be drawn")
	}

	res = step(g, core.ActionPause, core.ActionLeft)
	if !res.Moved {
		t.Error("moves should resume after unpausing")
	}
}

func TestGameOverAndUndo(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, nearlyLocked())

	res := step(g, core.ActionRight)
	if !res.JustLost || !res.State.GameOver {
		t.Fatalf("right should end the game, got %+v", res)
	}
	if g.Snapshot().Status != StatusGameOver {
		t.Errorf("status = %s, want game_over", g.Snapshot().Status)
	}
	if !strings.Contains(render(g, 80, 24).String(), "GAME OVER") {
		t.Error("game over overlay should be drawn")
	}

	if step(g, core.ActionLeft).Moved {
		t.Error("no move should be accepted after game over")
	}

	res = step(g, core.ActionUndo)
	if res.State.GameOver {
		t.Error("undo should revive the game")
	}
	if g.Snapshot().Status != StatusPlaying {
		t.Errorf("status after undo = %s", g.Snapshot().Status)
	}
}

func TestWinOverlayAndKeepGoing(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionLeft)
	if !res.JustWon || !res.State.Won {
		t.Fatalf("merging into 2048 should win, got %+v", res)
	}
	if !strings.Contains(render(g, 80, 24).String(), "YOU WIN!") {
		t.Error("win overlay should be drawn")
	}

	step(g, core.ActionTheme)
	if strings.Contains(render(g, 80, 24).String(), "YOU WIN!") {
		t.Error("win overlay should close on the next action")
	}
	if g.Snapshot().Status != StatusWon || g.Snapshot().Over {
		t.Errorf("game should stay playable after winning, status %s", g.Snapshot().Status)
	}
}

func TestEndlessNeverWins(t *testing.T) {
	g := openGame(t, storage.NewMemoryStore(), VariantEndless, 80, 24, 1)
	setBoard(t, g, engine.Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := step(g, core.ActionLeft)
	if !res.Moved || res.JustWon || res.State.Won {
		t.Errorf("endless should not win, got %+v", res)
	}
}

func TestThemeAction(t *testing.T) {
	g := newTestGame(t)
	before := g.Theme()
	step(g, core.ActionTheme)
	if g.Theme() == before {
		t.Error("theme action should cycle the theme")
	}
	if g.Snapshot().Theme != string(g.Theme()) {
		t.Error("snapshot should report the theme")
	}
}

func TestResumeContinuesSuspendedGame(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	g1 := openGame(t, store, VariantClassic, 80, 24, 3)
	setBoard(t, g1, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	step(g1, core.ActionLeft)
	if err := g1.Suspend(ctx); err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	want := g1.Snapshot()

	v, _ := registry.Get(VariantClassic)
	g2, err := Open(ctx, v, config.DefaultGameConfig(), store, "tester", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	resumed, err := g2.Resume(ctx, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if err != nil || !resumed {
		t.Fatalf("Resume = %v, %v", resumed, err)
	}

	got := g2.Snapshot()
	if !engine.Board(got.Board).Equal(want.Board) || got.Score != want.Score || got.Moves != want.Moves {
		t.Errorf("resumed game differs:\n%+v\nvs\n%+v", got, want)
	}
}

func TestResumeWithoutSavedGameDealsNew(t *testing.T) {
	v, _ := registry.Get(VariantClassic)
	g, err := Open(context.Background(), v, config.DefaultGameConfig(), storage.NewMemoryStore(), "tester", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	resumed, err := g.Resume(context.Background(), core.RuntimeConfig{Seed: 5})
	if err != nil || resumed {
		t.Fatalf("Resume = %v, %v; want false, nil", resumed, err)
	}
	if g.Snapshot().MaxTile == 0 {
		t.Error("a fresh game should have been dealt")
	}
}

func TestVariantsKeepSeparateStats(t *testing.T) {
	store := storage.NewMemoryStore()
	classic := openGame(t, store, VariantClassic, 80, 24, 1)
	mini := openGame(t, store, VariantMini, 80, 24, 1)

	setBoard(t, classic, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	step(classic, core.ActionLeft)

	if mini.State().BestScore != 0 {
		t.Error("mini best score should not see classic games")
	}
	again := openGame(t, store, VariantClassic, 80, 24, 2)
	if again.State().BestScore != 4 {
		t.Errorf("classic best score = %d, want 4", again.State().BestScore)
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := openGame(t, storage.NewMemoryStore(), VariantClassic, 20, 10, 1)
	setBoard(t, g, engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if step(g, core.ActionLeft).Moved {
		t.Error("moves should be ignored while the window is too small")
	}
	if g.Snapshot().Status != StatusTooSmall {
		t.Errorf("status = %s", g.Snapshot().Status)
	}
	if !strings.Contains(render(g, 20, 10).String(), "Window too small") {
		t.Error("too small message should be drawn")
	}

	g.Resize(80, 24)
	if !step(g, core.ActionLeft).Moved {
		t.Error("moves should work after growing the window")
	}
}

func TestTooSmallWindowKeepsCommands(t *testing.T) {
	g := openGame(t, storage.NewMemoryStore(), VariantClassic, 20, 10, 1)
	themeBefore := g.Theme()

	step(g, core.ActionPause, core.ActionTheme)

	if !g.Session().Paused() {
		t.Error("pause should work while the window is too small")
	}
	if g.Theme() == themeBefore {
		t.Error("theme should change while the window is too small")
	}

	setBoard(t, g, engine.Board{
		{8, 16, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	step(g, core.ActionNewGame)
	if got := g.Session().Engine().MaxTile(); got > 4 {
		t.Errorf("new game should deal while the window is too small, max tile %d", got)
	}
}

func TestPickLayout(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		w, h      int
		wantOK    bool
		wantCellH int
	}{
		{"classic roomy", 4, 80, 24, true, 3},
		{"classic compact", 4, 40, 16, true, 1},
		{"classic too small", 4, 20, 10, false, 1},
		{"big falls back to compact", 5, 80, 24, true, 1},
		{"mini roomy", 3, 40, 20, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := pickLayout(tt.size, tt.w, tt.h)
			if ok != tt.wantOK || l.cellH != tt.wantCellH {
				t.Errorf("pickLayout = %+v, %v; want cellH %d ok %v", l, ok, tt.wantCellH, tt.wantOK)
			}
		})
	}
}

func TestMinScreenSize(t *testing.T) {
	w, h := MinScreenSize(4)
	if w != 29 || h != 15 {
		t.Errorf("MinScreenSize(4) = %dx%d, want 29x15", w, h)
	}
	if _, ok := pickLayout(4, w, h); !ok {
		t.Error("the minimum size should fit")
	}
	if _, ok := pickLayout(4, w-1, h); ok {
		t.Error("one column less should not fit")
	}
}

func TestRenderBoardAndHUD(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{128, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})

	out := render(g, 80, 24).String()
	for _, want := range []string{"2048 Classic", "Score 0", "Best 0", "Moves 0", "Time 0:", "128", "┌", "┘", "z undo"} {
		if !strings.Contains(out, want) {
			t.Errorf("render should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderHighlightsMergedTile(t *testing.T) {
	g := newTestGame(t)
	setBoard(t, g, engine.Board{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	step(g, core.ActionLeft)

	s := render(g, 80, 24)
	var boldSixteen, spawnMark bool
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune == '1' && c.Bold && c.Color == core.ColorTile16 {
				boldSixteen = true
			}
			if c.Rune == '+' && c.Bold && c.Color.IsTile() {
				spawnMark = true
			}
		}
	}
	if !boldSixteen {
		t.Error("merged 16 should be drawn bold")
	}
	if !spawnMark {
		t.Error("spawned tile should be marked")
	}
	if !strings.Contains(s.String(), "Score 16 +16") {
		t.Error("HUD should show the score gained by the last move")
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    engine.Direction
		ok     bool
	}{
		{core.ActionUp, engine.DirUp, true},
		{core.ActionDown, engine.DirDown, true},
		{core.ActionLeft, engine.DirLeft, true},
		{core.ActionRight, engine.DirRight, true},
		{core.ActionUndo, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionFor(tt.action)
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("DirectionFor(%v) = %v, %v", tt.action, dir, ok)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{65 * time.Second, "1:05"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{1500 * time.Millisecond, "0:01"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
