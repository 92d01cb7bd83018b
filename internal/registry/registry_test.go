package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/t2048/internal/config"
)

func register(t *testing.T, v Variant) {
	t.Helper()
	Register(v)
	t.Cleanup(func() { unregister(v.ID) })
}

func TestRegisterAndGet(t *testing.T) {
	register(t, Variant{ID: "test-tiny", Title: "Tiny", Configure: func(cfg *config.GameConfig) {
		cfg.Board.Size = 2
	}})

	if !Exists("test-tiny") {
		t.Fatal("registered variant should exist")
	}
	v, err := Get("test-tiny")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Title != "Tiny" {
		t.Errorf("Title = %q", v.Title)
	}

	base := config.DefaultGameConfig()
	cfg := v.Apply(base)
	if cfg.Board.Size != 2 {
		t.Errorf("Apply should set size 2, got %d", cfg.Board.Size)
	}
	if base.Board.Size != config.DefaultGameConfig().Board.Size {
		t.Error("Apply must not modify its argument")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-variant")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
	if Exists("no-such-variant") {
		t.Error("unknown variant should not exist")
	}
}

func TestApplyWithoutConfigure(t *testing.T) {
	base := config.DefaultGameConfig()
	if got := (Variant{ID: "plain"}).Apply(base); got != base {
		t.Errorf("Apply without Configure = %+v, expected %+v", got, base)
	}
}

func TestListOrder(t *testing.T) {
	register(t, Variant{ID: "test-b", Order: 100})
	register(t, Variant{ID: "test-a", Order: 100})
	register(t, Variant{ID: "test-c", Order: 99})

	var ids []string
	for _, v := range List() {
		if v.Order >= 99 {
			ids = append(ids, v.ID)
		}
	}
	want := []string{"test-c", "test-a", "test-b"}
	if len(ids) != len(want) {
		t.Fatalf("List = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, Variant{ID: "test-dup"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: "test-dup"})
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register without ID should panic")
		}
	}()
	Register(Variant{})
}
