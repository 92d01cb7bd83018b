// Package registry keeps the board variants players can pick from.
// Variants register themselves in init() functions so front ends can list
// and build them without knowing the concrete set.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/t2048/internal/config"
)

// ErrUnknownVariant is returned when a variant ID is not registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Variant describes one way to play.
type Variant struct {
	// ID is used on the command line and in statistics keys.
	ID          string
	Title       string
	Description string
	// Order sorts variants in menus; lower comes first.
	Order int
	// StatsScope separates this variant's statistics from the others.
	// Empty means the classic board's keys.
	StatsScope string
	// Configure adjusts the loaded game settings for this variant.
	Configure func(cfg *config.GameConfig)
}

// Apply returns base adjusted for the variant. base is not modified.
func (v Variant) Apply(base config.GameConfig) config.GameConfig {
	cfg := base
	if v.Configure != nil {
		v.Configure(&cfg)
	}
	return cfg
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant. Panics on an empty or duplicate ID.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns every variant, sorted by Order then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	slices.SortFunc(result, func(a, b Variant) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return result
}

// Get looks a variant up by ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v, nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// unregister removes a variant. Tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(variants, id)
}
