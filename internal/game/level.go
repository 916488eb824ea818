package game

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNoLevel is returned when no level has been registered or selected.
	ErrNoLevel = errors.New("game: no level has been set or found")
	// ErrUnknownLevel is returned when switching to an unregistered level.
	ErrUnknownLevel = errors.New("game: unknown level")
	// ErrInvalidLevel is returned when a level lists a kind in the wrong pool.
	ErrInvalidLevel = errors.New("game: invalid level")
)

// Level describes what a run can spawn and how it looks.
type Level struct {
	Name          string
	Title         string
	Background    string  // background layer id for the renderer
	InitialOffset float32 // starting scroll offset of the background layer
	Obstacles     []Kind
	Collectibles  []Kind
	Backgrounds   []Kind
}

// Validate checks that every kind sits in the pool matching its category.
func (l Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLevel)
	}
	pools := []struct {
		kinds []Kind
		want  Category
	}{
		{l.Obstacles, CategoryObstacle},
		{l.Collectibles, CategoryCollectible},
		{l.Backgrounds, CategoryBackground},
	}
	for _, pool := range pools {
		for _, k := range pool.kinds {
			if k.Category() != pool.want {
				return fmt.Errorf("%w: %q lists %s as %s", ErrInvalidLevel, l.Name, k, pool.want)
			}
		}
	}
	return nil
}

// Has reports whether the level can spawn kind k.
func (l Level) Has(k Kind) bool {
	for _, pool := range [][]Kind{l.Obstacles, l.Collectibles, l.Backgrounds} {
		for _, c := range pool {
			if c == k {
				return true
			}
		}
	}
	return false
}

// LevelManager holds the registered levels and the active one.
// Registering a name twice replaces the earlier level in place.
type LevelManager struct {
	mu      sync.RWMutex
	levels  map[string]Level
	order   []string
	current string
}

// NewLevelManager creates an empty level manager.
func NewLevelManager() *LevelManager {
	return &LevelManager{levels: make(map[string]Level)}
}

// Register adds or replaces a level. The first level registered becomes current.
func (m *LevelManager) Register(l Level) error {
	if err := l.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.levels[l.Name]; !exists {
		m.order = append(m.order, l.Name)
	}
	m.levels[l.Name] = l
	if m.current == "" {
		m.current = l.Name
	}
	return nil
}

// SwitchTo makes the named level current.
func (m *LevelManager) SwitchTo(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.levels[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	m.current = name
	return nil
}

// Current returns the active level.
func (m *LevelManager) Current() (Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.levels[m.current]
	if !ok {
		return Level{}, ErrNoLevel
	}
	return l, nil
}

// MustCurrent returns the active level and panics if there is none.
func (m *LevelManager) MustCurrent() Level {
	l, err := m.Current()
	if err != nil {
		panic(err)
	}
	return l
}

// Levels returns all levels in registration order.
func (m *LevelManager) Levels() []Level {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Level, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.levels[name])
	}
	return out
}

// Clear removes every level.
func (m *LevelManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.levels = make(map[string]Level)
	m.order = nil
	m.current = ""
}
