// Package registry provides a global catalog of levels.
// Levels register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/skydive/internal/game"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	Name  string
	Title string
}

// Factory is a function that builds a level definition.
type Factory func() game.Level

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level's init() function.
// Panics if a level with the same name is already registered or the level
// it builds is invalid.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", name))
	}

	l := f()
	if l.Name != name {
		panic(fmt.Sprintf("registry: level registered as %q is named %q", name, l.Name))
	}
	if err := l.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}

	factories[name] = f
	titles[name] = l.Title
}

// List returns information about all registered levels, sorted by name.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for name := range factories {
		result = append(result, LevelInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds a level by its name.
// Returns an error if the name is not registered.
func Create(name string) (game.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return game.Level{}, fmt.Errorf("registry: %w: %q", game.ErrUnknownLevel, name)
	}

	return f(), nil
}

// Exists checks if a level with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Populate registers every known level with m in name order and makes
// current the active one. An empty current keeps the first level.
func Populate(m *game.LevelManager, current string) error {
	for _, info := range List() {
		l, err := Create(info.Name)
		if err != nil {
			return err
		}
		if err := m.Register(l); err != nil {
			return err
		}
	}
	if current == "" {
		return nil
	}
	return m.SwitchTo(current)
}

// NewManager builds a game manager over every registered level with level
// as the starting one. An empty level starts on the first in name order.
func NewManager(cfg game.Config, level string, bounds game.Bounds, opts ...game.Option) (*game.Manager, error) {
	levels := game.NewLevelManager()
	if err := Populate(levels, level); err != nil {
		return nil, err
	}
	return game.NewManager(cfg, levels, bounds, opts...)
}
