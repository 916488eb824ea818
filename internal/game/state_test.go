package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	var s State

	assert.False(t, s.Pause(), "cannot pause before start")
	assert.False(t, s.End(), "cannot end before start")
	assert.False(t, s.Running())

	assert.True(t, s.Start())
	assert.False(t, s.Start(), "already started")
	assert.True(t, s.Running())

	assert.True(t, s.Pause())
	assert.False(t, s.Pause())
	assert.Equal(t, StateSnapshot{Started: true, Paused: true}, s.Snapshot())
	assert.True(t, s.Resume())
	assert.False(t, s.Resume())

	assert.True(t, s.Pause())
	assert.True(t, s.End(), "ending clears pause")
	assert.Equal(t, StateSnapshot{Started: true, Over: true}, s.Snapshot())

	assert.False(t, s.Pause(), "cannot pause after game over")
	assert.False(t, s.End())
	assert.False(t, s.Running())

	s.Reset()
	assert.Equal(t, StateSnapshot{}, s.Snapshot())
}

func TestStateTogglePause(t *testing.T) {
	var s State
	assert.False(t, s.TogglePause())

	s.Start()
	assert.True(t, s.TogglePause())
	assert.True(t, s.Snapshot().Paused)
	assert.True(t, s.TogglePause())
	assert.False(t, s.Snapshot().Paused)
}

func TestStateConcurrentAccess(t *testing.T) {
	var s State
	s.Start()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					s.TogglePause()
				} else {
					_ = s.Snapshot()
				}
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, s.Snapshot().Started)
}
