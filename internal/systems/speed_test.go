package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSpeedConfig() SpeedConfig {
	return SpeedConfig{Initial: 1.0, Min: 0.5, Max: 3.0, Rate: 1.0, MinRate: 0.5}
}

func TestSpeedManagerUpdate(t *testing.T) {
	tests := []struct {
		name     string
		dt       float32
		expected float32
	}{
		{"one second", 1.0, 2.0},
		{"clamps at max", 10.0, 3.0},
		{"no time passes", 0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpeedManager(testSpeedConfig())
			s.Update(tc.dt)
			assert.InDelta(t, tc.expected, s.GameSpeed(), 1e-6)
		})
	}
}

func TestSpeedManagerFloorRises(t *testing.T) {
	s := NewSpeedManager(testSpeedConfig())

	s.Update(1.0)
	assert.InDelta(t, 1.0, s.CurrentMinSpeed(), 1e-6)

	s.Update(100)
	assert.Equal(t, float32(3.0), s.CurrentMinSpeed(), "floor never exceeds max")
	assert.Equal(t, float32(3.0), s.GameSpeed())
}

func TestSpeedManagerSlowdownClampsToFloor(t *testing.T) {
	s := NewSpeedManager(testSpeedConfig())
	s.Update(1.0) // speed 2.0, floor 1.0

	s.ApplySlowdown(0.5)
	assert.InDelta(t, 1.5, s.GameSpeed(), 1e-6)

	s.ApplySlowdown(10)
	assert.Equal(t, s.CurrentMinSpeed(), s.GameSpeed())
}

func TestSpeedManagerSpeedupClampsToMax(t *testing.T) {
	s := NewSpeedManager(testSpeedConfig())

	s.ApplySpeedup(0.5)
	assert.InDelta(t, 1.5, s.GameSpeed(), 1e-6)

	s.ApplySpeedup(10)
	assert.Equal(t, float32(3.0), s.GameSpeed())
}

func TestSpeedManagerReset(t *testing.T) {
	s := NewSpeedManager(testSpeedConfig())
	s.Update(5)
	s.ApplySlowdown(1)

	s.Reset()
	assert.Equal(t, float32(1.0), s.GameSpeed())
	assert.Equal(t, float32(0.5), s.CurrentMinSpeed())
}
