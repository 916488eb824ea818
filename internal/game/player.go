package game

import (
	"github.com/vovakirdan/skydive/internal/core"
)

// PlayerState selects the player's pose and hitbox.
type PlayerState uint8

const (
	PlayerNormal PlayerState = iota
	PlayerSlowed             // arms spread: upper screen or recovering from a hit
	PlayerFast               // tucked dive: lower screen or hold-dive
)

// String returns the state name used in sprite ids.
func (s PlayerState) String() string {
	switch s {
	case PlayerSlowed:
		return "slowed"
	case PlayerFast:
		return "fast"
	default:
		return "normal"
	}
}

// Player is the diver. It steers toward the last input target.
type Player struct {
	cfg PlayerConfig

	Position core.Vector2 // top-left of the sprite
	Velocity core.Vector2
	target   core.Vector2 // desired center
	speed    float32
	state    PlayerState
	dive     float32 // remaining hold-dive time
	hitbox   core.Rect
	bounds   Bounds
}

// NewPlayer creates a player placed for the given bounds.
func NewPlayer(cfg PlayerConfig, bounds Bounds) *Player {
	p := &Player{cfg: cfg}
	p.Reset(bounds)
	return p
}

// Reset puts the player back at its start position with full speed.
func (p *Player) Reset(bounds Bounds) {
	p.bounds = bounds
	center := core.Vec(bounds.Width/2, bounds.Height*p.cfg.StartY)
	p.setCenter(center)
	p.target = p.Center()
	p.Velocity = core.Vector2{}
	p.speed = 1
	p.dive = 0
	p.state = PlayerNormal
	p.refresh()
}

// SetBounds updates the playfield and keeps the player inside it.
func (p *Player) SetBounds(bounds Bounds) {
	p.bounds = bounds
	p.setCenter(p.Center())
	p.target = p.clampCenter(p.target)
	p.refresh()
}

// HandleInput retargets the player. Tap and Drag steer toward the point,
// Hold starts a dive toward the bottom of the screen.
func (p *Player) HandleInput(ev core.InputEvent) {
	switch ev.Type {
	case core.InputTap, core.InputDrag:
		p.target = p.clampCenter(ev.Position)
	case core.InputHold:
		p.dive = p.cfg.DiveDuration
		p.target = p.clampCenter(core.Vec(ev.Position.X, p.bounds.Height))
	}
}

// Update moves the player toward its target and recovers speed.
func (p *Player) Update(dt float32) {
	if p.dive > 0 {
		p.dive = max(p.dive-dt, 0)
	}
	if p.speed < 1 {
		p.speed = min(p.speed+p.cfg.Recovery*dt, 1)
	}

	before := p.Position
	center := p.Center()
	delta := p.target.Sub(center)
	step := p.cfg.SteerSpeed * p.speed * dt
	if p.dive > 0 {
		step *= 1.5
	}
	if delta.Length() <= step {
		center = p.target
	} else {
		center = center.Add(delta.Normalize().Scale(step))
	}
	p.setCenter(center)

	if dt > 0 {
		v, err := p.Position.Sub(before).Div(dt)
		if err == nil {
			p.Velocity = v
		}
	}
	p.refresh()
}

// GoSlower knocks the player's speed down, floored at the configured minimum.
func (p *Player) GoSlower(amount float32) {
	p.speed = max(p.speed-amount, p.cfg.MinSpeed)
	p.refresh()
}

// GoFaster raises the player's speed, capped at the configured maximum.
func (p *Player) GoFaster(amount float32) {
	p.speed = min(p.speed+amount, p.cfg.MaxSpeed)
	p.refresh()
}

// Speed returns the player's current speed scalar.
func (p *Player) Speed() float32 {
	return p.speed
}

// State returns the player state derived from position and speed.
func (p *Player) State() PlayerState {
	return p.state
}

// Target returns the point the player is steering toward.
func (p *Player) Target() core.Vector2 {
	return p.target
}

// Hitbox returns the player's collision box.
func (p *Player) Hitbox() core.Rect {
	return p.hitbox
}

// Size returns the sprite size.
func (p *Player) Size() core.Vector2 {
	return core.Vec(p.cfg.Width, p.cfg.Height)
}

// Center returns the sprite center.
func (p *Player) Center() core.Vector2 {
	return p.Position.Add(p.Size().Scale(0.5))
}

// Sprite describes the player for a renderer.
func (p *Player) Sprite() Sprite {
	return Sprite{
		Name:   "player_" + p.state.String(),
		Bounds: core.RectAt(p.Position, p.Size()),
	}
}

func (p *Player) setCenter(c core.Vector2) {
	c = p.clampCenter(c)
	p.Position = c.Sub(p.Size().Scale(0.5))
}

func (p *Player) clampCenter(c core.Vector2) core.Vector2 {
	half := p.Size().Scale(0.5)
	return core.Vec(
		core.Clamp(c.X, half.X, max(p.bounds.Width-half.X, half.X)),
		core.Clamp(c.Y, half.Y, max(p.bounds.Height-half.Y, half.Y)),
	)
}

// refresh derives the state from dive, speed and screen position, then
// recomputes the hitbox centered on the sprite.
func (p *Player) refresh() {
	center := p.Center()
	third := p.bounds.Height / 3

	switch {
	case p.dive > 0:
		p.state = PlayerFast
	case p.speed < 1:
		p.state = PlayerSlowed
	case center.Y < third:
		p.state = PlayerSlowed
	case center.Y > 2*third:
		p.state = PlayerFast
	default:
		p.state = PlayerNormal
	}

	var size core.Vector2
	switch p.state {
	case PlayerSlowed:
		size = p.cfg.Hitboxes.Slowed
	case PlayerFast:
		size = p.cfg.Hitboxes.Fast
	default:
		size = p.cfg.Hitboxes.Normal
	}
	p.hitbox = core.RectAt(center.Sub(size.Scale(0.5)), size)
}
