package game

import (
	"math"

	"github.com/vovakirdan/skydive/internal/core"
)

// Kind identifies a concrete entity variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindCoin
	KindMultiplier
	KindKite
	KindBalloon
	KindHangGlider
	KindChaserDiver
	KindCloud
	kindCount
)

// Category groups kinds by how the world treats them.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryObstacle
	CategoryCollectible
	CategoryBackground
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryObstacle:
		return "obstacle"
	case CategoryCollectible:
		return "collectible"
	case CategoryBackground:
		return "background"
	default:
		return "none"
	}
}

// kindSpec is the static description of a kind.
type kindSpec struct {
	name     string
	category Category
	size     core.Vector2
	fall     float32 // fraction of world fall speed

	points            int     // coin: base points
	multiplierBonus   float32 // multiplier: boost
	slowPenalty       float32 // non-lethal obstacle: speed lost
	multiplierPenalty float32 // non-lethal obstacle: multiplier lost
	lethal            bool
}

var kindSpecs = [kindCount]kindSpec{
	KindCoin: {
		name: "coin", category: CategoryCollectible,
		size: core.Vec(1, 1), fall: 1, points: 10,
	},
	KindMultiplier: {
		name: "multiplier", category: CategoryCollectible,
		size: core.Vec(2, 1), fall: 1, multiplierBonus: 0.5,
	},
	KindKite: {
		name: "kite", category: CategoryObstacle,
		size: core.Vec(3, 2), fall: 1, slowPenalty: 0.5, multiplierPenalty: 0.25,
	},
	KindBalloon: {
		name: "balloon", category: CategoryObstacle,
		size: core.Vec(3, 3), fall: 0.8, slowPenalty: 0.25, multiplierPenalty: 0.25,
	},
	KindHangGlider: {
		name: "hang_glider", category: CategoryObstacle,
		size: core.Vec(5, 1), fall: 1, lethal: true,
	},
	KindChaserDiver: {
		name: "chaser_diver", category: CategoryObstacle,
		size: core.Vec(2, 2), fall: 1.1, lethal: true,
	},
	KindCloud: {
		name: "cloud", category: CategoryBackground,
		size: core.Vec(6, 2), fall: 0.4,
	},
}

func (k Kind) spec() kindSpec {
	if k >= kindCount {
		return kindSpec{}
	}
	return kindSpecs[k]
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// String returns the kind's sprite name.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return k.spec().name
}

// Category returns whether the kind is collectible, obstacle or background.
func (k Kind) Category() Category {
	return k.spec().category
}

// Lethal reports whether touching the kind ends the run.
func (k Kind) Lethal() bool {
	return k.spec().lethal
}

// Size returns the sprite size in cells.
func (k Kind) Size() core.Vector2 {
	return k.spec().size
}

// ParseKind looks up a kind by name.
func ParseKind(name string) (Kind, bool) {
	for k := KindCoin; k < kindCount; k++ {
		if kindSpecs[k].name == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// Entity is any object in the world other than the player.
type Entity struct {
	Kind             Kind
	Position         core.Vector2 // top-left
	Velocity         core.Vector2 // own motion, on top of the world scroll
	Size             core.Vector2
	MarkedForRemoval bool
	Age              float32

	originX float32 // sway anchor
	phase   float32 // per-entity offset for sway and noise
	hitbox  core.Rect
}

// NewEntity builds an entity of the given kind at pos.
func NewEntity(kind Kind, pos core.Vector2) *Entity {
	e := &Entity{
		Kind:     kind,
		Position: pos,
		Size:     kind.Size(),
		originX:  pos.X,
		phase:    pos.X,
	}
	e.RefreshHitbox()
	return e
}

// Hitbox returns the hitbox cached by the last RefreshHitbox call.
func (e *Entity) Hitbox() core.Rect {
	return e.hitbox
}

// RefreshHitbox recomputes the cached hitbox from position and size.
func (e *Entity) RefreshHitbox() {
	e.hitbox = core.RectAt(e.Position, e.Size)
}

// Center returns the entity's center point.
func (e *Entity) Center() core.Vector2 {
	return e.Position.Add(e.Size.Scale(0.5))
}

// Sprite describes the entity for a renderer.
func (e *Entity) Sprite() Sprite {
	return Sprite{Name: e.Kind.String(), Category: e.Kind.Category(), Bounds: core.RectAt(e.Position, e.Size)}
}

// motion carries the per-tick world values entity movement depends on.
type motion struct {
	dt         float32
	fall       float32 // world fall speed scaled by game speed
	bounds     Bounds
	loopHeight float32
	player     core.Vector2
	noise      func(x, y float64) float64
	cfg        WorldConfig
}

// update advances the entity by one tick.
func (e *Entity) update(m motion) {
	e.Age += m.dt
	e.Position.Y += m.fall * e.Kind.spec().fall * m.dt

	switch e.Kind {
	case KindKite:
		sway := float32(math.Sin(float64(e.Age*2 + e.phase)))
		e.Position.X = e.originX + sway*2

	case KindBalloon:
		e.Position.X = e.originX + float32(math.Sin(float64(e.Age*0.7+e.phase)))*0.5

	case KindHangGlider:
		e.Position.X += e.Velocity.X * m.dt
		right := m.bounds.Width - e.Size.X
		if e.Position.X < 0 {
			e.Position.X = 0
			e.Velocity.X = -e.Velocity.X
		} else if e.Position.X > right {
			e.Position.X = right
			e.Velocity.X = -e.Velocity.X
		}

	case KindChaserDiver:
		dir := m.player.Sub(e.Center()).Normalize()
		e.Velocity = dir.Scale(m.cfg.ChaseSpeed)
		e.Position = e.Position.Add(e.Velocity.Scale(m.dt))

	case KindCloud:
		if m.noise != nil {
			drift := float32(m.noise(float64(e.phase), float64(e.Age)*0.2))
			e.Position.X += drift * m.cfg.CloudDrift * m.dt
		}
		if e.Position.Y > m.bounds.Height && m.loopHeight > 0 {
			e.Position.Y -= m.loopHeight
		}
	}
}
