package world

import (
	"math"

	"PlatformJumper/internal/config"
)

// Player is the jumper. All fields are plain state; the methods below are
// the only things that move it.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	OnGround bool
	Charging bool
	Charge   int
	// Bounce is the wall push-back, applied on top of VX and decayed each tick.
	Bounce float64
	Facing int // -1 left, +1 right

	prev Rect
	cfg  config.Player
	maxX float64
}

// NewPlayer places a player with its top-left corner at (x, y). viewW bounds
// the horizontal range.
func NewPlayer(cfg config.Player, viewW, x, y float64) *Player {
	p := &Player{
		X: x, Y: y,
		W: cfg.Size, H: cfg.Size,
		Facing: 1,
		cfg:    cfg,
		maxX:   viewW - cfg.Size,
	}
	p.prev = p.Box()
	return p
}

func (p *Player) Box() Rect { return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// HandleJump drives the charge-jump state machine. Holding jump on the
// ground builds charge one step per tick; letting go fires the jump.
func (p *Player) HandleJump(pressed bool) {
	if !p.OnGround {
		// no charging or jumping in the air
		p.Charging = false
		p.Charge = 0
		return
	}

	switch {
	case pressed && !p.Charging:
		p.Charging = true
		p.Charge = 1
	case pressed:
		p.Charge = min(p.Charge+1, p.cfg.MaxCharge)
	case p.Charging:
		p.VY = p.JumpVelocity(p.Charge)
		p.Charging = false
		p.Charge = 0
		p.OnGround = false
	}
}

// JumpVelocity is the vertical speed a jump with the given charge starts at.
// It is negative (upward).
func (p *Player) JumpVelocity(charge int) float64 {
	charge = max(0, min(charge, p.cfg.MaxCharge))
	if p.cfg.JumpMode == config.JumpRatio {
		return -float64(charge) / float64(p.cfg.MaxCharge) * p.cfg.ChargeJumpPower
	}
	return -(p.cfg.JumpPower + float64(charge)/2)
}

// Update runs one tick of movement. Steering only works in the air.
func (p *Player) Update(left, right bool) {
	p.VX = 0
	if !p.OnGround {
		if left {
			p.VX = -p.cfg.MoveSpeed
			p.Facing = -1
		}
		if right {
			p.VX = p.cfg.MoveSpeed
			p.Facing = 1
		}
	}

	p.VY += p.cfg.Gravity
	p.VY = max(-p.cfg.MaxRiseSpeed, min(p.VY, p.cfg.TerminalVel))

	impact := math.Abs(p.VX + p.Bounce)
	p.X += p.VX + p.Bounce
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.Bounce = p.bounceStrength(impact)
		p.VX = 0
	} else if p.X > p.maxX {
		p.X = p.maxX
		p.Bounce = -p.bounceStrength(impact)
		p.VX = 0
	}

	if p.Bounce != 0 {
		p.Bounce *= p.cfg.BounceDecay
		if math.Abs(p.Bounce) < p.cfg.BounceSnap {
			p.Bounce = 0
		}
	}
}

func (p *Player) bounceStrength(impact float64) float64 {
	if p.cfg.BounceMode != config.BounceScaled || p.cfg.MoveSpeed <= 0 {
		return p.cfg.WallBounce
	}
	scale := max(1, min(impact/p.cfg.MoveSpeed, p.cfg.BounceScaleCap))
	return p.cfg.WallBounce * scale
}

// CheckPlatformCollision lands the player on the first platform it fell onto
// this tick. Only falling players land, and only on platforms whose top they
// were fully above last tick.
func (p *Player) CheckPlatformCollision(platforms []Platform) {
	prev := p.prev
	p.OnGround = false

	if p.VY >= 0 {
		box := p.Box()
		for _, pl := range platforms {
			r := pl.Rect()
			if !box.Overlaps(r) || prev.Bottom() > r.Y {
				continue
			}
			p.Y = r.Y - p.H
			p.VY = 0
			p.OnGround = true
			break
		}
	}

	p.prev = p.Box()
}
