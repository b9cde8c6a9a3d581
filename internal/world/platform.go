package world

import (
	"math/rand"

	"PlatformJumper/internal/config"
)

// Platform is a fixed-height ledge. It never changes after creation.
type Platform struct {
	X, Y, W, H float64
}

func (p Platform) Rect() Rect { return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// Generator owns the live platforms and grows the field upward as the
// camera climbs. Generation depends on camera position only.
type Generator struct {
	Platforms []Platform
	// Highest is the y of the next platform to place. It only ever decreases
	// unless a stall resets it.
	Highest float64

	cfg    config.Platforms
	viewW  float64
	viewH  float64
	buffer float64
	rng    *rand.Rand
	lastX  float64
}

// NewGenerator builds a generator and fills the opening field.
func NewGenerator(cfg config.Config, rng *rand.Rand) *Generator {
	g := &Generator{
		cfg:    cfg.Platforms,
		viewW:  float64(cfg.Window.Width),
		viewH:  float64(cfg.Window.Height),
		buffer: cfg.Buffer(),
		rng:    rng,
	}
	g.GenerateInitialPlatforms()
	return g
}

// GenerateInitialPlatforms resets the field to a full-width floor plus a
// corridor of ledges reaching the generation buffer above the first view.
func (g *Generator) GenerateInitialPlatforms() {
	floor := Platform{X: 0, Y: g.viewH - g.cfg.FloorAboveBottom, W: g.viewW, H: g.cfg.Height}
	g.Platforms = []Platform{floor}
	g.lastX = g.viewW / 2

	g.Highest = g.fill(g.viewH-g.cfg.FirstAboveBottom, -g.buffer)
}

// fill places ledges from y upward while y stays above top and returns the
// y the next ledge would go at.
func (g *Generator) fill(y, top float64) float64 {
	for y > top {
		g.place(y)
		y -= float64(g.randInt(g.cfg.MinGap, g.cfg.MaxGap))
	}
	return y
}

func (g *Generator) place(y float64) {
	width := g.randInt(g.cfg.MinWidth, g.cfg.MaxWidth)
	maxX := int(g.viewW) - width

	lo, hi := 0, maxX
	if g.cfg.Placement == config.PlaceProximity {
		lo = max(lo, int(g.lastX)-g.cfg.MaxHorizontalGap)
		hi = min(hi, int(g.lastX)+g.cfg.MaxHorizontalGap)
		if lo > hi {
			lo, hi = 0, maxX
		}
	}

	x := float64(g.randInt(lo, hi))
	g.lastX = x
	g.Platforms = append(g.Platforms, Platform{X: x, Y: y, W: float64(width), H: g.cfg.Height})
}

// randInt is inclusive on both ends.
func (g *Generator) randInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Update prunes ledges far below the view, extends the field above it and
// makes sure at least two ledges survive.
func (g *Generator) Update(cameraY float64) {
	viewBottom := cameraY + g.viewH + g.cfg.PruneMargin
	g.Retain(func(p Platform) bool { return p.Y < viewBottom })

	viewTop := cameraY - g.buffer
	if g.Highest-viewTop > g.viewH*g.cfg.StallScreens {
		g.Highest = viewTop + g.viewH
	}
	g.Highest = g.fill(g.Highest, viewTop)

	if len(g.Platforms) < 2 {
		g.Highest = g.fill(viewBottom-g.cfg.RefillOffset, viewTop)
	}
	for len(g.Platforms) < 2 {
		g.place(g.Highest)
		g.Highest -= float64(g.randInt(g.cfg.MinGap, g.cfg.MaxGap))
	}
}

// Retain keeps only the platforms keep accepts.
func (g *Generator) Retain(keep func(Platform) bool) {
	n := 0
	for _, p := range g.Platforms {
		if keep(p) {
			g.Platforms[n] = p
			n++
		}
	}
	g.Platforms = g.Platforms[:n]
}

// Lowest returns the top edge of the lowest live platform.
func (g *Generator) Lowest() (float64, bool) {
	if len(g.Platforms) == 0 {
		return 0, false
	}
	y := g.Platforms[0].Y
	for _, p := range g.Platforms[1:] {
		y = max(y, p.Y)
	}
	return y, true
}
