// Package game runs one life after another: it steps the player and the
// platform field, moves the camera, keeps score and decides when a life ends.
package game

import (
	"math/rand"

	"PlatformJumper/internal/config"
	"PlatformJumper/internal/world"
)

type State int

const (
	Playing State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "game-over"
	}
	return "playing"
}

// Input is the key snapshot for one tick.
type Input struct {
	Left, Right bool
	Jump        bool
}

// Events reports what happened during a Step, for sound and logging.
type Events struct {
	Jumped    bool
	Landed    bool
	GameOver  bool
	Restarted bool
	// NewHigh fires on the first tick of a life that beats the session best.
	NewHigh bool
}

// Game is the whole session. HighScore and Lives survive restarts.
type Game struct {
	Player *world.Player
	Field  *world.Generator

	// CameraY is the world y drawn at the top of the screen. It only decreases.
	CameraY   float64
	Score     int
	HighScore int
	State     State
	Lives     int

	cfg   config.Config
	rng   *rand.Rand
	index *world.Index
	viewW float64
	viewH float64
	// set once this life has passed the previous best
	beatHigh bool
}

// New starts a session with its first life already running.
func New(cfg config.Config, rng *rand.Rand) *Game {
	g := &Game{
		cfg:   cfg,
		rng:   rng,
		index: world.NewIndex(cfg),
		viewW: float64(cfg.Window.Width),
		viewH: float64(cfg.Window.Height),
	}
	g.Reset()
	return g
}

// Reset begins a fresh life: new player at the spawn point, new field,
// camera and score back to zero.
func (g *Game) Reset() {
	spawnX := g.viewW / 2
	spawnY := g.viewH - g.cfg.Player.SpawnAboveBottom
	g.Player = world.NewPlayer(g.cfg.Player, g.viewW, spawnX, spawnY)
	g.Field = world.NewGenerator(g.cfg, g.rng)
	g.CameraY = 0
	g.Score = 0
	g.State = Playing
	g.beatHigh = false
	g.Lives++
}

// Step advances one tick.
func (g *Game) Step(in Input) Events {
	var ev Events

	if g.State == Over {
		if in.Jump {
			g.Reset()
			ev.Restarted = true
		}
		return ev
	}

	p := g.Player
	grounded := p.OnGround
	p.HandleJump(in.Jump)
	ev.Jumped = grounded && !p.OnGround
	airborne := !p.OnGround

	p.Update(in.Left, in.Right)

	g.index.Sync(g.CameraY, g.Field.Platforms)
	p.CheckPlatformCollision(g.index.Near(p.Box()))
	ev.Landed = airborne && p.OnGround

	g.CameraY = min(g.CameraY, p.Y-g.viewH/2)
	g.Field.Update(g.CameraY)

	g.Score = g.score()
	if g.Score > g.HighScore {
		g.HighScore = g.Score
		ev.NewHigh = !g.beatHigh
		g.beatHigh = true
	}

	if g.fellOut() {
		g.State = Over
		ev.GameOver = true
	}
	return ev
}

func (g *Game) score() int {
	return max(0, int(-g.CameraY/g.cfg.Rules.ScoreDivisor))
}

// Threshold is the world y the player's top must pass for the life to end.
func (g *Game) Threshold() float64 {
	fall := g.viewH * g.cfg.Rules.GameOverK
	limit := g.CameraY + fall
	if g.cfg.Rules.GameOverPolicy == config.OverPlatform {
		if lowest, ok := g.Field.Lowest(); ok {
			limit = min(limit, lowest+fall)
		}
	}
	return limit
}

func (g *Game) fellOut() bool { return g.Player.Y > g.Threshold() }

// ToScreen maps a world y onto the screen.
func (g *Game) ToScreen(y float64) float64 { return y - g.CameraY }
