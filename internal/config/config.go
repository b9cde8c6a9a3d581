// Package config holds every tunable of the game: window size, player
// physics, platform generation and the rules that end a life.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// JumpMode picks how a held charge turns into jump speed.
type JumpMode string

const (
	// JumpLinear adds half the charge on top of a base jump power. Its
	// strongest jumps exceed TerminalVel, so it needs MaxRiseSpeed raised
	// (25 for the classic tuning) or every charge above 10 jumps the same.
	JumpLinear JumpMode = "linear"
	// JumpRatio scales a fixed jump power by charge/MaxCharge.
	JumpRatio JumpMode = "ratio"
)

// BounceMode picks how hard a wall pushes the player back.
type BounceMode string

const (
	BounceFixed  BounceMode = "fixed"
	BounceScaled BounceMode = "scaled"
)

// Placement picks how a new platform's x is sampled.
type Placement string

const (
	// PlaceUniform samples x anywhere across the viewport.
	PlaceUniform Placement = "uniform"
	// PlaceProximity keeps x within MaxHorizontalGap of the previous platform.
	PlaceProximity Placement = "proximity"
)

// GameOverPolicy picks what a fall is measured against.
type GameOverPolicy string

const (
	// OverCamera ends the life once the player drops K screens below the view.
	OverCamera GameOverPolicy = "camera"
	// OverPlatform also ends it once the player drops K screens below the
	// lowest live platform, whichever comes first.
	OverPlatform GameOverPolicy = "platform"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type Player struct {
	Size            float64  `toml:"size"`
	MoveSpeed       float64  `toml:"move_speed"`
	Gravity         float64  `toml:"gravity"`
	TerminalVel     float64  `toml:"terminal_velocity"`
	MaxRiseSpeed    float64  `toml:"max_rise_speed"`
	JumpMode        JumpMode `toml:"jump_mode"`
	JumpPower       float64  `toml:"jump_power"`
	ChargeJumpPower float64  `toml:"charge_jump_power"`
	MaxCharge       int      `toml:"max_charge"`

	BounceMode     BounceMode `toml:"bounce_mode"`
	WallBounce     float64    `toml:"wall_bounce"`
	BounceScaleCap float64    `toml:"bounce_scale_cap"`
	BounceDecay    float64    `toml:"bounce_decay"`
	BounceSnap     float64    `toml:"bounce_snap"`

	// spawn offset measured up from the bottom of the viewport
	SpawnAboveBottom float64 `toml:"spawn_above_bottom"`
}

type Platforms struct {
	Height           float64   `toml:"height"`
	MinWidth         int       `toml:"min_width"`
	MaxWidth         int       `toml:"max_width"`
	MinGap           int       `toml:"min_gap"`
	MaxGap           int       `toml:"max_gap"`
	MaxHorizontalGap int       `toml:"max_horizontal_gap"`
	Placement        Placement `toml:"placement"`

	FloorAboveBottom float64 `toml:"floor_above_bottom"`
	FirstAboveBottom float64 `toml:"first_above_bottom"`
	BufferScreens    float64 `toml:"buffer_screens"`
	PruneMargin      float64 `toml:"prune_margin"`
	StallScreens     float64 `toml:"stall_screens"`
	// safety-net run starts this far above the prune line
	RefillOffset float64 `toml:"refill_offset"`
}

type Rules struct {
	ScoreDivisor   float64        `toml:"score_divisor"`
	GameOverK      float64        `toml:"game_over_k"`
	GameOverPolicy GameOverPolicy `toml:"game_over_policy"`
}

type Assets struct {
	Dir string `toml:"dir"`
	// RequireSprites turns a missing standing/jumping sprite into a startup error.
	RequireSprites bool `toml:"require_sprites"`
	Mute           bool `toml:"mute"`
}

// Config is the whole set of tunables.
type Config struct {
	Window    Window    `toml:"window"`
	Player    Player    `toml:"player"`
	Platforms Platforms `toml:"platforms"`
	Rules     Rules     `toml:"rules"`
	Assets    Assets    `toml:"assets"`
}

// Default returns the classic tuning.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "Platform Jumper", TPS: 60},
		Player: Player{
			Size:             40,
			MoveSpeed:        5,
			Gravity:          0.8,
			TerminalVel:      20,
			MaxRiseSpeed:     20,
			JumpMode:         JumpRatio,
			JumpPower:        15,
			ChargeJumpPower:  20,
			MaxCharge:        20,
			BounceMode:       BounceFixed,
			WallBounce:       20,
			BounceScaleCap:   2,
			BounceDecay:      0.85,
			BounceSnap:       0.5,
			SpawnAboveBottom: 150,
		},
		Platforms: Platforms{
			Height:           20,
			MinWidth:         60,
			MaxWidth:         120,
			MinGap:           80,
			MaxGap:           150,
			MaxHorizontalGap: 200,
			Placement:        PlaceProximity,
			FloorAboveBottom: 40,
			FirstAboveBottom: 150,
			BufferScreens:    3,
			PruneMargin:      400,
			StallScreens:     4,
			RefillOffset:     200,
		},
		Rules: Rules{
			ScoreDivisor:   10,
			GameOverK:      1,
			GameOverPolicy: OverPlatform,
		},
		Assets: Assets{Dir: "assets"},
	}
}

// Load overlays the TOML file at path on Default. A missing file yields
// the defaults and no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every field that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		bad("window tps %d must be positive", c.Window.TPS)
	}

	p := c.Player
	if p.Size <= 0 || p.Size >= float64(c.Window.Width) {
		bad("player size %.1f must fit the window", p.Size)
	}
	if p.Gravity <= 0 {
		bad("gravity %.2f must be positive", p.Gravity)
	}
	if p.TerminalVel <= 0 || p.MaxRiseSpeed <= 0 {
		bad("velocity ceilings must be positive")
	}
	if p.MaxCharge <= 0 {
		bad("max charge %d must be positive", p.MaxCharge)
	}
	switch p.JumpMode {
	case JumpLinear, JumpRatio:
	default:
		bad("unknown jump mode %q", p.JumpMode)
	}
	switch p.BounceMode {
	case BounceFixed, BounceScaled:
	default:
		bad("unknown bounce mode %q", p.BounceMode)
	}
	if p.BounceDecay <= 0 || p.BounceDecay >= 1 {
		bad("bounce decay %.2f must be in (0, 1)", p.BounceDecay)
	}
	if p.BounceSnap <= 0 {
		bad("bounce snap %.2f must be positive", p.BounceSnap)
	}
	if p.BounceMode == BounceScaled && p.BounceScaleCap < 1 {
		bad("bounce scale cap %.2f must be at least 1", p.BounceScaleCap)
	}

	pl := c.Platforms
	if pl.Height <= 0 {
		bad("platform height %.1f must be positive", pl.Height)
	}
	if pl.MinWidth <= 0 || pl.MinWidth > pl.MaxWidth || pl.MaxWidth > c.Window.Width {
		bad("platform widths [%d, %d] must be positive, ordered and fit the window", pl.MinWidth, pl.MaxWidth)
	}
	if pl.MinGap <= 0 || pl.MinGap > pl.MaxGap {
		bad("platform gaps [%d, %d] must be positive and ordered", pl.MinGap, pl.MaxGap)
	}
	switch pl.Placement {
	case PlaceUniform:
	case PlaceProximity:
		if pl.MaxHorizontalGap <= 0 {
			bad("max horizontal gap %d must be positive", pl.MaxHorizontalGap)
		}
	default:
		bad("unknown placement %q", pl.Placement)
	}
	if pl.BufferScreens <= 0 || pl.StallScreens <= 0 || pl.PruneMargin < 0 {
		bad("generation buffer, stall and prune distances must be positive")
	}

	r := c.Rules
	if r.ScoreDivisor <= 0 {
		bad("score divisor %.1f must be positive", r.ScoreDivisor)
	}
	if r.GameOverK <= 0 {
		bad("game over multiple %.2f must be positive", r.GameOverK)
	}
	switch r.GameOverPolicy {
	case OverCamera, OverPlatform:
	default:
		bad("unknown game over policy %q", r.GameOverPolicy)
	}

	return errors.Join(errs...)
}

// Buffer is how far above the view platforms are pre-generated.
func (c Config) Buffer() float64 { return float64(c.Window.Height) * c.Platforms.BufferScreens }
