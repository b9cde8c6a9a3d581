// Package screen connects the game to ebiten: it samples the keyboard,
// draws the field and HUD, and plays sound effects.
package screen

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"PlatformJumper/internal/config"
	"PlatformJumper/internal/game"
)

// centered message panel (game over only)
const (
	panelW = 360
	panelH = 90
)

var (
	colPlatform = color.RGBA{0, 200, 0, 255}
	colPlayer   = color.RGBA{220, 40, 40, 255}
	colCharging = color.RGBA{40, 80, 240, 255}
	colMeter    = color.RGBA{240, 220, 60, 255}
	colPanel    = color.RGBA{0, 0, 0, 200}
)

// Screen implements ebiten.Game around a game.Game.
type Screen struct {
	game  *game.Game
	cfg   config.Config
	debug bool

	sfx     *sounds
	sprites sprites
	panel   *ebiten.Image
}

// New loads sprites and sounds. Only a missing required sprite fails.
func New(g *game.Game, cfg config.Config, debug bool) (*Screen, error) {
	sp, err := loadSprites(cfg.Assets.Dir, cfg.Assets.RequireSprites)
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}
	return &Screen{
		game:    g,
		cfg:     cfg,
		debug:   debug,
		sfx:     newSounds(cfg.Assets.Dir, cfg.Assets.Mute),
		sprites: sp,
	}, nil
}

// readInput takes the key snapshot for this tick (arrows or WASD, space or up to jump).
func readInput() game.Input {
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
	}
}

func (s *Screen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.sfx.muted = !s.sfx.muted
	}

	ev := s.game.Step(readInput())

	if ev.Jumped {
		s.sfx.play(s.sfx.jump)
	}
	if ev.Landed {
		s.sfx.play(s.sfx.land)
	}
	if ev.NewHigh && s.debug {
		log.Printf("life %d beat the best score %d", s.game.Lives, s.game.HighScore)
	}
	if ev.GameOver {
		s.sfx.play(s.sfx.over)
		if s.debug {
			log.Printf("life %d over: score %d, best %d", s.game.Lives, s.game.Score, s.game.HighScore)
		}
	}
	if ev.Restarted && s.debug {
		log.Printf("life %d started", s.game.Lives)
	}
	return nil
}

func (s *Screen) Draw(screen *ebiten.Image) {
	g := s.game

	for _, p := range g.Field.Platforms {
		y := g.ToScreen(p.Y)
		if y > float64(s.cfg.Window.Height) || y+p.H < 0 {
			continue
		}
		ebitenutil.DrawRect(screen, p.X, y, p.W, p.H, colPlatform)
	}

	s.drawPlayer(screen)

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", g.Score), face, 10, 20, color.White)
	text.Draw(screen, fmt.Sprintf("High Score: %d", g.HighScore), face, 10, 40, color.White)

	if g.State == game.Over {
		s.drawCenterPanel(screen, "Game Over! Press SPACE to restart")
	}

	if s.debug {
		msg := fmt.Sprintf("TPS: %.0f | platforms: %d | camera: %.0f | life: %d",
			ebiten.ActualTPS(), len(g.Field.Platforms), g.CameraY, g.Lives)
		ebitenutil.DebugPrintAt(screen, msg, 10, s.cfg.Window.Height-20)
	}
}

func (s *Screen) drawPlayer(screen *ebiten.Image) {
	p := s.game.Player
	y := s.game.ToScreen(p.Y)

	if img := s.sprites.pose(!p.OnGround); img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.W/float64(w), p.H/float64(h))
		if p.Facing < 0 {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(p.W, 0)
		}
		op.GeoM.Translate(p.X, y)
		if p.Charging {
			op.ColorScale.Scale(0.6, 0.7, 1, 1)
		}
		screen.DrawImage(img, op)
	} else {
		col := colPlayer
		if p.Charging {
			col = colCharging
		}
		ebitenutil.DrawRect(screen, p.X, y, p.W, p.H, col)
	}

	// charge meter above the head
	if p.Charging && s.cfg.Player.MaxCharge > 0 {
		frac := float64(p.Charge) / float64(s.cfg.Player.MaxCharge)
		ebitenutil.DrawRect(screen, p.X, y-8, p.W*frac, 4, colMeter)
	}
}

func (s *Screen) drawCenterPanel(screen *ebiten.Image, line string) {
	if s.panel == nil {
		s.panel = ebiten.NewImage(panelW, panelH)
	}
	s.panel.Fill(colPanel)

	face := basicfont.Face7x13
	b := text.BoundString(face, line)
	text.Draw(s.panel, line, face, (panelW-b.Dx())/2, (panelH+b.Dy())/2, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.cfg.Window.Width-panelW)/2, float64(s.cfg.Window.Height-panelH)/2)
	screen.DrawImage(s.panel, op)
}

func (s *Screen) Layout(_, _ int) (int, int) { return s.cfg.Window.Width, s.cfg.Window.Height }
