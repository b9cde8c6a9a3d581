package screen

import (
	"fmt"
	_ "image/png" // let ebiten load .png sprites
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// sprites for the two player poses; nil means draw rectangles
type sprites struct {
	stand *ebiten.Image
	jump  *ebiten.Image
}

// loadSprites looks for the standing and jumping poses in dir. When required
// is set a missing pose is an error, otherwise rectangles are used.
func loadSprites(dir string, required bool) (sprites, error) {
	var sp sprites
	var err error

	sp.stand, err = firstImage(dir, "standing.png", "player.png")
	if err != nil && required {
		return sp, fmt.Errorf("standing sprite: %w", err)
	}
	sp.jump, err = firstImage(dir, "jumping.png")
	if err != nil && required {
		return sp, fmt.Errorf("jumping sprite: %w", err)
	}

	if sp.stand == nil {
		log.Println("no player sprites found; drawing rectangles")
		sp.jump = nil
		return sp, nil
	}
	if sp.jump == nil {
		sp.jump = sp.stand
	}
	return sp, nil
}

func firstImage(dir string, names ...string) (*ebiten.Image, error) {
	var err error
	for _, name := range names {
		var img *ebiten.Image
		if img, _, err = ebitenutil.NewImageFromFile(filepath.Join(dir, name)); err == nil {
			return img, nil
		}
	}
	return nil, err
}

// pose picks the sprite for the player's current state.
func (sp sprites) pose(airborne bool) *ebiten.Image {
	if airborne {
		return sp.jump
	}
	return sp.stand
}
