package world

import (
	"testing"

	"PlatformJumper/internal/config"
)

func TestIndexNear(t *testing.T) {
	platforms := []Platform{
		{X: 0, Y: 560, W: 800, H: 20},
		{X: 300, Y: 400, W: 100, H: 20},
		{X: 600, Y: 200, W: 100, H: 20},
	}
	ix := NewIndex(config.Default())
	ix.Sync(0, platforms)

	if ix.Len() != len(platforms) {
		t.Fatalf("Expected %d indexed platforms, got %d", len(platforms), ix.Len())
	}

	tests := []struct {
		name string
		box  Rect
		want []Platform
	}{
		{"sunk into floor", Rect{X: 100, Y: 530, W: 40, H: 40}, platforms[:1]},
		{"on ledge", Rect{X: 320, Y: 370, W: 40, H: 40}, platforms[1:2]},
		{"in the open", Rect{X: 100, Y: 100, W: 40, H: 40}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Near(tt.box)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %+v, got %+v", tt.want[i], got[i])
				}
			}
		})
	}
}

func TestIndexFollowsCamera(t *testing.T) {
	high := Platform{X: 300, Y: -5000, W: 100, H: 20}
	low := Platform{X: 300, Y: 560, W: 100, H: 20}
	ix := NewIndex(config.Default())

	ix.Sync(0, []Platform{high, low})
	if ix.Len() != 1 {
		t.Fatalf("Expected only the nearby platform indexed, got %d", ix.Len())
	}
	if got := ix.Near(Rect{X: 320, Y: -5030, W: 40, H: 40}); got != nil {
		t.Errorf("Expected nothing far above the camera, got %v", got)
	}

	ix.Sync(-5200, []Platform{high, low})
	if ix.Len() != 1 {
		t.Fatalf("Expected only the high platform after the camera moved, got %d", ix.Len())
	}
	got := ix.Near(Rect{X: 320, Y: -5030, W: 40, H: 40})
	if len(got) != 1 || got[0] != high {
		t.Errorf("Expected the high platform, got %v", got)
	}
}

func TestIndexCoversDeepConfigs(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.GameOverK = 3
	cfg.Platforms.PruneMargin = 1000
	ix := NewIndex(cfg)

	// just above the prune line and well below the default band
	deep := Platform{X: 0, Y: 1550, W: 800, H: 20}
	ix.Sync(0, []Platform{deep})
	if ix.Len() != 1 {
		t.Fatalf("Expected the deep platform indexed, got %d", ix.Len())
	}

	// a player about to pass the game-over line still finds it
	got := ix.Near(Rect{X: 100, Y: 1520, W: 40, H: 40})
	if len(got) != 1 || got[0] != deep {
		t.Errorf("Expected the deep platform, got %v", got)
	}
}
