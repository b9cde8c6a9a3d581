package world

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"PlatformJumper/internal/config"
)

const cellSize = 32

// tag lets Resolv filter platform shapes from the query box
var tagPlatform = resolv.NewTag("platform")

// Index is a broadphase over the live platforms. The Resolv space is fixed
// in size, so it is re-anchored on the camera: it covers one screen above
// the view and reaches down past both the prune line and the deepest point a
// live player can fall to, plus a cell of slack on every side.
type Index struct {
	space   *resolv.Space
	shapes  map[resolv.IShape]int
	live    []Platform
	spaceW  float64
	spaceH  float64
	above   float64
	originY float64
}

// NewIndex sizes the band from the window, the prune margin and the
// game-over depth.
func NewIndex(cfg config.Config) *Index {
	viewH := float64(cfg.Window.Height)
	// lowest live platform bottom
	platforms := viewH + cfg.Platforms.PruneMargin + cfg.Platforms.Height
	// lowest player bottom before the life ends, plus one tick of falling
	player := viewH*cfg.Rules.GameOverK + cfg.Player.Size + cfg.Player.TerminalVel
	below := math.Ceil(max(platforms, player))

	w := cfg.Window.Width + 2*cellSize
	h := int(viewH+below) + 2*cellSize
	return &Index{
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
		shapes: make(map[resolv.IShape]int),
		spaceW: float64(w),
		spaceH: float64(h),
		above:  viewH,
	}
}

// local maps a world box into space coordinates.
func (ix *Index) local(r Rect) Rect {
	return Rect{X: r.X + cellSize, Y: r.Y - ix.originY, W: r.W, H: r.H}
}

func (ix *Index) fits(r Rect) bool {
	return r.X >= cellSize && r.Right() <= ix.spaceW-cellSize &&
		r.Y >= cellSize && r.Bottom() <= ix.spaceH-cellSize
}

// Sync rebuilds the index around the camera from the given platforms.
func (ix *Index) Sync(cameraY float64, platforms []Platform) {
	for sh := range ix.shapes {
		ix.space.Remove(sh)
	}
	clear(ix.shapes)

	ix.originY = cameraY - ix.above - cellSize
	ix.live = append(ix.live[:0], platforms...)
	for i, p := range ix.live {
		r := ix.local(p.Rect())
		if !ix.fits(r) {
			continue
		}
		sh := resolv.NewRectangleFromTopLeft(r.X, r.Y, r.W, r.H)
		sh.Tags().Set(tagPlatform)
		ix.space.Add(sh)
		ix.shapes[sh] = i
	}
}

// Len is the number of indexed platforms.
func (ix *Index) Len() int { return len(ix.shapes) }

// Near returns the indexed platforms whose boxes touch box, in the order
// they were synced.
func (ix *Index) Near(box Rect) []Platform {
	r := ix.local(box)
	if !ix.fits(r) {
		return nil
	}

	query := resolv.NewRectangleFromTopLeft(r.X, r.Y, r.W, r.H)
	ix.space.Add(query)
	defer ix.space.Remove(query)

	var hits []int
	query.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: query.SelectTouchingCells(0).FilterShapes().ByTags(tagPlatform),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if i, ok := ix.shapes[set.OtherShape]; ok {
				hits = append(hits, i)
			}
			return true // keep going, the caller picks
		},
	})

	slices.Sort(hits)
	hits = slices.Compact(hits)
	out := make([]Platform, len(hits))
	for n, i := range hits {
		out[n] = ix.live[i]
	}
	return out
}
