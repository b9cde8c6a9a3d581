package screen

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// sounds holds the three effects. Each falls back to a synthesized beep
// when its WAV is missing.
type sounds struct {
	ctx   *audio.Context
	jump  *audio.Player
	land  *audio.Player
	over  *audio.Player
	muted bool
}

func newSounds(dir string, muted bool) *sounds {
	s := &sounds{ctx: audio.NewContext(sampleRate), muted: muted}
	s.jump = s.load(filepath.Join(dir, "jump.wav"), 660, 0.08)
	s.land = s.load(filepath.Join(dir, "land.wav"), 180, 0.05)
	s.over = s.load(filepath.Join(dir, "gameover.wav"), 120, 0.35)
	return s
}

func (s *sounds) load(path string, freq, durSec float64) *audio.Player {
	if p, err := loadWav(s.ctx, path); err == nil {
		return p
	}
	return newBeep(s.ctx, freq, durSec)
}

func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := wav.DecodeWithoutResampling(f)
	if err != nil {
		return nil, err
	}
	// the player streams lazily, so the file has to outlive this call
	data := new(bytes.Buffer)
	if _, err := data.ReadFrom(st); err != nil {
		return nil, err
	}
	return ctx.NewPlayerFromBytes(data.Bytes()), nil
}

// synthesize a short sine beep, 16-bit stereo
func newBeep(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	pcm := make([]byte, n*4)
	amp := 0.3
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * fade
		smp := int16(v * amp * 32767)
		pcm[4*i] = byte(smp)
		pcm[4*i+1] = byte(smp >> 8)
		pcm[4*i+2] = byte(smp)
		pcm[4*i+3] = byte(smp >> 8)
	}
	return ctx.NewPlayerFromBytes(pcm)
}

func (s *sounds) play(p *audio.Player) {
	if p == nil || s.muted {
		return
	}
	_ = p.Rewind()
	p.Play()
}
