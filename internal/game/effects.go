package game

import (
	"math/rand"

	"github.com/vovakirdan/catflap/internal/config"
)

// Flash is the expanding "+1" shown where the cat scored.
type Flash struct {
	X, Y    float64
	Radius  float64
	Opacity float64
}

// Cloud is a drifting background decoration.
type Cloud struct {
	X, Y float64
	Size float64
}

// decor holds cosmetic state. It never influences the run outcome and uses
// its own RNG so obstacle placement is independent of cloud timing.
type decor struct {
	params config.Effects
	world  config.World
	rng    *rand.Rand

	flashes []Flash
	clouds  []Cloud

	tongueTimer int
	tongueOut   bool
}

func newDecor(seed int64, world config.World, params config.Effects) *decor {
	d := &decor{
		params: params,
		world:  world,
		rng:    rand.New(rand.NewSource(seed)),
	}
	d.reset(seed)
	return d
}

func (d *decor) reset(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
	d.flashes = d.flashes[:0]
	d.tongueTimer = 0
	d.tongueOut = true

	w, h := d.world.Width, d.world.Height
	d.clouds = []Cloud{
		{X: w * 0.1, Y: h * 0.2, Size: 30},
		{X: w * 0.4, Y: h * 0.1, Size: 40},
		{X: w * 0.7, Y: h * 0.25, Size: 35},
	}
}

func (d *decor) addFlash(x, y float64) {
	d.flashes = append(d.flashes, Flash{X: x, Y: y, Radius: d.params.FlashRadius, Opacity: 1})
}

func (d *decor) clearFlashes() {
	d.flashes = d.flashes[:0]
}

// advance runs one unpaused frame. Clouds only drift once a run has begun.
func (d *decor) advance(drift bool) {
	kept := d.flashes[:0]
	for _, f := range d.flashes {
		f.Opacity -= d.params.FlashFade
		f.Radius += d.params.FlashGrowth
		if f.Opacity > 0 {
			kept = append(kept, f)
		}
	}
	d.flashes = kept

	if drift {
		for i := range d.clouds {
			c := &d.clouds[i]
			c.X -= d.params.CloudDrift
			if c.X+c.Size*2 < 0 {
				c.X = d.world.Width + c.Size
				c.Y = d.rng.Float64() * d.world.Height * 0.4
			}
		}
	}

	d.tongueTimer++
	if d.params.TonguePeriod > 0 && d.tongueTimer > d.params.TonguePeriod {
		d.tongueOut = !d.tongueOut
		d.tongueTimer = 0
	}
}
