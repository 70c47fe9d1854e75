package field

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"go-launchpad/launchpad"
)

// Field generates a slowly drifting color wash over the whole button grid.
// Each pad samples a layered sine field for hue and brightness; the result is
// snapped to the nearest pad palette entry by Lab distance, since the device
// only knows its 16 red/green mixes.
type Field struct {
	speed float64
	refs  []colorful.Color
}

// New creates a field. speed scales how fast the wash drifts; values well
// below 1 look best.
func New(speed float64) *Field {
	f := &Field{
		speed: speed,
		refs:  make([]colorful.Color, len(launchpad.Palette)),
	}
	for i, c := range launchpad.Palette {
		ref, err := colorful.Hex(c.Hex)
		if err != nil {
			// Palette hex strings are fixed constants; this cannot happen.
			ref = colorful.Color{}
		}
		f.refs[i] = ref
	}
	return f
}

// sample returns hue (degrees) and brightness (0..1) for one cell at time t.
func (f *Field) sample(x, y, t float64) (hue, value float64) {
	t *= f.speed
	a := math.Sin(0.7*x+t) + math.Sin(0.9*y-0.8*t) + math.Sin(0.5*(x+y)+0.6*t)
	hue = math.Mod(a*60+720, 360)
	b := math.Sin(0.3*x-0.4*t) * math.Cos(0.35*y+0.5*t)
	value = 0.55 + 0.45*b
	return hue, value
}

// ColorAt maps one cell to its palette color at time t.
func (f *Field) ColorAt(x, y int, t float64) launchpad.Color {
	h, v := f.sample(float64(x), float64(y), t)
	return f.nearest(colorful.Hsv(h, 1, v))
}

func (f *Field) nearest(c colorful.Color) launchpad.Color {
	best := 0
	bestDist := math.MaxFloat64
	for i, ref := range f.refs {
		if d := c.DistanceLab(ref); d < bestDist {
			best, bestDist = i, d
		}
	}
	return launchpad.Palette[best]
}

// Frame returns one color per button in batch order, sized for SetLeds. The
// edge column samples as x=8 and the top row as y=-1 so the wash continues
// past the grid.
func (f *Field) Frame(t float64) []launchpad.Color {
	buttons := launchpad.Buttons(launchpad.OrderBatch)
	out := make([]launchpad.Color, len(buttons))
	for i, b := range buttons {
		switch {
		case b.Grid:
			out[i] = f.ColorAt(b.X, b.Y, t)
		case i < 72:
			out[i] = f.ColorAt(8, i-64, t)
		default:
			out[i] = f.ColorAt(i-72, -1, t)
		}
	}
	return out
}
