package figure

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps a normalized value in [0, 1] to a colour.
type Colormap struct {
	lut [256]color.NRGBA
	bad color.NRGBA
}

// viridis anchor colours, evenly spaced.
var viridisAnchors = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// Viridis is the default colormap used by Imshow.
var Viridis = NewColormap(viridisAnchors, color.NRGBA{A: 0})

// NewColormap interpolates anchors in Lab space into a 256 entry table.
// bad is used for NaN values. It panics on a malformed anchor.
func NewColormap(anchors []string, bad color.NRGBA) *Colormap {
	if len(anchors) < 2 {
		panic("figure: a colormap needs at least two anchors")
	}

	stops := make([]colorful.Color, len(anchors))
	for i, hex := range anchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("figure: invalid colormap anchor %q: %v", hex, err))
		}
		stops[i] = c
	}

	cm := &Colormap{bad: bad}
	segments := float64(len(stops) - 1)
	for i := range cm.lut {
		t := float64(i) / 255 * segments
		lo := int(math.Floor(t))
		if lo >= len(stops)-1 {
			lo = len(stops) - 2
		}
		c := stops[lo].BlendLab(stops[lo+1], t-float64(lo)).Clamped()
		r, g, b := c.RGB255()
		cm.lut[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return cm
}

// At returns the colour of v scaled to [vmin, vmax]. Values outside the
// range are clipped.
func (c *Colormap) At(v, vmin, vmax float64) color.NRGBA {
	if math.IsNaN(v) {
		return c.bad
	}

	t := 0.0
	if vmax > vmin {
		t = (v - vmin) / (vmax - vmin)
	}
	t = math.Max(0, math.Min(1, t))

	return c.lut[int(math.Round(t*255))]
}
