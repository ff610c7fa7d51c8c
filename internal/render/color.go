package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const darkenFactor = 0.3

// DominantColor estimates a background color for an artwork by averaging
// a 50x50 downsample of it, then darkening the average so light text
// stays readable on top.
func DominantColor(img image.Image) color.NRGBA {
	sample := imaging.Resize(img, 50, 50, imaging.NearestNeighbor)
	bounds := sample.Bounds()

	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := sample.NRGBAAt(x, y)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}

	if n == 0 {
		return color.NRGBA{A: 0xff}
	}

	return color.NRGBA{
		R: uint8(float64(r/n) * darkenFactor),
		G: uint8(float64(g/n) * darkenFactor),
		B: uint8(float64(b/n) * darkenFactor),
		A: 0xff,
	}
}

// ParseHexColor parses #rgb and #rrggbb color strings.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}

	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid color %q", s)
	}

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	return c, nil
}
