package render

import (
	"image"
	"image/color"
)

// gradientStop pairs a position along the gradient axis (0..1) with the
// overlay alpha (0..1) at that position.
type gradientStop struct {
	pos   float64
	alpha float64
}

func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	if c.A == 0xff {
		img.SetNRGBA(x, y, c)
		return
	}

	dst := img.NRGBAAt(x, y)
	a := float64(c.A) / 255
	img.SetNRGBA(x, y, color.NRGBA{
		R: uint8(float64(c.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(c.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(c.B)*a + float64(dst.B)*(1-a)),
		A: 0xff,
	})
}

func alphaAt(stops []gradientStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].pos {
		return stops[0].alpha
	}

	for i := 1; i < len(stops); i++ {
		if t <= stops[i].pos {
			prev, next := stops[i-1], stops[i]
			span := next.pos - prev.pos
			if span == 0 {
				return next.alpha
			}
			f := (t - prev.pos) / span
			return prev.alpha + (next.alpha-prev.alpha)*f
		}
	}

	return stops[len(stops)-1].alpha
}

// overlayGradient paints c over rect with its alpha interpolated between
// stops. Vertical gradients run top to bottom, horizontal left to right.
func overlayGradient(img *image.NRGBA, rect image.Rectangle, c color.NRGBA, stops []gradientStop, horizontal bool) {
	span := rect.Dy()
	if horizontal {
		span = rect.Dx()
	}
	if span <= 1 {
		return
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := float64(y-rect.Min.Y) / float64(span-1)
			if horizontal {
				t = float64(x-rect.Min.X) / float64(span-1)
			}

			a := alphaAt(stops, t)
			blendPixel(img, x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)})
		}
	}
}

// fadeToColor blends rect from fully transparent to solid c along its
// axis, softening the edge between an artwork and the background fill.
func fadeToColor(img *image.NRGBA, rect image.Rectangle, c color.NRGBA, horizontal bool) {
	overlayGradient(img, rect, c, []gradientStop{{0, 0}, {1, 1}}, horizontal)
}
