package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// drawQR renders a themed QR code for content and paints it onto img at
// (x, y), optionally over an opaque swatch so the code stays scannable on
// busy artwork. opacity applies to both the code and the swatch.
func drawQR(img *image.NRGBA, content string, x, y, size, pad int, theme QRTheme, opacity float64) error {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("cannot encode QR content: %w", err)
	}

	qr.ForegroundColor = theme.Dark
	if theme.LightTransparent {
		qr.BackgroundColor = color.NRGBA{}
	} else {
		qr.BackgroundColor = theme.Light
	}

	mask := image.NewUniform(color.Alpha{A: uint8(opacity*255 + 0.5)})

	if !theme.BgTransparent {
		swatch := image.Rect(x-pad, y-pad, x+size+pad, y+size+pad)
		draw.DrawMask(img, swatch, image.NewUniform(theme.Bg), image.Point{}, mask, image.Point{}, draw.Over)
	}

	code := qr.Image(size)
	rect := image.Rect(x, y, x+size, y+size)
	draw.DrawMask(img, rect, code, code.Bounds().Min, mask, image.Point{}, draw.Over)

	return nil
}
