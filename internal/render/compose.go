package render

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNoBackground reports a composition request without an artwork.
var ErrNoBackground = errors.New("background image is required")

var (
	titleColor  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	lyricsColor = color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// Params describes one composition. Zero values for the optional fields
// select the defaults applied by Compose.
type Params struct {
	Background image.Image
	Layout     LayoutSpec
	TargetURL  string
	Title      string
	Lyrics     string
	QRSize     int
	QRTheme    QRTheme
	QROpacity  float64
	FontSize   int
	AutoFit    bool
	PanelRatio int
	BgColor    string
	Columns    int
}

func (p *Params) applyDefaults() {
	if p.QRSize <= 0 {
		p.QRSize = 80
	}
	p.QRSize = clampInt(p.QRSize, 50, 150)

	if p.QROpacity <= 0 {
		p.QROpacity = 1
	}
	if p.QROpacity < 0.3 {
		p.QROpacity = 0.3
	}
	if p.QROpacity > 1 {
		p.QROpacity = 1
	}

	if p.FontSize <= 0 {
		p.FontSize = 16
	}
	p.FontSize = clampInt(p.FontSize, 10, 24)

	if p.PanelRatio <= 0 {
		p.PanelRatio = 65
	}
	p.PanelRatio = clampInt(p.PanelRatio, 40, 80)

	if p.Columns != 2 {
		p.Columns = 1
	}
	if p.QRTheme.Name == "" {
		p.QRTheme = ThemeByName("Classic")
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Compose renders the artwork, title, lyrics and QR code into a single
// image according to the chosen layout.
func Compose(p Params) (image.Image, error) {
	if p.Background == nil {
		return nil, ErrNoBackground
	}
	p.applyDefaults()

	bgc, err := backgroundColor(p)
	if err != nil {
		return nil, err
	}

	fontSize := p.FontSize
	if p.AutoFit {
		fontSize = AutoFontSize(p.Lyrics, p.Layout.Value)
	}

	switch p.Layout.Value {
	case LayoutLyricsPoster:
		return composeLyricsPoster(p, bgc, fontSize)
	case LayoutBookmark:
		return composeBookmark(p, fontSize)
	case LayoutSquare:
		return composeSquare(p, fontSize)
	default:
		return composeLyricsPage(p, bgc, fontSize)
	}
}

func backgroundColor(p Params) (color.NRGBA, error) {
	if p.BgColor == "" || p.BgColor == "auto" {
		return DominantColor(p.Background), nil
	}

	return ParseHexColor(p.BgColor)
}

// drawText paints s onto img with its baseline at y. When centered, x is
// the horizontal midpoint instead of the left edge.
func drawText(img *image.NRGBA, face font.Face, s string, x, y int, c color.NRGBA, centered bool) {
	if centered {
		x -= textWidth(face, s) / 2
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// drawLyricsCentered paints lines center-aligned around centerX, wrapping
// each to maxWidth. Blank source lines advance the cursor by blankFactor
// of a line height. Drawing stops once the cursor passes maxY. The
// returned cursor marks the line below the last one painted.
func drawLyricsCentered(img *image.NRGBA, face font.Face, lines []string, centerX, maxWidth, fontSize int, y, lineHeight, maxY, blankFactor float64) float64 {
	for _, line := range lines {
		if y > maxY {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			y += lineHeight * blankFactor
			continue
		}

		for _, wrapped := range wrapText(face, trimmed, maxWidth) {
			if y > maxY {
				break
			}
			drawText(img, face, wrapped, centerX, int(y)+fontSize, lyricsColor, true)
			y += lineHeight
		}
	}

	return y
}

// drawLyricsColumns paints lines in two left-aligned columns, splitting
// the non-blank lines evenly with the extra one going left.
func drawLyricsColumns(img *image.NRGBA, face font.Face, lines []string, canvasWidth, fontSize int, startY, lineHeight, maxY, blankFactor float64) {
	const gap = 40
	colWidth := (canvasWidth - 100) / 2
	leftX := (canvasWidth - (2*colWidth + gap)) / 2
	rightX := leftX + colWidth + gap

	nonBlank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
	}
	split := (nonBlank + 1) / 2

	x, y := leftX, startY
	drawn := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			y += lineHeight * blankFactor
			continue
		}

		if drawn == split && x == leftX {
			x, y = rightX, startY
		}

		for _, wrapped := range wrapText(face, trimmed, colWidth) {
			if y > maxY {
				break
			}
			drawText(img, face, wrapped, x, int(y)+fontSize, lyricsColor, false)
			y += lineHeight
		}
		drawn++
	}
}

func composeLyricsPage(p Params, bgc color.NRGBA, fontSize int) (image.Image, error) {
	w, h := p.Layout.Width, p.Layout.Height
	canvas := imaging.New(w, h, bgc)

	artH := int(0.22 * float64(h))
	art := imaging.Fill(p.Background, w, artH, imaging.Center, imaging.Lanczos)
	canvas = imaging.Paste(canvas, art, image.Pt(0, 0))
	fadeToColor(canvas, image.Rect(0, artH-40, w, artH), bgc, false)

	titleSize := maxInt(fontSize+10, 24)
	titleFace, err := newFace(titleSize, true)
	if err != nil {
		return nil, err
	}
	lyricsFace, err := newFace(fontSize, false)
	if err != nil {
		return nil, err
	}

	y := float64(artH + 40)
	if p.Title != "" {
		drawText(canvas, titleFace, p.Title, w/2, int(y)+titleSize, titleColor, true)
		y += float64(titleSize + 20)
	}

	lineHeight := float64(fontSize) * 1.4
	maxY := float64(h - p.QRSize - 60)
	lines := strings.Split(p.Lyrics, "\n")

	if p.Columns == 2 {
		drawLyricsColumns(canvas, lyricsFace, lines, w, fontSize, y, lineHeight, maxY, 0.5)
	} else {
		drawLyricsCentered(canvas, lyricsFace, lines, w/2, w-80, fontSize, y, lineHeight, maxY, 0.5)
	}

	if p.TargetURL != "" {
		if err := drawQR(canvas, p.TargetURL, (w-p.QRSize)/2, h-p.QRSize-20, p.QRSize, 6, p.QRTheme, p.QROpacity); err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

func composeLyricsPoster(p Params, bgc color.NRGBA, fontSize int) (image.Image, error) {
	w, h := p.Layout.Width, p.Layout.Height
	const margin = 20
	canvas := imaging.New(w, h, bgc)

	artW := w * p.PanelRatio / 100
	art := imaging.Fill(p.Background, artW, h, imaging.Center, imaging.Lanczos)
	canvas = imaging.Paste(canvas, art, image.Pt(0, 0))
	fadeToColor(canvas, image.Rect(artW-80, 0, artW, h), bgc, true)

	titleSize := maxInt(fontSize+6, 18)
	titleFace, err := newFace(titleSize, true)
	if err != nil {
		return nil, err
	}
	lyricsFace, err := newFace(fontSize, false)
	if err != nil {
		return nil, err
	}

	textX := artW + margin
	textW := w - artW - 2*margin
	lineHeight := float64(fontSize) * 1.3
	lines := strings.Split(p.Lyrics, "\n")

	var titleLines []string
	contentH := 0.0
	if p.Title != "" {
		titleLines = wrapText(titleFace, p.Title, textW)
		contentH += float64(len(titleLines)*(titleSize+6) + 20)
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			contentH += lineHeight * 0.5
			continue
		}
		contentH += float64(len(wrapText(lyricsFace, trimmed, textW))) * lineHeight
	}

	y := (float64(h) - contentH) / 2
	if y < margin {
		y = margin
	}

	for _, titleLine := range titleLines {
		drawText(canvas, titleFace, titleLine, textX, int(y)+titleSize, titleColor, false)
		y += float64(titleSize + 6)
	}
	if len(titleLines) > 0 {
		y += 20
	}

	maxY := float64(h - margin)
	for _, line := range lines {
		if y > maxY {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			y += lineHeight * 0.5
			continue
		}

		for _, wrapped := range wrapText(lyricsFace, trimmed, textW) {
			if y > maxY {
				break
			}
			drawText(canvas, lyricsFace, wrapped, textX, int(y)+fontSize, lyricsColor, false)
			y += lineHeight
		}
	}

	if p.TargetURL != "" {
		if err := drawQR(canvas, p.TargetURL, margin, h-p.QRSize-margin, p.QRSize, 6, p.QRTheme, p.QROpacity); err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

func composeBookmark(p Params, fontSize int) (image.Image, error) {
	w, h := p.Layout.Width, p.Layout.Height
	canvas := imaging.New(w, h, color.NRGBA{A: 0xff})

	art := imaging.Fill(p.Background, w, h, imaging.Center, imaging.Lanczos)
	canvas = imaging.Paste(canvas, art, image.Pt(0, 0))
	overlayGradient(canvas, canvas.Bounds(), color.NRGBA{A: 0xff}, []gradientStop{
		{0, 0.3}, {0.15, 0.5}, {0.5, 0.7}, {1, 0.85},
	}, false)

	titleSize := fontSize + 2
	titleFace, err := newFace(titleSize, true)
	if err != nil {
		return nil, err
	}
	lyricsFace, err := newFace(fontSize, false)
	if err != nil {
		return nil, err
	}

	lineHeight := float64(fontSize) * 1.25
	lines := strings.Split(p.Lyrics, "\n")

	qrArea := 0
	if p.TargetURL != "" {
		qrArea = p.QRSize + 20
	}
	availableH := h - qrArea - 20

	contentH := 0.0
	if p.Title != "" {
		contentH += float64(titleSize + 15)
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			contentH += lineHeight * 0.4
			continue
		}
		contentH += float64(len(wrapText(lyricsFace, trimmed, w-24))) * lineHeight
	}

	y := (float64(availableH)-contentH)/2 + 20
	if y < 20 {
		y = 20
	}

	if p.Title != "" {
		drawText(canvas, titleFace, p.Title, w/2, int(y)+titleSize, titleColor, true)
		y += float64(titleSize + 15)
	}

	maxY := float64(h - qrArea - 10)
	drawLyricsCentered(canvas, lyricsFace, lines, w/2, w-24, fontSize, y, lineHeight, maxY, 0.4)

	if p.TargetURL != "" {
		if err := drawQR(canvas, p.TargetURL, (w-p.QRSize)/2, h-p.QRSize-10, p.QRSize, 4, p.QRTheme, p.QROpacity); err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

func composeSquare(p Params, fontSize int) (image.Image, error) {
	w, h := p.Layout.Width, p.Layout.Height
	canvas := imaging.New(w, h, color.NRGBA{A: 0xff})

	art := imaging.Fill(p.Background, w, h, imaging.Center, imaging.Lanczos)
	canvas = imaging.Paste(canvas, art, image.Pt(0, 0))
	overlayGradient(canvas, canvas.Bounds(), color.NRGBA{A: 0xff}, []gradientStop{
		{0, 0.4}, {0.2, 0.55}, {0.6, 0.7}, {1, 0.85},
	}, false)

	titleSize := maxInt(fontSize+6, 22)
	titleFace, err := newFace(titleSize, true)
	if err != nil {
		return nil, err
	}
	lyricsFace, err := newFace(fontSize, false)
	if err != nil {
		return nil, err
	}

	y := 50.0
	if p.Title != "" {
		drawText(canvas, titleFace, p.Title, w/2, int(y)+titleSize, titleColor, true)
		y += float64(titleSize + 25)
	}

	lineHeight := float64(fontSize) * 1.35
	maxY := float64(h - p.QRSize - 40)
	lines := strings.Split(p.Lyrics, "\n")

	if p.Columns == 2 {
		drawLyricsColumns(canvas, lyricsFace, lines, w, fontSize, y, lineHeight, maxY, 0.4)
	} else {
		drawLyricsCentered(canvas, lyricsFace, lines, w/2, w-60, fontSize, y, lineHeight, maxY, 0.4)
	}

	if p.TargetURL != "" {
		if err := drawQR(canvas, p.TargetURL, w-p.QRSize-20, h-p.QRSize-20, p.QRSize, 6, p.QRTheme, p.QROpacity); err != nil {
			return nil, err
		}
	}

	return canvas, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
