package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		return
	}

	boldFont, fontErr = opentype.Parse(gobold.TTF)
}

// newFace builds a font face at the given pixel size. Faces are not safe
// for concurrent use, so each composition builds its own.
func newFace(size int, bold bool) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fmt.Errorf("cannot parse embedded font: %w", fontErr)
	}

	src := regularFont
	if bold {
		src = boldFont
	}

	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
