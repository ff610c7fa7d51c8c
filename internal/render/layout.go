package render

import "strings"

// Layout names one of the fixed composition strategies.
type Layout string

const (
	LayoutLyricsPage   Layout = "lyrics-page"
	LayoutLyricsPoster Layout = "lyrics-poster"
	LayoutBookmark     Layout = "bookmark"
	LayoutSquare       Layout = "square"
)

// LayoutSpec fixes the canvas pixel dimensions for a layout. The
// composition strategy itself lives in compose.go.
type LayoutSpec struct {
	Name   string
	Value  Layout
	Width  int
	Height int
}

var layouts = []LayoutSpec{
	{Name: "Lyrics Page", Value: LayoutLyricsPage, Width: 800, Height: 1400},
	{Name: "Lyrics Poster", Value: LayoutLyricsPoster, Width: 700, Height: 1000},
	{Name: "Bookmark", Value: LayoutBookmark, Width: 300, Height: 1000},
	{Name: "Square Card", Value: LayoutSquare, Width: 800, Height: 800},
}

func Layouts() []LayoutSpec {
	return layouts
}

// LayoutByValue resolves a layout by its value string; the second return
// reports whether it is a known layout.
func LayoutByValue(value string) (LayoutSpec, bool) {
	for _, l := range layouts {
		if string(l.Value) == value {
			return l, true
		}
	}

	return LayoutSpec{}, false
}

// AutoFontSize picks a font size from a per-layout threshold table keyed on
// lyric volume: more lines or characters select a smaller size.
func AutoFontSize(lyrics string, layout Layout) int {
	lineCount := 0
	for _, line := range strings.Split(lyrics, "\n") {
		if strings.TrimSpace(line) != "" {
			lineCount++
		}
	}
	charCount := len(lyrics)

	switch layout {
	case LayoutLyricsPage:
		switch {
		case lineCount > 40 || charCount > 1500:
			return 12
		case lineCount > 30 || charCount > 1000:
			return 14
		case lineCount > 20 || charCount > 600:
			return 16
		default:
			return 18
		}
	case LayoutLyricsPoster:
		switch {
		case lineCount > 35 || charCount > 1200:
			return 10
		case lineCount > 25 || charCount > 800:
			return 12
		case lineCount > 15 || charCount > 500:
			return 14
		default:
			return 16
		}
	case LayoutBookmark:
		switch {
		case lineCount > 30 || charCount > 800:
			return 9
		case lineCount > 20 || charCount > 500:
			return 10
		case lineCount > 12 || charCount > 300:
			return 11
		default:
			return 12
		}
	default: // square
		switch {
		case lineCount > 20 || charCount > 600:
			return 12
		case lineCount > 12 || charCount > 400:
			return 14
		default:
			return 16
		}
	}
}
