package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutByValue(t *testing.T) {
	tests := []struct {
		value  string
		found  bool
		width  int
		height int
	}{
		{"lyrics-page", true, 800, 1400},
		{"lyrics-poster", true, 700, 1000},
		{"bookmark", true, 300, 1000},
		{"square", true, 800, 800},
		{"postcard", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			spec, ok := LayoutByValue(tt.value)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.width, spec.Width)
				assert.Equal(t, tt.height, spec.Height)
			}
		})
	}
}

func TestAutoFontSize(t *testing.T) {
	short := strings.Repeat("la la la\n", 5)

	tests := []struct {
		name   string
		lyrics string
		layout Layout
		want   int
	}{
		{"short page", short, LayoutLyricsPage, 18},
		{"long page by chars", strings.Repeat("x", 1600), LayoutLyricsPage, 12},
		{"medium page by chars", strings.Repeat("x", 200), LayoutLyricsPage, 18},
		{"many lines page", strings.Repeat("line\n", 45), LayoutLyricsPage, 12},
		{"short poster", short, LayoutLyricsPoster, 16},
		{"dense poster", strings.Repeat("x", 1300), LayoutLyricsPoster, 10},
		{"short bookmark", short, LayoutBookmark, 12},
		{"dense bookmark", strings.Repeat("line\n", 35), LayoutBookmark, 9},
		{"short square", short, LayoutSquare, 16},
		{"dense square", strings.Repeat("x", 700), LayoutSquare, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoFontSize(tt.lyrics, tt.layout))
		})
	}
}

func TestAutoFontSizeShrinksWithVolume(t *testing.T) {
	for _, layout := range []Layout{LayoutLyricsPage, LayoutLyricsPoster, LayoutBookmark, LayoutSquare} {
		prev := 1 << 16
		for lines := 0; lines <= 50; lines += 5 {
			size := AutoFontSize(strings.Repeat("la la la\n", lines), layout)
			assert.LessOrEqual(t, size, prev, "layout %s at %d lines", layout, lines)
			prev = size
		}
	}
}

func TestBlankLinesDoNotCountTowardLineCount(t *testing.T) {
	sparse := strings.Repeat("line\n\n\n", 15) // 15 non-blank lines
	assert.Equal(t, 18, AutoFontSize(sparse, LayoutLyricsPage))
}
