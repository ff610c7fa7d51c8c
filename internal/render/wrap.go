package render

import (
	"strings"

	"golang.org/x/image/font"
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapText breaks text into lines that fit within maxWidth when measured
// with face. A single word wider than maxWidth gets a line of its own
// rather than being split mid-word.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Split(text, " ")
	lines := make([]string, 0, 1)
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if textWidth(face, candidate) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}

		current = candidate
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
