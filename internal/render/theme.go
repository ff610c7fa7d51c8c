package render

import "image/color"

// QRTheme carries the color triple used when drawing a QR code: the dark
// module color, the light module color, and the swatch painted behind the
// code. Transparent flags suppress the light modules or the swatch.
type QRTheme struct {
	Name             string
	Dark             color.NRGBA
	Light            color.NRGBA
	LightTransparent bool
	Bg               color.NRGBA
	BgTransparent    bool
}

var themes = []QRTheme{
	{Name: "Classic", Dark: color.NRGBA{0x00, 0x00, 0x00, 0xff}, Light: color.NRGBA{0xff, 0xff, 0xff, 0xff}, Bg: color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	{Name: "Subtle", Dark: color.NRGBA{0x33, 0x33, 0x33, 0xff}, Light: color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}, Bg: color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}},
	{Name: "Warm", Dark: color.NRGBA{0x4a, 0x37, 0x28, 0xff}, Light: color.NRGBA{0xf5, 0xe6, 0xd3, 0xff}, Bg: color.NRGBA{0xf5, 0xe6, 0xd3, 0xff}},
	{Name: "Cool", Dark: color.NRGBA{0x1a, 0x36, 0x5d, 0xff}, Light: color.NRGBA{0xe6, 0xf0, 0xff, 0xff}, Bg: color.NRGBA{0xe6, 0xf0, 0xff, 0xff}},
	{Name: "Neon Pink", Dark: color.NRGBA{0xff, 0x00, 0xff, 0xff}, Light: color.NRGBA{0x1a, 0x1a, 0x2e, 0xff}, Bg: color.NRGBA{0x1a, 0x1a, 0x2e, 0xff}},
	{Name: "Neon Green", Dark: color.NRGBA{0x00, 0xff, 0x88, 0xff}, Light: color.NRGBA{0x0d, 0x11, 0x17, 0xff}, Bg: color.NRGBA{0x0d, 0x11, 0x17, 0xff}},
	{Name: "Transparent", Dark: color.NRGBA{0x00, 0x00, 0x00, 0xff}, LightTransparent: true, BgTransparent: true},
}

func Themes() []QRTheme {
	return themes
}

// ThemeByName resolves a theme by name, falling back to Classic for
// unknown names so a bad request still renders.
func ThemeByName(name string) QRTheme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}

	return themes[0]
}
