package types

import "image/color"

var (
	ColorBackground    = color.RGBA{34, 34, 34, 255}
	ColorFieldBg       = color.RGBA{40, 40, 45, 255}
	ColorGrid          = color.RGBA{52, 52, 58, 255}
	ColorSnakeBody     = color.RGBA{76, 175, 80, 255}
	ColorSnakeHead     = color.RGBA{102, 196, 102, 255}
	ColorFood          = color.RGBA{255, 82, 82, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}

// Fade dims c towards the tail: t=0 is the tail, t=1 the neck.
func Fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Darken(c, 0.6+0.4*t)
}
