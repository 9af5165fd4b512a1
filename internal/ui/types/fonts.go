package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

type Fonts struct {
	Title  font.Face
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Title:  inconsolata.Bold8x16,
		Normal: inconsolata.Regular8x16,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}
