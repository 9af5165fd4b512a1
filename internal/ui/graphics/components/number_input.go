package components

import (
	"strconv"
	"unicode"

	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const numberInputMaxDigits = 5

// NumberInput is a labelled field that only accepts decimal digits.
type NumberInput struct {
	X, Y          int
	Width, Height int
	Label         string
	Text          string
	Focused       bool
	cursorBlink   int
}

func NewNumberInput(width, height int, label string) *NumberInput {
	return &NumberInput{
		Width:  width,
		Height: height,
		Label:  label,
	}
}

func (ni *NumberInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ni.Focused = mx >= ni.X && mx < ni.X+ni.Width && my >= ni.Y && my < ni.Y+ni.Height
	}

	if !ni.Focused {
		return
	}

	ni.cursorBlink++

	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsDigit(r) && len(ni.Text) < numberInputMaxDigits {
			ni.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ni.Text) > 0 {
		if ebiten.IsKeyPressed(ebiten.KeyControl) {
			ni.Text = ""
		} else {
			ni.Text = ni.Text[:len(ni.Text)-1]
		}
	}
}

// Value parses the field. An empty field is an error.
func (ni *NumberInput) Value() (int, error) {
	return strconv.Atoi(ni.Text)
}

func (ni *NumberInput) SetValue(v int) {
	ni.Text = strconv.Itoa(v)
}

func (ni *NumberInput) Draw(screen *ebiten.Image) {
	fonts := types.GetFonts()
	text.Draw(screen, ni.Label, fonts.Normal, ni.X, ni.Y-8, types.ColorText)

	vector.DrawFilledRect(screen, float32(ni.X), float32(ni.Y), float32(ni.Width), float32(ni.Height), types.ColorInputBg, false)

	border := types.ColorInputBorder
	if ni.Focused {
		border = types.ColorInputFocused
	}
	vector.StrokeRect(screen, float32(ni.X), float32(ni.Y), float32(ni.Width), float32(ni.Height), 2, border, false)

	textX := ni.X + 8
	textY := ni.Y + ni.Height/2 + 4
	text.Draw(screen, ni.Text, fonts.Normal, textX, textY, types.ColorText)

	if ni.Focused && (ni.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ni.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		vector.StrokeLine(screen, cursorX, float32(ni.Y+5), cursorX, float32(ni.Y+ni.Height-5), 2, types.ColorText, false)
	}
}

func (ni *NumberInput) SetPosition(x, y int) {
	ni.X = x
	ni.Y = y
}
