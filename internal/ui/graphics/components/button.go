package components

import (
	"image/color"

	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable label. Hotkey, when set, is drawn dimmed beside the
// label so the keyboard shortcut is discoverable.
type Button struct {
	X, Y          int
	Width, Height int
	Label         string
	Hotkey        string
	Enabled       bool
	hovered       bool
	pressed       bool
}

func NewButton(width, height int, label, hotkey string) *Button {
	return &Button{
		Width:   width,
		Height:  height,
		Label:   label,
		Hotkey:  hotkey,
		Enabled: true,
	}
}

// Clicked reports a completed click: pressed inside and released inside.
func (b *Button) Clicked() bool {
	if !b.Enabled {
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = b.contains(mx, my)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bg color.RGBA
	switch {
	case !b.Enabled:
		bg = types.Darken(types.ColorButton, 0.5)
	case b.pressed:
		bg = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered:
		bg = types.ColorButtonHover
	default:
		bg = types.ColorButton
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	fg := types.ColorButtonText
	if !b.Enabled {
		fg = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Label)
	text.Draw(screen, b.Label, fonts.Normal, b.X+(b.Width-bounds.Dx())/2, b.Y+(b.Height+bounds.Dy())/2, fg)

	if b.Hotkey != "" {
		hk := text.BoundString(fonts.Small, b.Hotkey)
		text.Draw(screen, b.Hotkey, fonts.Small, b.X+b.Width-hk.Dx()-8, b.Y+(b.Height+hk.Dy())/2, types.ColorTextDim)
	}
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
