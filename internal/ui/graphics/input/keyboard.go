package input

import (
	"github.com/Wilblik/cyberconda/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = map[ebiten.Key]domain.Direction{
	ebiten.KeyW:          domain.DirectionUp,
	ebiten.KeyArrowUp:    domain.DirectionUp,
	ebiten.KeyS:          domain.DirectionDown,
	ebiten.KeyArrowDown:  domain.DirectionDown,
	ebiten.KeyA:          domain.DirectionLeft,
	ebiten.KeyArrowLeft:  domain.DirectionLeft,
	ebiten.KeyD:          domain.DirectionRight,
	ebiten.KeyArrowRight: domain.DirectionRight,
}

type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction of a key pressed this frame, or
// DirectionNone. When several are pressed at once the last one wins.
func (kh *KeyboardHandler) Update() domain.Direction {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])

	dir := domain.DirectionNone
	for _, k := range kh.keys {
		if d, ok := directionKeys[k]; ok {
			dir = d
		}
	}
	return dir
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func IsResetPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsPausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func IsQuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
