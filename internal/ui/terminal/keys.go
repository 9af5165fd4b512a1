package terminal

import (
	"unicode"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"

	"github.com/gdamore/tcell/v2"
)

var arrowKeys = map[tcell.Key]domain.Direction{
	tcell.KeyUp:    domain.DirectionUp,
	tcell.KeyDown:  domain.DirectionDown,
	tcell.KeyLeft:  domain.DirectionLeft,
	tcell.KeyRight: domain.DirectionRight,
}

var runeKeys = map[rune]domain.Direction{
	'w': domain.DirectionUp,
	's': domain.DirectionDown,
	'a': domain.DirectionLeft,
	'd': domain.DirectionRight,
}

// TranslateKey maps a key press to a session input. ok is false for keys
// the game does not use.
func TranslateKey(ev *tcell.EventKey) (input app.InputEvent, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.InputEvent{Type: app.InputQuit}, true
	case tcell.KeyRune:
	default:
		if dir, found := arrowKeys[ev.Key()]; found {
			return app.SteerInput(dir), true
		}
		return app.InputEvent{}, false
	}

	r := unicode.ToLower(ev.Rune())
	if dir, found := runeKeys[r]; found {
		return app.SteerInput(dir), true
	}

	switch r {
	case 'r':
		return app.InputEvent{Type: app.InputReset}, true
	case 'p', ' ':
		return app.InputEvent{Type: app.InputPause}, true
	case 'q':
		return app.InputEvent{Type: app.InputQuit}, true
	}
	return app.InputEvent{}, false
}
