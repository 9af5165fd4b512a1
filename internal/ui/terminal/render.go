package terminal

import (
	"fmt"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two columns wide so cells look roughly square.
const cellColumns = 2

const (
	glyphEmpty = '·'
	glyphBody  = '▓'
	glyphHead  = '█'
	glyphFood  = '●'
)

var (
	styleBase  = tcell.StyleDefault.Background(tcell.NewRGBColor(34, 34, 34)).Foreground(tcell.NewRGBColor(220, 220, 220))
	styleEmpty = styleBase.Foreground(tcell.NewRGBColor(70, 70, 78))
	styleBody  = styleBase.Foreground(tcell.NewRGBColor(76, 175, 80))
	styleHead  = styleBase.Foreground(tcell.NewRGBColor(102, 196, 102)).Bold(true)
	styleFood  = styleBase.Foreground(tcell.NewRGBColor(255, 82, 82))
	styleHUD   = styleBase.Foreground(tcell.NewRGBColor(255, 255, 100))
	styleHint  = styleBase.Foreground(tcell.NewRGBColor(150, 150, 150))
)

// Renderer draws the game onto a tcell screen. Row 0 is the HUD, the board
// starts on row 1 and the key hint follows it.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// MinSize is the terminal size needed to show a field.
func MinSize(field *domain.Field) (int, int) {
	return field.Width * cellColumns, field.Height + 2
}

func (r *Renderer) Draw(state *domain.GameState, stats app.Stats, paused bool) {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()

	field := state.Field()
	w, h := r.screen.Size()
	needW, needH := MinSize(field)
	if w < needW || h < needH {
		r.drawText(0, 0, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), styleHUD)
		r.screen.Show()
		return
	}

	hud := fmt.Sprintf("%s  Best: %d  Length: %d", state.Title(), stats.BestScore, state.Len())
	if paused {
		hud += "  [PAUSED]"
	}
	r.drawText(0, 0, hud, styleHUD)

	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			r.setCell(domain.Coord{X: x, Y: y}, glyphEmpty, ' ', styleEmpty)
		}
	}

	r.setCell(state.Food(), glyphFood, ' ', styleFood)

	segments := state.Segments()
	for i, seg := range segments {
		if i == len(segments)-1 {
			r.setCell(seg, glyphHead, glyphHead, styleHead)
		} else {
			r.setCell(seg, glyphBody, glyphBody, styleBody)
		}
	}

	hint := "arrows/wasd move  p pause  r reset  q quit"
	if state.Direction() == domain.DirectionNone {
		hint = "press a direction to start  " + hint
	}
	r.drawText(0, field.Height+1, hint, styleHint)

	r.screen.Show()
}

func (r *Renderer) setCell(c domain.Coord, left, right rune, style tcell.Style) {
	x := c.X * cellColumns
	y := c.Y + 1
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
