package components

import (
	"fmt"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatsPanel is the side column next to the board.
type StatsPanel struct {
	X, Y          int
	Width, Height int
}

func NewStatsPanel(x, y, width, height int) *StatsPanel {
	return &StatsPanel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sp *StatsPanel) Draw(screen *ebiten.Image, state *domain.GameState, stats app.Stats) {
	vector.DrawFilledRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	text.Draw(screen, "ROUND", fonts.Normal, sp.X+10, sp.Y+20, types.ColorTextHighlight)

	y := sp.Y + 45
	line := func(label string, value any) {
		text.Draw(screen, label, fonts.Normal, sp.X+10, y, types.ColorTextDim)
		text.Draw(screen, fmt.Sprint(value), fonts.Normal, sp.X+110, y, types.ColorText)
		y += 22
	}

	if state != nil {
		line("Score", state.Score())
		line("Length", state.Len())
		line("Interval", state.Speed())
		line("Heading", state.Direction())
	}

	y += 18
	text.Draw(screen, "SESSION", fonts.Normal, sp.X+10, y, types.ColorTextHighlight)
	y += 25

	line("Best", stats.BestScore)
	line("Last", stats.LastScore)
	line("Rounds", stats.RoundsPlayed)
	line("Eaten", stats.FoodEaten)
}
