package screens

import (
	"fmt"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/components"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/input"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Layout of the game screen in logical pixels.
type GameLayout struct {
	BoardWidth   int
	BoardHeight  int
	HeaderHeight int
	FooterHeight int
	PanelWidth   int
}

type GameScreen struct {
	ctx    types.ScreenContext
	layout GameLayout

	fieldRenderer *components.FieldRenderer
	statsPanel    *components.StatsPanel
	keyboard      *input.KeyboardHandler

	state  *domain.GameState
	stats  app.Stats
	paused bool

	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext, layout GameLayout) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		layout:        layout,
		fieldRenderer: components.NewFieldRenderer(0, layout.HeaderHeight),
		statsPanel:    components.NewStatsPanel(layout.BoardWidth, layout.HeaderHeight, layout.PanelWidth, layout.BoardHeight),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(state *domain.GameState, stats app.Stats, paused bool) {
	s.state = state
	s.stats = stats
	s.paused = paused
}

func (s *GameScreen) Update() types.UIEvent {
	switch {
	case input.IsEscapePressed():
		return types.UIEvent{Type: types.UIEventShowMenu}
	case input.IsQuitPressed():
		return types.UIEvent{Type: types.UIEventQuit}
	case input.IsResetPressed():
		return types.UIEvent{Type: types.UIEventReset}
	case input.IsPausePressed():
		return types.UIEvent{Type: types.UIEventPause}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if s.state == nil {
		msg := "No game"
		bounds := text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2, types.ColorTextDim)
		return
	}

	field := s.state.Field()
	s.fieldRenderer.CalculateLayout(s.layout.BoardWidth, s.layout.BoardHeight, field)
	s.fieldRenderer.DrawField(screen, field)
	s.fieldRenderer.DrawFood(screen, s.state.Food())
	s.fieldRenderer.DrawSnake(screen, s.state.Segments())

	s.statsPanel.Draw(screen, s.state, s.stats)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	switch {
	case s.paused:
		s.drawBanner(screen, "PAUSED", "P to resume")
	case s.state.Direction() == domain.DirectionNone && s.state.PendingDirection() == domain.DirectionNone:
		s.drawBanner(screen, "READY", "Press a direction to start")
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	text.Draw(screen, s.state.Title(), fonts.Title, 20, 26, types.ColorTextHighlight)

	info := fmt.Sprintf("Grid %dx%d  |  Best %d", s.state.Field().Width, s.state.Field().Height, s.stats.BestScore)
	bounds := text.BoundString(fonts.Normal, info)
	text.Draw(screen, info, fonts.Normal, w-bounds.Dx()-20, 26, types.ColorText)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "WASD/Arrows move  |  P pause  |  R reset  |  ESC menu  |  Q quit"
	text.Draw(screen, hint, fonts.Small, 20, h-10, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-10, types.ColorError)
	}
}

func (s *GameScreen) drawBanner(screen *ebiten.Image, title, hint string) {
	fonts := types.GetFonts()

	cx := s.layout.BoardWidth / 2
	cy := s.layout.HeaderHeight + s.layout.BoardHeight/2

	vector.DrawFilledRect(screen, float32(cx-150), float32(cy-40), 300, 80, types.Darken(types.ColorBackground, 0.7), false)
	vector.StrokeRect(screen, float32(cx-150), float32(cy-40), 300, 80, 1, types.ColorInputBorder, false)

	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, cx-bounds.Dx()/2, cy-5, types.ColorTextHighlight)

	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, cx-bounds.Dx()/2, cy+22, types.ColorTextDim)
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}
