package screens

import (
	"github.com/Wilblik/cyberconda/internal/ui/graphics/components"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/input"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay     *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:         ctx,
		btnPlay:     components.NewButton(250, 50, "Play", "ENTER"),
		btnSettings: components.NewButton(250, 50, "Settings", "TAB"),
		btnQuit:     components.NewButton(250, 50, "Quit", "ESC"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-80)
	s.btnSettings.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnPlay.Clicked() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventPlay}
	}

	if s.btnSettings.Clicked() || input.IsTabPressed() {
		return types.UIEvent{Type: types.UIEventShowConfig}
	}

	if s.btnQuit.Clicked() || input.IsEscapePressed() || input.IsQuitPressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "CYBERCONDA"
	bounds := text.BoundString(fonts.Title, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Title, x+dx, 100+dy, types.Darken(types.ColorSnakeBody, 0.6))
		}
	}
	text.Draw(screen, title, fonts.Title, x, 100, types.ColorSnakeHead)

	subtitle := "Eat, grow, don't bite yourself"
	bounds = text.BoundString(fonts.Normal, subtitle)
	text.Draw(screen, subtitle, fonts.Normal, (w-bounds.Dx())/2, 130, types.ColorTextDim)

	s.btnPlay.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "The edges wrap around"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
