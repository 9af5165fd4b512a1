package graphics

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	BoardWidth   = 640
	BoardHeight  = 480
	HeaderHeight = 40
	FooterHeight = 30
	PanelWidth   = 200

	DefaultWidth  = BoardWidth + PanelWidth
	DefaultHeight = BoardHeight + HeaderHeight + FooterHeight

	windowTitle = "Snake"
)

// Engine is the window surface. ebiten calls Update at a fixed 60 TPS, which
// doubles as the frame cap of the session loop.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	app   *app.App
	title string

	shutdown atomic.Bool
}

func NewEngine(a *app.App) *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		app:           a,
		title:         windowTitle,
	}
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	config types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenConfig] = config
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Shutdown asks the engine to close the window on its next update. Safe to
// call from any goroutine.
func (e *Engine) Shutdown() {
	e.shutdown.Store(true)
}

func (e *Engine) Update() error {
	if e.shutdown.Load() {
		e.app.Stop(nil)
		return ebiten.Termination
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	e.handleEvent(screen.Update())

	if e.currentScreen == types.ScreenGame {
		if err := e.app.Step(); err != nil {
			log.Printf("Engine: session stopped: %v", err)
		}
		e.syncTitle(e.app.State().Title())
	}

	if !e.app.Running() {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameStateUpdater); ok {
		updater.SetState(e.app.State(), e.app.Stats(), e.app.Paused())
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return DefaultWidth, DefaultHeight
}

func (e *Engine) Size() (int, int) {
	return DefaultWidth, DefaultHeight
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			if setter, ok := s.(ConfigSetter); ok {
				setter.SetConfig(e.app.Config())
			}
			s.OnEnter()
		}
	}

	if screen != types.ScreenGame {
		e.syncTitle(windowTitle)
	}
}

func (e *Engine) SetError(err string) {
	if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
		s.SetError(err)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		if e.currentScreen == types.ScreenGame && !e.app.Paused() {
			e.app.TogglePause()
		}
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowConfig:
		e.SetScreen(types.ScreenConfig)

	case types.UIEventPlay:
		if e.app.Paused() {
			e.app.TogglePause()
		}
		e.SetScreen(types.ScreenGame)

	case types.UIEventApplyConfig:
		data := event.Payload.(types.ConfigData)
		if err := e.app.Restart(data.Config); err != nil {
			log.Printf("Engine: failed to apply config: %v", err)
			e.SetError(err.Error())
			return
		}
		e.SetScreen(types.ScreenGame)

	case types.UIEventSteer:
		data := event.Payload.(types.SteerData)
		e.app.HandleInput(app.SteerInput(data.Direction))

	case types.UIEventReset:
		e.app.HandleInput(app.InputEvent{Type: app.InputReset})

	case types.UIEventPause:
		e.app.HandleInput(app.InputEvent{Type: app.InputPause})

	case types.UIEventQuit:
		e.app.HandleInput(app.InputEvent{Type: app.InputQuit})
	}
}

func (e *Engine) syncTitle(title string) {
	if title == e.title {
		return
	}
	e.title = title
	ebiten.SetWindowTitle(title)
}

type GameStateUpdater interface {
	SetState(state *domain.GameState, stats app.Stats, paused bool)
}

type ConfigSetter interface {
	SetConfig(config *domain.GameConfig)
}

type ErrorSetter interface {
	SetError(err string)
}
