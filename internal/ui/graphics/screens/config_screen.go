package screens

import (
	"fmt"
	"time"

	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/components"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/input"
	"github.com/Wilblik/cyberconda/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ConfigScreen edits a GameConfig. Applying it starts a fresh game.
type ConfigScreen struct {
	ctx types.ScreenContext

	inputGrid     *components.NumberInput
	inputCapacity *components.NumberInput
	inputSpeed    *components.NumberInput
	inputStep     *components.NumberInput
	inputMinSpeed *components.NumberInput

	btnApply *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewConfigScreen(ctx types.ScreenContext) *ConfigScreen {
	s := &ConfigScreen{
		ctx:           ctx,
		inputGrid:     components.NewNumberInput(140, 35, fmt.Sprintf("Grid (%d-%d)", domain.MinGridSize, domain.MaxGridSize)),
		inputCapacity: components.NewNumberInput(140, 35, "Capacity"),
		inputSpeed:    components.NewNumberInput(140, 35, "Interval ms"),
		inputStep:     components.NewNumberInput(140, 35, "Step ms"),
		inputMinSpeed: components.NewNumberInput(140, 35, "Min ms"),
		btnApply:      components.NewButton(140, 45, "Apply", "ENTER"),
		btnBack:       components.NewButton(140, 45, "Back", "ESC"),
	}
	s.SetConfig(domain.DefaultGameConfig())
	return s
}

func (s *ConfigScreen) inputs() []*components.NumberInput {
	return []*components.NumberInput{
		s.inputGrid, s.inputCapacity,
		s.inputSpeed, s.inputStep,
		s.inputMinSpeed,
	}
}

func (s *ConfigScreen) SetConfig(config *domain.GameConfig) {
	s.inputGrid.SetValue(config.GridSize)
	s.inputCapacity.SetValue(config.InitialCapacity)
	s.inputSpeed.SetValue(int(config.InitialSpeed / time.Millisecond))
	s.inputStep.SetValue(int(config.SpeedStep / time.Millisecond))
	s.inputMinSpeed.SetValue(int(config.MinSpeed / time.Millisecond))
}

func (s *ConfigScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *ConfigScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 120

	s.inputGrid.SetPosition(centerX-150, startY)
	s.inputCapacity.SetPosition(centerX+10, startY)
	s.inputSpeed.SetPosition(centerX-150, startY+70)
	s.inputStep.SetPosition(centerX+10, startY+70)
	s.inputMinSpeed.SetPosition(centerX-150, startY+140)
	s.btnBack.SetPosition(centerX-150, startY+210)
	s.btnApply.SetPosition(centerX+10, startY+210)

	for _, in := range s.inputs() {
		in.Update()
	}

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Clicked() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnApply.Clicked() || input.IsEnterPressed() {
		return s.apply()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ConfigScreen) cycleFocus() {
	inputs := s.inputs()

	current := -1
	for i, in := range inputs {
		if in.Focused {
			current = i
			in.Focused = false
			break
		}
	}

	inputs[(current+1)%len(inputs)].Focused = true
}

func (s *ConfigScreen) apply() types.UIEvent {
	fields := []struct {
		input *components.NumberInput
		name  string
	}{
		{s.inputGrid, "grid"},
		{s.inputCapacity, "capacity"},
		{s.inputSpeed, "interval"},
		{s.inputStep, "step"},
		{s.inputMinSpeed, "min interval"},
	}

	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := f.input.Value()
		if err != nil {
			s.errorMsg = fmt.Sprintf("%s must be a number", f.name)
			return types.UIEvent{Type: types.UIEventNone}
		}
		values[i] = v
	}

	config := &domain.GameConfig{
		GridSize:        values[0],
		InitialCapacity: values[1],
		InitialSpeed:    time.Duration(values[2]) * time.Millisecond,
		SpeedStep:       time.Duration(values[3]) * time.Millisecond,
		MinSpeed:        time.Duration(values[4]) * time.Millisecond,
	}

	if err := config.Validate(); err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	return types.UIEvent{
		Type:    types.UIEventApplyConfig,
		Payload: types.ConfigData{Config: config},
	}
}

func (s *ConfigScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	for _, in := range s.inputs() {
		in.Draw(screen)
	}

	s.btnBack.Draw(screen)
	s.btnApply.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, 120+290, types.ColorError)
	}

	hint := "TAB to switch fields, ENTER to start a new game"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *ConfigScreen) OnEnter() {
	s.errorMsg = ""
	s.inputGrid.Focused = true
}

func (s *ConfigScreen) OnExit() {
	for _, in := range s.inputs() {
		in.Focused = false
	}
}
