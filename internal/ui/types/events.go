package types

import (
	"github.com/Wilblik/cyberconda/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventPlay
	UIEventApplyConfig
	UIEventSteer
	UIEventReset
	UIEventPause
	UIEventQuit
	UIEventShowConfig
	UIEventShowMenu
)

type ConfigData struct {
	Config *domain.GameConfig
}

type SteerData struct {
	Direction domain.Direction
}
