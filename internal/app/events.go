package app

import "github.com/Wilblik/cyberconda/internal/domain"

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventAte AppEventType = iota
	AppEventCollision
	AppEventCleared
	AppEventRestarted
	AppEventStopped
)

func (t AppEventType) String() string {
	switch t {
	case AppEventAte:
		return "ate"
	case AppEventCollision:
		return "collision"
	case AppEventCleared:
		return "cleared"
	case AppEventRestarted:
		return "restarted"
	case AppEventStopped:
		return "stopped"
	}
	return "unknown"
}

// ScorePayload accompanies ate, collision, cleared and restarted events.
type ScorePayload struct {
	Score int
}

// StoppedPayload carries the error that ended the session, if any.
type StoppedPayload struct {
	Err error
}

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputReset
	InputPause
	InputQuit
)

func SteerInput(dir domain.Direction) InputEvent {
	return InputEvent{Type: InputSteer, Payload: dir}
}
