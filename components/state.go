package components

import (
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/timer"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

var State = donburi.NewComponentType[StateData]()

// StateTimer is attached only while an attack locks the state machine.
var StateTimer = donburi.NewComponentType[timer.Timer]()
