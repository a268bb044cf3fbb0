package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Attacks     int            // Attacks started so far
	Slash       *donburi.Entry // Active attack hitbox, nil when not attacking
	SlashAttack int            // Attack number the active slash belongs to
}

var Player = donburi.NewComponentType[PlayerData]()
