package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool
	Quit  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
