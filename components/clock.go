package components

import "github.com/yohamta/donburi"

// TimeData holds the elapsed seconds of the current tick.
type TimeData struct {
	Delta float64
	Ticks uint64
}

var Time = donburi.NewComponentType[TimeData]()
