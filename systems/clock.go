package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock publishes the elapsed time of this tick. Ebiten runs Update
// at a fixed TPS, so every tick is 1/TPS seconds.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateTime(ecs)
	clock.Delta = 1 / float64(ebiten.TPS())
	clock.Ticks++
}

// GetOrCreateTime returns the singleton Time component, creating if needed
func GetOrCreateTime(ecs *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Time))
	}
	return components.Time.Get(entry)
}

// deltaTime returns the current tick's elapsed seconds, zero before the
// clock has run.
func deltaTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Time.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Time.Get(entry).Delta
}
