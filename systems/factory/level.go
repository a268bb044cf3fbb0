package factory

import (
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// TiledToWorld converts a Tiled object position (y-down, top-left origin)
// on a mapW x mapH map into world space (y-up, centre origin).
func TiledToWorld(x, y float64, mapW, mapH int) math.Vec2 {
	return math.Vec2{
		X: x - float64(mapW)/2,
		Y: float64(mapH)/2 - y,
	}
}

// SpawnLevel creates the player at the first player spawn and an enemy at
// every enemy spawn. It returns the player entry.
func SpawnLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	spawn := level.PlayerSpawns[0]
	player := CreatePlayer(ecs, TiledToWorld(spawn.X, spawn.Y, level.Width, level.Height))

	for _, e := range level.EnemySpawns {
		CreateEnemy(ecs, TiledToWorld(e.X, e.Y, level.Width, level.Height), e.Name, e.Health)
	}

	logger.Log.Infow("level spawned", "level", level.Name, "enemies", len(level.EnemySpawns))
	return player
}
