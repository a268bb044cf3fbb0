package scenes

import (
	"sync"

	"github.com/automoto/overworld/assets"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/systems"
	"github.com/automoto/overworld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the arena: the player, the enemy dummies and the debug
// overlay.
type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

// Update runs one tick of every system. It returns ebiten.Termination once
// quit has been requested.
func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateSettings(ws.ecs).Quit {
		logger.Log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.ClearColor)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	if err := assets.PreloadPlayerAtlases(); err != nil {
		panic("failed to load player atlases: " + err.Error())
	}

	level := assets.MustLoadArena()
	logger.Log.Infow("level loaded", "level", level.Name, "width", level.Width, "height", level.Height)

	ws.ecs = NewWorldECS()
	factory.CreateSpace(ws.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.SpawnLevel(ws.ecs, level)
}

// NewWorldECS returns an ECS with the arena's systems and renderers
// registered in tick order.
func NewWorldECS() *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePlayerAnimation)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateAttack)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAttackResolution)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	return ecs
}
