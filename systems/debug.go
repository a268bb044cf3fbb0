package systems

import (
	"fmt"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var enemies = donburi.NewQuery(filter.Contains(tags.Enemy))

// DrawDebug outlines every object in the collision space and prints the
// player's state, facing, frame and position.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.HurtboxColor
			if obj.HasTags(tags.ResolvHitbox) {
				c = cfg.HitboxColor
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Regular) || !fonts.Loaded(fonts.Small) {
		return
	}

	state := components.State.Get(playerEntry)
	direction := components.ObjectDirection.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	pos := components.Transform.Get(playerEntry).Position

	frame := 0
	if anim.Animation != nil {
		frame = anim.Animation.Frame()
	}

	lines := []string{
		fmt.Sprintf("state: %s", state.CurrentState),
		fmt.Sprintf("facing: %s", direction.Current),
		fmt.Sprintf("frame: %d", frame),
		fmt.Sprintf("pos: %.1f, %.1f", pos.X, pos.Y),
		fmt.Sprintf("enemies: %d", enemies.Count(ecs.World)),
		fmt.Sprintf("tick: %d", GetOrCreateTime(ecs).Ticks),
	}
	face := fonts.Regular.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 12, 24+i*18, cfg.TextColor)
	}

	// Attack lockout progress
	if playerEntry.HasComponent(components.StateTimer) {
		lock := components.StateTimer.Get(playerEntry)
		barY := 24 + len(lines)*18
		vector.FillRect(screen, 12, float32(barY), 120*float32(lock.Fraction()), 4, cfg.BarColor, false)
		label := fmt.Sprintf("%.2f / %.2fs", lock.Fraction()*lock.Duration(), lock.Duration())
		text.Draw(screen, label, fonts.Small.Get(), 140, barY+6, cfg.TextColor)
	}

	// Enemy health labels
	small := fonts.Small.Get()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	enemies.Each(ecs.World, func(e *donburi.Entry) {
		rect, ok := volumeRect(e)
		if !ok || !e.HasComponent(components.Health) {
			return
		}
		x, y := rect.ToScreen(width, height)
		health := components.Health.Get(e)
		label := fmt.Sprintf("%s %d/%d", components.Enemy.Get(e).Name, health.Current, health.Max)
		text.Draw(screen, label, small, int(x), int(y+rect.Height)+12, cfg.TextColor)
	})
}
