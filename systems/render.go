package systems

import (
	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders the player's current atlas frame, scaled around the
// sprite centre with nearest-neighbour filtering.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Animation == nil {
			return
		}
		img := assets.PlayerFrame(animData.Atlas, animData.Animation.Frame())
		if img == nil {
			return
		}

		transform := components.Transform.Get(e)
		x, y := gamemath.PointToScreen(transform.Position, width, height)
		bounds := img.Bounds()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterNearest
		drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		drawOp.GeoM.Scale(transform.Scale, transform.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawEnemies fills each enemy's hurtbox and, for enemies that take more
// than one hit, a health bar above it.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		rect, ok := volumeRect(e)
		if !ok {
			return
		}
		x, y := rect.ToScreen(width, height)
		vector.FillRect(screen, float32(x), float32(y), float32(rect.Width), float32(rect.Height), cfg.Enemy.Color, false)

		health := components.Health.Get(e)
		if health.Max <= 1 {
			return
		}
		fill := float32(rect.Width) * float32(health.Current) / float32(health.Max)
		vector.FillRect(screen, float32(x), float32(y)-6, fill, 3, cfg.BarColor, false)
	})
}
