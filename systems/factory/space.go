package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space singleton. Objects live in screen
// coordinates, so the space covers the window.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newVolumeObject builds the resolv object mirroring a w x h bounding volume.
// Its position is filled in by the object sync system.
func newVolumeObject(e *donburi.Entry, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(0, 0, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}

// Destroy removes an entity and its object from the collision space.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(e.Entity())
}
