package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	FromPlayer = donburi.NewTag().SetName("FromPlayer")
)

// Resolv tags for the collision space
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvHitbox  = "Hitbox"
	ResolvHurtbox = "Hurtbox"
)
