package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Name string
}

var Enemy = donburi.NewComponentType[EnemyData]()
