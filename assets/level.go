package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const ArenaLevelPath = "levels/arena.tmx"

type PlayerSpawn struct {
	X float64
	Y float64
}

type EnemySpawn struct {
	X      float64
	Y      float64
	Name   string
	Health int // 0 means use the configured default
}

// Level holds spawn points in Tiled coordinates (y-down, origin at the
// map's top-left corner).
type Level struct {
	Name         string
	Width        int
	Height       int
	PlayerSpawns []PlayerSpawn
	EnemySpawns  []EnemySpawn
}

// LoadLevel parses a TMX file from fsys.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:      o.X,
					Y:      o.Y,
					Name:   o.Name,
					Health: o.Properties.GetInt("health"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no player spawn points defined", levelPath)
	}

	// Sort enemies left-to-right for a stable spawn order
	sort.SliceStable(level.EnemySpawns, func(i, j int) bool {
		return level.EnemySpawns[i].X < level.EnemySpawns[j].X
	})

	return level, nil
}

// MustLoadArena loads the embedded arena level or panics.
func MustLoadArena() *Level {
	level, err := LoadLevel(Levels(), ArenaLevelPath)
	if err != nil {
		panic(err)
	}
	return level
}
