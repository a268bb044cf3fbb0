package assets

import (
	"image"
	"testing"
	"testing/fstest"

	"github.com/automoto/overworld/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="80" y="40"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" name="b" x="120" y="10">
   <properties><property name="health" type="int" value="4"/></properties>
   <point/>
  </object>
  <object id="3" name="a" x="20" y="70"><point/></object>
 </objectgroup>
</map>`

const noSpawnMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="2" name="EnemySpawn">
  <object id="3" name="a" x="20" y="70"><point/></object>
 </objectgroup>
</map>`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(testMap)},
	}

	level, err := LoadLevel(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 160, level.Width)
	assert.Equal(t, 80, level.Height)
	require.Len(t, level.PlayerSpawns, 1)
	assert.Equal(t, PlayerSpawn{X: 80, Y: 40}, level.PlayerSpawns[0])

	require.Len(t, level.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 20, Y: 70, Name: "a"}, level.EnemySpawns[0])
	assert.Equal(t, EnemySpawn{X: 120, Y: 10, Name: "b", Health: 4}, level.EnemySpawns[1])
}

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(noSpawnMap)},
	}

	_, err := LoadLevel(fsys, "levels/empty.tmx")
	assert.ErrorContains(t, err, "no player spawn")
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(fstest.MapFS{}, "levels/nope.tmx")
	assert.Error(t, err)
}

func TestEmbeddedArena(t *testing.T) {
	level, err := LoadLevel(Levels(), ArenaLevelPath)
	require.NoError(t, err)

	assert.Equal(t, 1280, level.Width)
	assert.Equal(t, 720, level.Height)
	assert.Len(t, level.PlayerSpawns, 1)
	assert.Len(t, level.EnemySpawns, 6)
}

func TestAtlasRects(t *testing.T) {
	walk := AtlasRects(config.Atlases[config.AtlasWalk])
	require.Len(t, walk, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 32), walk[0])
	assert.Equal(t, image.Rect(16, 0, 32, 32), walk[1])
	assert.Equal(t, image.Rect(0, 32, 16, 64), walk[4])
	assert.Equal(t, image.Rect(48, 96, 64, 128), walk[15])

	attack := AtlasRects(config.Atlases[config.AtlasAttack])
	require.Len(t, attack, 16)
	assert.Equal(t, image.Rect(0, 128, 32, 160), attack[0])
	assert.Equal(t, image.Rect(96, 224, 128, 256), attack[15])
}
