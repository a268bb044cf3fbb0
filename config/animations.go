package config

// FrameRange is a fixed run of four sprite indices within one atlas.
type FrameRange [4]int

func (r FrameRange) First() int {
	return r[0]
}

func (r FrameRange) Last() int {
	return r[len(r)-1]
}

func (r FrameRange) Contains(index int) bool {
	for _, i := range r {
		if i == index {
			return true
		}
	}
	return false
}

// AtlasID names a slicing of the player sprite sheet.
type AtlasID int

const (
	AtlasWalk AtlasID = iota
	AtlasAttack
)

// AtlasDef describes a uniform grid of frames inside the sprite sheet.
type AtlasDef struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
	OffsetX     int
	OffsetY     int
}

// Atlases maps each atlas to its region of character.png.
var Atlases = map[AtlasID]AtlasDef{
	AtlasWalk:   {FrameWidth: 16, FrameHeight: 32, Columns: 4, Rows: 4},
	AtlasAttack: {FrameWidth: 32, FrameHeight: 32, Columns: 4, Rows: 4, OffsetY: 128},
}

// StateAtlas selects the atlas drawn for each player state.
// Idle shares the walk sheet and freezes on the first frame.
var StateAtlas = map[StateID]AtlasID{
	Idle:      AtlasWalk,
	Walking:   AtlasWalk,
	Attacking: AtlasAttack,
}

// PlayerAnimations holds the frame range for each (atlas, facing) pair.
// The attack sheet orders its rows differently from the walk sheet.
var PlayerAnimations = map[AtlasID]map[Direction]FrameRange{
	AtlasWalk: {
		Down:  {0, 1, 2, 3},
		Right: {4, 5, 6, 7},
		Up:    {8, 9, 10, 11},
		Left:  {12, 13, 14, 15},
	},
	AtlasAttack: {
		Down:  {0, 1, 2, 3},
		Up:    {4, 5, 6, 7},
		Right: {8, 9, 10, 11},
		Left:  {12, 13, 14, 15},
	},
}

// PlayerRange returns the atlas and frame range for a state and facing.
func PlayerRange(state StateID, dir Direction) (AtlasID, FrameRange) {
	atlas := StateAtlas[state]
	return atlas, PlayerAnimations[atlas][dir]
}
