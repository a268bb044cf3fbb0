package config

// StateID is the logical state of the player.
type StateID int

const (
	Idle StateID = iota
	Walking
	Attacking
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Attacking:
		return "attacking"
	}
	return "unknown"
}

// Direction is a discrete facing.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Vector returns the unit vector for d in y-up world space.
func (d Direction) Vector() (x, y float64) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}
