package game

// Direction is one of the four unit moves. None is the action of a search root.
type Direction int

const (
	None Direction = iota
	North
	South
	East
	West
)

// Directions lists the moves in the order they are enumerated everywhere.
var Directions = [4]Direction{East, West, North, South}

// Delta returns the unit offset of d. North is +y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Left is d rotated a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	}
	return None
}

// Right is d rotated a quarter turn clockwise.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "none"
}

// Perturb applies the slip model of non-deterministic movement: with
// probability p the intended direction is kept, otherwise the avatar turns
// left or right with equal chance.
func Perturb(d Direction, p float64, rng Random) Direction {
	if d == None || rng.Float64() < p {
		return d
	}
	if rng.Float64() < 0.5 {
		return d.Left()
	}
	return d.Right()
}
