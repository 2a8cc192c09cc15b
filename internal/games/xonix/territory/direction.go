package territory

import "fmt"

// Dir is an absolute direction of travel on the grid. +Z is "up".
type Dir uint8

const (
	XPlus Dir = iota
	XMinus
	ZPlus
	ZMinus
)

// String returns the direction as a signed axis, e.g. "+X".
func (d Dir) String() string {
	switch d {
	case XPlus:
		return "+X"
	case XMinus:
		return "-X"
	case ZPlus:
		return "+Z"
	case ZMinus:
		return "-Z"
	default:
		return "?"
	}
}

// Delta returns the (dx, dz) offset of a single step in this direction.
func (d Dir) Delta() (dx, dz int) {
	switch d {
	case XPlus:
		return 1, 0
	case XMinus:
		return -1, 0
	case ZPlus:
		return 0, 1
	case ZMinus:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reversed direction.
func (d Dir) Opposite() Dir {
	switch d {
	case XPlus:
		return XMinus
	case XMinus:
		return XPlus
	case ZPlus:
		return ZMinus
	default:
		return ZPlus
	}
}

// Right returns the direction a quarter turn clockwise.
func (d Dir) Right() Dir {
	switch d {
	case ZPlus:
		return XPlus
	case XPlus:
		return ZMinus
	case ZMinus:
		return XMinus
	default:
		return ZPlus
	}
}

// Left returns the direction a quarter turn counter-clockwise.
func (d Dir) Left() Dir {
	return d.Right().Opposite()
}

// DirBetween returns the direction of the single step from -> to.
// Cells that are not axis-adjacent panic.
func DirBetween(from, to *Cell) Dir {
	dx, dz := to.x-from.x, to.z-from.z
	switch {
	case dx == 0 && dz == 1:
		return ZPlus
	case dx == 0 && dz == -1:
		return ZMinus
	case dz == 0 && dx == 1:
		return XPlus
	case dz == 0 && dx == -1:
		return XMinus
	}
	panic(fmt.Sprintf("territory: cells %v and %v are not adjacent", from, to))
}

// Turn is a step's heading change relative to the previous step.
type Turn int8

const (
	TurnLeft    Turn = -1
	TurnForward Turn = 0
	TurnRight   Turn = 1
)

// String returns "left", "forward" or "right".
func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "forward"
	}
}

// TurnBetween classifies the heading change from prev to curr.
// Same-direction pairs are Forward; a reversal cannot occur on a trail and
// is reported as Forward too.
func TurnBetween(prev, curr Dir) Turn {
	switch curr {
	case prev.Right():
		return TurnRight
	case prev.Left():
		return TurnLeft
	}
	return TurnForward
}
