// Package snake implements the game engine: board state, movement and
// collision rules, apple placement, scoring and tick pacing. It contains no
// I/O and no external dependencies so the logic stays pure and testable; the
// platform layer drives it and renders its snapshots.
package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse of a direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// move returns the neighboring point one cell in the given direction.
// Coordinates are signed so an off-the-low-edge move produces a negative
// coordinate instead of wrapping or clamping to a valid cell.
func (p Point) move(d Direction) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirRight:
		return Point{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}

// Rand is the randomness source used for apple placement. It is an injected
// dependency so tests can substitute a deterministic sequence and assert
// exact placement.
type Rand interface {
	Intn(n int) int
}
