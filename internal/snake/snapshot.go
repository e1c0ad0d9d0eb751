package snake

// Snapshot is a read-only view of a session used by the renderer and by
// determinism tests. The snake slice is a copy; mutating it does not affect
// the session.
type Snapshot struct {
	Width  int
	Height int
	Snake  []Point // Head at index 0
	Apple  Point
	Dir    Direction
	Score  int
	Level  int
	Over   bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	body := make([]Point, len(s.snake))
	copy(body, s.snake)

	return Snapshot{
		Width:  s.width,
		Height: s.height,
		Snake:  body,
		Apple:  s.apple,
		Dir:    s.dir,
		Score:  s.score,
		Level:  s.level,
		Over:   s.over,
	}
}

// Head returns the snake's head position.
func (snap Snapshot) Head() Point {
	return snap.Snake[0]
}
