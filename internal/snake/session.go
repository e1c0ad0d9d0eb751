package snake

import "time"

// Minimum playable field size. Callers pass the usable play-field dimensions
// (already adjusted for borders and HUD chrome); the session clamps them up
// to these floors.
const (
	MinWidth  = 10
	MinHeight = 5
)

// appleRetries caps random placement attempts before falling back to a fixed
// cell, so a nearly full board cannot loop forever.
const appleRetries = 1000

// appleFallback is the cell used when random placement gives up.
var appleFallback = Point{X: 1, Y: 1}

// Tuning holds the tick pacing constants. The interval between automatic
// steps shrinks by Reduction per level, never below MinTick.
type Tuning struct {
	BaseTick  time.Duration
	Reduction time.Duration
	MinTick   time.Duration
}

// DefaultTuning returns the standard pacing: 160ms base, 10ms faster per
// level, floored at 40ms.
func DefaultTuning() Tuning {
	return Tuning{
		BaseTick:  160 * time.Millisecond,
		Reduction: 10 * time.Millisecond,
		MinTick:   40 * time.Millisecond,
	}
}

// Session is one playthrough: the snake, the apple, score, level and the
// terminal over flag. It is created at game start, mutated by Step and
// SetDirection, and replaced wholesale on restart. The application loop is
// its sole owner.
type Session struct {
	snake   []Point // Head at index 0
	dir     Direction
	nextDir Direction // Buffered direction, committed on the next step
	apple   Point
	rng     Rand
	score   int
	level   int
	width   int
	height  int
	over    bool
	tuning  Tuning
}

// NewSession creates a session on a width x height field, clamped to the
// 10x5 minimum. The snake starts as three collinear segments centered on the
// board, facing right, with one apple already placed.
func NewSession(width, height int, rng Rand, tuning Tuning) *Session {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	midX := width / 2
	midY := height / 2

	s := &Session{
		snake: []Point{
			{X: midX, Y: midY},
			{X: midX - 1, Y: midY},
			{X: midX - 2, Y: midY},
		},
		dir:     DirRight,
		nextDir: DirRight,
		rng:     rng,
		score:   0,
		level:   1,
		width:   width,
		height:  height,
		tuning:  tuning,
	}
	s.placeApple()
	return s
}

// SetDirection buffers a direction change for the next step. A request that
// exactly reverses the committed direction is silently dropped so the snake
// cannot turn into its own neck; players mash keys, so this is not an error.
func (s *Session) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.nextDir = d
}

// Step advances the game by one tick: commits the buffered direction, moves
// the head, checks wall and self collisions, and handles apple consumption.
// Once the session is over, Step is a no-op.
func (s *Session) Step() {
	if s.over {
		return
	}

	s.dir = s.nextDir
	newHead := s.snake[0].move(s.dir)

	// Wall collision. Negative coordinates mean the head tried to leave
	// through the low edge.
	if newHead.X < 0 || newHead.Y < 0 || newHead.X >= s.width || newHead.Y >= s.height {
		s.over = true
		return
	}

	// Self collision, including the current tail cell: the tail is only
	// removed after this check, so running into it is fatal.
	for _, seg := range s.snake {
		if seg == newHead {
			s.over = true
			return
		}
	}

	s.snake = append([]Point{newHead}, s.snake...)

	if newHead == s.apple {
		s.score++
		if s.score%5 == 0 {
			s.level = 1 + s.score/5
		}
		s.placeApple()
		// No tail removal: the snake grows by one.
		return
	}

	s.snake = s.snake[:len(s.snake)-1]
}

// placeApple picks a uniformly random free cell. After appleRetries failed
// attempts on an almost-full board it settles on the fixed fallback cell.
func (s *Session) placeApple() {
	for attempt := 0; attempt < appleRetries; attempt++ {
		cand := Point{X: s.rng.Intn(s.width), Y: s.rng.Intn(s.height)}
		if !s.occupied(cand) {
			s.apple = cand
			return
		}
	}
	s.apple = appleFallback
}

// occupied reports whether any snake segment sits on p.
func (s *Session) occupied(p Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// TickInterval returns the delay between automatic steps for the current
// level. Higher levels tick faster, saturating at the tuning floor.
func (s *Session) TickInterval() time.Duration {
	d := s.tuning.BaseTick - time.Duration(s.level-1)*s.tuning.Reduction
	if d < s.tuning.MinTick {
		d = s.tuning.MinTick
	}
	return d
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// Score returns the number of apples eaten.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current speed level, starting at 1.
func (s *Session) Level() int {
	return s.level
}
