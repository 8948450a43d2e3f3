// Package tetris contains the logic of the game.
//
// The core is a plain state machine: Tetris advances one frame per call to
// Tick and owns every piece of game state. Game drives it from a clock, an
// input source and a renderer.
package tetris

import (
	"time"
)

// Action is a discrete player command. Unknown actions are ignored.
type Action string

const (
	MoveLeft  Action = "left"   // Moves the Tetromino one step to the left.
	MoveRight Action = "right"  // Moves the Tetromino one step to the right.
	MoveDown  Action = "down"   // Moves the Tetromino one step down, locking it if blocked.
	Rotate    Action = "rotate" // Rotates the Tetromino to its next rotation state.
	SpeedUp   Action = "faster" // Selects the next shorter gravity interval.
	SpeedDown Action = "slower" // Selects the next longer gravity interval.
	Reset     Action = "reset"  // Starts a new game.
	Quit      Action = "quit"   // Ends the frame loop. Tetris itself ignores it.
)

// State is the phase of the game.
type State int

const (
	Running   State = iota // a Tetromino is falling.
	LockDelay              // a Tetromino was locked, line clear pending.
	GameOver               // the last Tetromino could not spawn.
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case LockDelay:
		return "lock delay"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// lockDelay is the number of ticks between a lock and the line clear.
const lockDelay = 5

// SpeedPresets are the selectable gravity intervals, fastest first.
var SpeedPresets = []time.Duration{
	200 * time.Millisecond,
	250 * time.Millisecond,
	350 * time.Millisecond,
	450 * time.Millisecond,
	500 * time.Millisecond,
}

const defaultSpeed = 2

// Randomizer is the source used to draw new tetrominoes.
// *math/rand/v2.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

type Tetris struct {
	Stack         *Stack
	Tetromino     *Tetromino
	NextTetromino *Tetromino
	LinesClear    int
	State         State

	speed      int
	fallTime   time.Duration
	clearDelay int
	rand       Randomizer
}

// New returns a running game with an empty stack.
func New(r Randomizer) *Tetris {
	t := &Tetris{
		Stack: NewStack(Width, Height),
		rand:  r,
	}
	t.reset()
	return t
}

func (t *Tetris) reset() {
	t.Stack.reset()
	t.LinesClear = 0
	t.State = Running
	t.speed = defaultSpeed
	t.fallTime = 0
	t.clearDelay = 0
	t.Tetromino = t.draw()
	t.NextTetromino = t.draw()
}

// Interval returns the current gravity interval.
func (t *Tetris) Interval() time.Duration {
	return SpeedPresets[t.speed]
}

// Tick advances the game by one frame. elapsed is the time since the
// previous frame and actions are the player commands received during it,
// applied in order before gravity.
func (t *Tetris) Tick(elapsed time.Duration, actions []Action) {
	t.fallTime += elapsed
	for _, a := range actions {
		t.action(a)
	}

	if t.State == LockDelay {
		t.clearDelay--
		if t.clearDelay <= 0 {
			t.next()
		}
	}

	if t.State == Running && t.fallTime >= t.Interval() {
		if !t.move(0, 1) {
			t.toStack()
		}
		t.fallTime = 0
	}
}

func (t *Tetris) action(a Action) {
	switch a {
	case Reset:
		t.reset()
		return
	case SpeedUp, SpeedDown:
		if t.State != GameOver {
			t.changeSpeed(a)
		}
		return
	}

	if t.State != Running {
		return
	}
	switch a {
	case MoveLeft:
		t.move(-1, 0)
	case MoveRight:
		t.move(1, 0)
	case MoveDown:
		if !t.move(0, 1) {
			t.toStack()
		}
	case Rotate:
		t.rotate()
	}
}

func (t *Tetris) changeSpeed(a Action) {
	n := len(SpeedPresets)
	switch a {
	case SpeedUp:
		t.speed = (t.speed - 1 + n) % n
	case SpeedDown:
		t.speed = (t.speed + 1) % n
	}
}

// move shifts the Tetromino by x, y unless that collides.
func (t *Tetris) move(x, y int) bool {
	if t.isCollision(x, y, t.Tetromino) {
		return false
	}
	t.Tetromino.X += x
	t.Tetromino.Y += y
	return true
}

// rotate moves the Tetromino to its next rotation state. Each kick offset is
// tried in order and the first one that fits is kept. When none fits the
// Tetromino is left untouched.
func (t *Tetris) rotate() bool {
	tm := t.Tetromino
	next := (tm.Rotation + 1) % tm.Shape.RotationCount()
	r := tm.Shape.Rotation(next)
	for _, k := range kicks(tm.Shape, tm.Rotation) {
		if !t.Stack.isCollision(r, tm.X+k.X, tm.Y+k.Y) {
			tm.Rotation = next
			tm.X += k.X
			tm.Y += k.Y
			return true
		}
	}
	return false
}

// isCollision checks the Tetromino against the stack as if it was moved by x, y.
func (t *Tetris) isCollision(x, y int, tm *Tetromino) bool {
	return t.Stack.isCollision(tm.rotation(), tm.X+x, tm.Y+y)
}

// toStack locks the Tetromino into the stack. Cells still above the
// playfield are dropped.
func (t *Tetris) toStack() {
	for _, c := range t.Tetromino.Cells() {
		if c.Y >= 0 {
			t.Stack.Set(c.X, c.Y, t.Tetromino.Color)
		}
	}
	t.State = LockDelay
	t.clearDelay = lockDelay
	t.fallTime = 0
}

// next finishes a round: clears lines, promotes the next Tetromino and
// checks whether it fits at its spawn position.
func (t *Tetris) next() {
	t.LinesClear += t.Stack.clearLines()
	t.Tetromino = t.NextTetromino
	t.NextTetromino = t.draw()
	if t.isCollision(0, 0, t.Tetromino) {
		t.State = GameOver
		return
	}
	t.State = Running
}

func (t *Tetris) draw() *Tetromino {
	s := Shapes[t.rand.IntN(len(Shapes))]
	c := Palette[t.rand.IntN(len(Palette))]
	return newTetromino(s, c, t.Stack.Width())
}

// dropDownDelta returns how many rows the Tetromino can fall before it lands.
func (t *Tetris) dropDownDelta() int {
	var d int
	for !t.isCollision(0, d+1, t.Tetromino) {
		d++
	}
	return d
}

// Snapshot is a copy of the game that is safe to hand to a renderer.
type Snapshot struct {
	Stack [][]Color
	// Tetromino is the falling piece. It is nil while no piece is falling.
	Tetromino     *Tetromino
	GhostY        int
	NextTetromino *Tetromino
	LinesClear    int
	Interval      time.Duration
	GameOver      bool
}

// Read returns a Snapshot of the current game.
func (t *Tetris) Read() *Snapshot {
	s := &Snapshot{
		Stack:         t.Stack.Rows(),
		NextTetromino: t.NextTetromino.copy(),
		LinesClear:    t.LinesClear,
		Interval:      t.Interval(),
		GameOver:      t.State == GameOver,
	}
	if t.State == Running {
		s.Tetromino = t.Tetromino.copy()
		s.GhostY = t.Tetromino.Y + t.dropDownDelta()
	}
	return s
}
