package tetris

import "slices"

const (
	// Width and Height are the playfield dimensions.
	Width  = 10
	Height = 20
)

// Stack is the playfield.
// Columns are 0 > Width-1 left to right and represent the X axis.
// Rows are 0 > Height-1 top to bottom and represent the Y axis.
// An Empty cell is free. Otherwise it holds the color it will be rendered with.
type Stack struct {
	width, height int
	rows          [][]Color
}

// NewStack returns an empty stack of w columns and h rows.
func NewStack(w, h int) *Stack {
	s := &Stack{width: w, height: h}
	s.reset()
	return s
}

func (s *Stack) reset() {
	s.rows = make([][]Color, s.height)
	for i := range s.rows {
		s.rows[i] = make([]Color, s.width)
	}
}

func (s *Stack) Width() int  { return s.width }
func (s *Stack) Height() int { return s.height }

// At returns the color at column x, row y.
func (s *Stack) At(x, y int) Color { return s.rows[y][x] }

// Set paints the cell at column x, row y.
func (s *Stack) Set(x, y int, c Color) { s.rows[y][x] = c }

// Rows returns a copy of the stack contents, top row first.
func (s *Stack) Rows() [][]Color {
	rows := make([][]Color, len(s.rows))
	for i := range s.rows {
		rows[i] = slices.Clone(s.rows[i])
	}
	return rows
}

// isCollision reports whether rotation r placed with its origin at x, y
// overlaps an occupied cell or leaves the playfield.
//
// .		0 1 2 3 4 5 6 7 8 9
// -1		. . . O . . . . . .		cells above the stack are allowed
// 0		. . . O O O . . . .
// 1		. . . . . C . . . .		C collides with the stack
//
// Rows above the top are the spawn buffer: a cell with y < 0 only collides
// when it is out of bounds horizontally.
func (s *Stack) isCollision(r Rotation, x, y int) bool {
	for _, p := range r {
		px, py := x+p.X, y+p.Y
		if px < 0 || px >= s.width || py >= s.height {
			return true
		}
		if py >= 0 && s.rows[py][px] != Empty {
			return true
		}
	}
	return false
}

// clearLines removes every complete row and returns how many were removed.
// Each removed row is replaced by an empty row at the top, so the rows above
// it move one row down.
func (s *Stack) clearLines() int {
	var complete []int
	for y, row := range s.rows {
		if !slices.Contains(row, Empty) {
			complete = append(complete, y)
		}
	}

	// complete is ordered top to bottom, so removing a row never moves the
	// index of a complete row found below it.
	for _, y := range complete {
		copy(s.rows[1:y+1], s.rows[:y])
		s.rows[0] = make([]Color, s.width)
	}
	return len(complete)
}
