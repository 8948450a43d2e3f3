package tetris

// Tetromino is a piece on the playfield: its shape, rotation state, origin
// position and color.
type Tetromino struct {
	Shape    Shape
	Rotation int
	X, Y     int
	Color    Color
}

/*
.	Spawn Location			.	Shape

.	0 1 2 3 4 5 6 7 8 9		.	0 1 2

0	X X X X O X X X X X		0	X O X

1	X X X O O O X X X X		1	O O O

2	X X X X X X X X X X
*/
func newTetromino(s Shape, c Color, stackWidth int) *Tetromino {
	return &Tetromino{
		Shape: s,
		X:     stackWidth/2 - 2,
		Y:     0,
		Color: c,
	}
}

func (t *Tetromino) rotation() Rotation {
	return t.Shape.Rotation(t.Rotation)
}

// Cells returns the absolute positions the tetromino occupies.
func (t *Tetromino) Cells() []Point {
	cells := make([]Point, 0, 4)
	for _, p := range t.rotation() {
		cells = append(cells, Point{X: t.X + p.X, Y: t.Y + p.Y})
	}
	return cells
}

func (t *Tetromino) copy() *Tetromino {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
