package tetris

// Shape is one of the seven tetrominoes.
type Shape int

const (
	I Shape = iota
	O
	T
	L
	J
	S
	Z
)

// Shapes lists every Shape in catalog order.
var Shapes = [...]Shape{I, O, T, L, J, S, Z}

func (s Shape) String() string {
	if s < I || s > Z {
		return "?"
	}
	return "IOTLJSZ"[s : s+1]
}

// Point is a cell offset or an absolute stack position.
// X grows to the right and Y grows downward.
type Point struct {
	X, Y int
}

// Rotation is the set of cells a shape occupies in one rotation state,
// relative to the tetromino origin.
type Rotation [4]Point

/*
.	Rotation states, origin at the top left.

.	I		0 1 2 3		O		0 1		T		0 1 2
.	0		X X X X		0		O O		0		X O X
.	1		O O O O		1		O O		1		O O O
*/
var rotations = [...][]Rotation{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
	},
	L: {
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 0}},
		{{0, 0}, {0, 1}, {1, 0}, {2, 0}},
	},
	J: {
		{{0, 2}, {0, 1}, {0, 0}, {1, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{1, 2}, {1, 1}, {1, 0}, {0, 2}},
		{{2, 1}, {1, 1}, {0, 1}, {0, 0}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// RotationCount returns how many rotation states the shape has.
func (s Shape) RotationCount() int { return len(rotations[s]) }

// Rotation returns the offsets of the shape in rotation state r.
func (s Shape) Rotation(r int) Rotation { return rotations[s][r] }

var (
	tljKicks = []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-1, 1}}
	szKicks  = []Point{{0, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}}
)

// kickTable holds the wall kick candidates per shape. The I entry is indexed
// by the rotation the piece is leaving; every other shape shares one list
// across all of its rotations. O has no entry.
var kickTable = [...][][]Point{
	I: {
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 0 > 1
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 1 > 0
	},
	T: {tljKicks},
	L: {tljKicks},
	J: {tljKicks},
	S: {szKicks},
	Z: {szKicks},
}

// kicks returns the ordered offsets to try when rotating shape s out of
// rotation state from.
func kicks(s Shape, from int) []Point {
	k := kickTable[s]
	switch {
	case len(k) == 0:
		return []Point{{0, 0}}
	case s == I:
		return k[from]
	default:
		return k[0]
	}
}

// Color is the content of a stack cell. Empty is the zero value.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
	Purple
)

// Palette holds the colors a new tetromino can be drawn with.
var Palette = [...]Color{Red, Green, Blue, Yellow, Magenta, Cyan, Purple}
