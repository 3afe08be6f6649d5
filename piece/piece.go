package piece

// Kind is one of the seven piece archetypes.
type Kind int

const (
	I Kind = iota
	L
	J
	O
	S
	Z
	T
)

// Kinds lists every kind in catalog order. Random sampling indexes into it.
var Kinds = []Kind{I, L, J, O, S, Z, T}

var kindNames = [...]string{"I", "L", "J", "O", "S", "Z", "T"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Size returns the side length of the kind's bounding box.
func Size(k Kind) int {
	switch k {
	case I:
		return 4
	case O:
		return 2
	default:
		return 3
	}
}

// BaseOccupied reports whether index i of the kind's box is filled at orientation 0. Every
// pattern sits on the bottom row of its box:
//
//	I        L      J      O     S      Z      T
//	. . . .  . . .  . . .  # #   . . .  . . .  . . .
//	. . . .  . . #  # . .  # #   . # #  # # .  . # .
//	. . . .  # # #  # # #        # # .  . # #  # # #
//	# # # #
func BaseOccupied(k Kind, i int) bool {
	size := Size(k)
	if i < 0 || i >= size*size {
		return false
	}
	row, col := i/size, i%size
	switch k {
	case I:
		return row == 3
	case O:
		return true
	case L:
		return row == 2 || (row == 1 && col == 2)
	case J:
		return row == 2 || (row == 1 && col == 0)
	case S:
		return i >= 4 && i <= 7
	case Z:
		return (row == 1 && col < 2) || (row == 2 && col > 0)
	case T:
		return row == 2 || i == 4
	}
	return false
}

// BaseMask builds the orientation 0 mask for k.
func BaseMask(k Kind) []bool {
	size := Size(k)
	mask := make([]bool, size*size)
	for i := range mask {
		mask[i] = BaseOccupied(k, i)
	}
	return mask
}

// RotateCW rotates a square mask 90 degrees clockwise. Index i moves to
// (i mod size)*size + (size-1-i/size).
func RotateCW(mask []bool, size int) []bool {
	rotated := make([]bool, len(mask))
	for i := range mask {
		rotated[(i%size)*size+(size-1-i/size)] = mask[i]
	}
	return rotated
}

// Piece is a kind together with its rotation state.
type Piece struct {
	Kind Kind
	// Orientation is the number of clockwise quarter turns from the spawn shape, 0 to 3.
	Orientation int
}

func (p Piece) Size() int {
	return Size(p.Kind)
}

// Mask derives the occupancy of the piece at its current orientation by replaying the
// clockwise transform over the base pattern.
func (p Piece) Mask() []bool {
	size := p.Size()
	mask := BaseMask(p.Kind)
	for range p.Orientation {
		mask = RotateCW(mask, size)
	}
	return mask
}

func (p Piece) Shape() Shape {
	size := p.Size()
	return Shape{Mask: p.Mask(), Width: size, Height: size}
}

func (p *Piece) Rotate() {
	p.Orientation = (p.Orientation + 1) % 4
}

func (p *Piece) UndoRotate() {
	p.Orientation = (p.Orientation + 3) % 4
}
