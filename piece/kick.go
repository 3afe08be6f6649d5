package piece

// KickCount is the number of candidate offsets tried per orientation.
const KickCount = 5

// Kick tables are indexed by the orientation being rotated into. Offsets are in board
// coordinates, so a negative dy moves the piece up. The first candidate is always the
// unshifted position.
var (
	primaryKicks = [4][KickCount][2]int{
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	}
	kicks = [4][KickCount][2]int{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	}
)

// IsPrimary reports whether k uses the primary (I-kind) kick table.
func IsPrimary(k Kind) bool {
	return k == I
}

// Kick returns candidate index of the kick table for a rotation into orientation.
func Kick(primary bool, orientation, index int) (dx, dy int) {
	table := &kicks
	if primary {
		table = &primaryKicks
	}
	off := table[orientation&3][index]
	return off[0], off[1]
}
