package attacks

import "golang.org/x/exp/constraints"

// Offset is a knight displacement in (file, rank).
type Offset struct{ DX, DY int }

// Offsets lists the eight knight displacements.
var Offsets = [8]Offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Table holds one attack bitboard per source square.
type Table [NumSquares]Bitboard

// onBoard reports whether both coordinates lie in [0, 7]. Moves that would
// cross an edge are dropped, never wrapped.
func onBoard[T constraints.Integer](x, y T) bool {
	return x >= 0 && x < NumFiles && y >= 0 && y < NumRanks
}

// Build computes the knight attack table for an empty board.
func Build() Table {
	var t Table
	for y := 0; y < NumRanks; y++ {
		for x := 0; x < NumFiles; x++ {
			var mask Bitboard
			for _, off := range Offsets {
				mx, my := x+off.DX, y+off.DY
				if onBoard(mx, my) {
					mask |= Bit(NewSquare(mx, my))
				}
			}
			t[NewSquare(x, y)] = mask
		}
	}
	return t
}
