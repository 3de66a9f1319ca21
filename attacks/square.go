package attacks

import (
	"errors"
	"fmt"
	"math/bits"
)

// Board geometry.
const (
	NumFiles   = 8
	NumRanks   = 8
	NumSquares = NumFiles * NumRanks
)

var ErrInvalidSquare = errors.New("invalid square")

// Square indexes the board as file + rank*8, so a1 = 0, h1 = 7, a8 = 56.
type Square uint8

// NewSquare returns the square at the given file and rank (both 0..7).
func NewSquare(file, rank int) Square { return Square(file + rank*NumFiles) }

// File returns x = sq mod 8.
func (sq Square) File() int { return int(sq) % NumFiles }

// Rank returns y = sq div 8.
func (sq Square) Rank() int { return int(sq) / NumFiles }

func (sq Square) String() string {
	if int(sq) >= NumSquares {
		return fmt.Sprintf("Square(%d)", uint8(sq))
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare parses algebraic notation such as "e4" (case-insensitive file).
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	// Bytes below 'a' or '1' wrap to large values and fail the bounds check.
	f, r := (s[0]|0x20)-'a', s[1]-'1'
	if !onBoard(f, r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(int(f), int(r)), nil
}

// Bitboard is a set of squares; bit i set means square i is a member.
type Bitboard uint64

// Bit returns the bitboard holding only sq.
func Bit(sq Square) Bitboard { return Bitboard(1) << sq }

// Has reports whether sq is set.
func (b Bitboard) Has(sq Square) bool { return b&Bit(sq) != 0 }

// Count returns the number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Squares returns the set squares in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for x := uint64(b); x != 0; x &= x - 1 {
		out = append(out, Square(bits.TrailingZeros64(x)))
	}
	return out
}
