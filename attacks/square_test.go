package attacks_test

import (
	"errors"
	"reflect"
	"testing"

	"knight-tables/attacks"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq         attacks.Square
		file, rank int
		name       string
	}{
		{0, 0, 0, "a1"},
		{7, 7, 0, "h1"},
		{27, 3, 3, "d4"},
		{56, 0, 7, "a8"},
		{63, 7, 7, "h8"},
	}
	for _, tc := range tests {
		if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
			t.Errorf("%d: got (%d,%d), want (%d,%d)", tc.sq, tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
		}
		if got := attacks.NewSquare(tc.file, tc.rank); got != tc.sq {
			t.Errorf("NewSquare(%d,%d) = %d, want %d", tc.file, tc.rank, got, tc.sq)
		}
		if tc.sq.String() != tc.name {
			t.Errorf("String(%d) = %q, want %q", tc.sq, tc.sq.String(), tc.name)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for sq := attacks.Square(0); sq < attacks.NumSquares; sq++ {
		got, err := attacks.ParseSquare(sq.String())
		if err != nil || got != sq {
			t.Fatalf("ParseSquare(%q) = %v, %v", sq.String(), got, err)
		}
	}
	if got, err := attacks.ParseSquare("E4"); err != nil || got != 28 {
		t.Fatalf("ParseSquare(E4) = %v, %v", got, err)
	}
	for _, bad := range []string{"", "a", "a9", "i1", "a0", "e44", "`1", "@1", "a/", "1a"} {
		if _, err := attacks.ParseSquare(bad); !errors.Is(err, attacks.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q): expected ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestBitboardSquares(t *testing.T) {
	bb := attacks.Bit(17) | attacks.Bit(10)
	if bb.Count() != 2 || !bb.Has(10) || bb.Has(0) {
		t.Fatalf("unexpected bitboard state %#x", uint64(bb))
	}
	if got, want := bb.Squares(), []attacks.Square{10, 17}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	if n := len(attacks.Bitboard(0).Squares()); n != 0 {
		t.Fatalf("empty bitboard yielded %d squares", n)
	}
}
