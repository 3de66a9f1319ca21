package attacks_test

import (
	"testing"

	"knight-tables/attacks"
)

func TestBuildMatchesGenerated(t *testing.T) {
	if got := attacks.Build(); got != attacks.KnightAttacks {
		t.Fatalf("KnightAttacks is stale; run go generate ./attacks")
	}
}

func TestBuildKnownSquares(t *testing.T) {
	tbl := attacks.Build()
	if tbl[0] != 0x20400 {
		t.Fatalf("a1: got %#x, want 0x20400", uint64(tbl[0]))
	}
	if tbl[63] != 0x20400000000000 {
		t.Fatalf("h8: got %#x", uint64(tbl[63]))
	}
	if tbl[27] != 0x142200221400 {
		t.Fatalf("d4: got %#x", uint64(tbl[27]))
	}
}

func TestBuildDestinationsFollowOffsets(t *testing.T) {
	tbl := attacks.Build()
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		var want attacks.Bitboard
		for _, off := range attacks.Offsets {
			x, y := s.File()+off.DX, s.Rank()+off.DY
			if x < 0 || x > 7 || y < 0 || y > 7 {
				continue
			}
			want |= attacks.Bit(attacks.NewSquare(x, y))
		}
		if tbl[s] != want {
			t.Errorf("%v: got %#x, want %#x", s, uint64(tbl[s]), uint64(want))
		}
		for _, d := range tbl[s].Squares() {
			dx, dy := d.File()-s.File(), d.Rank()-s.Rank()
			if dx*dx+dy*dy != 5 {
				t.Errorf("%v -> %v is not a knight move", s, d)
			}
		}
	}
}

func TestBuildNoSelfAttack(t *testing.T) {
	tbl := attacks.Build()
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		if tbl[s].Has(s) {
			t.Errorf("%v attacks itself", s)
		}
	}
}

func TestBuildSymmetric(t *testing.T) {
	tbl := attacks.Build()
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		for d := attacks.Square(0); d < attacks.NumSquares; d++ {
			if tbl[s].Has(d) != tbl[d].Has(s) {
				t.Errorf("asymmetric pair %v/%v", s, d)
			}
		}
	}
}

func TestBuildCounts(t *testing.T) {
	tbl := attacks.Build()
	for _, s := range []attacks.Square{0, 7, 56, 63} {
		if n := tbl[s].Count(); n != 2 {
			t.Errorf("corner %v: popcount %d, want 2", s, n)
		}
	}
	total := 0
	for s := attacks.Square(0); s < attacks.NumSquares; s++ {
		n := tbl[s].Count()
		total += n
		if n < 2 || n > 8 {
			t.Errorf("%v: popcount %d out of range", s, n)
		}
		if f, r := s.File(), s.Rank(); f >= 2 && f <= 5 && r >= 2 && r <= 5 && n != 8 {
			t.Errorf("center %v: popcount %d, want 8", s, n)
		}
	}
	// 168 undirected knight edges on 8x8.
	if total != 336 {
		t.Errorf("total destinations %d, want 336", total)
	}
}
