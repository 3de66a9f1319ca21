// Package crosscheck compares a knight attack table with the knight data of
// independent move generators.
package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	"knight-tables/attacks"
)

var ErrMismatch = errors.New("knight table mismatch")

// mismatches collects per-square differences; at most maxReported are spelled out.
type mismatches struct {
	source string
	lines  []string
	total  int
}

const maxReported = 8

func (m *mismatches) add(sq attacks.Square, got, want attacks.Bitboard) {
	m.total++
	if len(m.lines) < maxReported {
		m.lines = append(m.lines, fmt.Sprintf("%v: table %#x, %s %#x", sq, uint64(got), m.source, uint64(want)))
	}
}

func (m *mismatches) err() error {
	if m.total == 0 {
		return nil
	}
	return fmt.Errorf("%w against %s (%d squares): %s", ErrMismatch, m.source, m.total, strings.Join(m.lines, "; "))
}

// All runs every available cross-check and joins their failures.
func All(t attacks.Table) error {
	return errors.Join(Goose(t), Dragontooth(t))
}

// fen renders piece placement in FEN with white to move and no castling rights.
func fen(pieces map[attacks.Square]byte) string {
	var sb strings.Builder
	for rank := attacks.NumRanks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < attacks.NumFiles; file++ {
			p, ok := pieces[attacks.NewSquare(file, rank)]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteString(" w - - 0 1")
	return sb.String()
}
