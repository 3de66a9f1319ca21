// Package tour searches for knight's tours using a knight attack table.
package tour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"knight-tables/attacks"
)

var (
	ErrInvalidTour = errors.New("invalid tour")
	// ErrStop may be returned by a visit callback to end a search early.
	ErrStop = errors.New("stop search")
	// ErrNodeLimit reports that a search exhausted Options.MaxNodes.
	ErrNodeLimit = errors.New("node limit reached")
)

// Tour lists every square once, in visiting order.
type Tour [attacks.NumSquares]attacks.Square

func (t Tour) String() string {
	parts := make([]string, len(t))
	for i, sq := range t {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}

// Verify checks that tour visits every square exactly once using only knight
// moves from table. A closed tour must also end a knight move from its start.
func Verify(table attacks.Table, tour Tour, closed bool) error {
	seen := bitset.New(attacks.NumSquares)
	for i, sq := range tour {
		if sq >= attacks.NumSquares {
			return fmt.Errorf("%w: step %d: square %d off board", ErrInvalidTour, i, sq)
		}
		if seen.Test(uint(sq)) {
			return fmt.Errorf("%w: step %d: %v visited twice", ErrInvalidTour, i, sq)
		}
		if i > 0 && !table[tour[i-1]].Has(sq) {
			return fmt.Errorf("%w: step %d: %v -> %v is not a knight move", ErrInvalidTour, i, tour[i-1], sq)
		}
		seen.Set(uint(sq))
	}
	if n := seen.Count(); n != attacks.NumSquares {
		return fmt.Errorf("%w: %d squares visited", ErrInvalidTour, n)
	}
	last := tour[len(tour)-1]
	if closed && !table[last].Has(tour[0]) {
		return fmt.Errorf("%w: %v does not return to %v", ErrInvalidTour, last, tour[0])
	}
	return nil
}
