package tour

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"knight-tables/attacks"
)

// Order decides which candidate square the search tries first.
type Order int

const (
	// Warnsdorff tries squares with the fewest onward moves first, ties
	// broken by the lower square.
	Warnsdorff Order = iota
	// BitScan tries candidates from the lowest square upwards.
	BitScan
)

func (o Order) String() string {
	switch o {
	case Warnsdorff:
		return "warnsdorff"
	case BitScan:
		return "bitscan"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder maps a flag value to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "warnsdorff", "":
		return Warnsdorff, nil
	case "bitscan":
		return BitScan, nil
	}
	return 0, fmt.Errorf("unknown order %q", s)
}

type Options struct {
	Closed bool
	Order  Order
	// MaxNodes bounds the number of moves tried per search; 0 is unbounded.
	MaxNodes uint64
}

// Stats counts the work done by a search.
type Stats struct {
	Nodes uint64
	Tours uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Tours += o.Tours
}

// ctxCheckMask sets how often (in loop iterations) the search polls ctx.
const ctxCheckMask = 1<<12 - 1

type frame struct {
	sq      attacks.Square
	moves   [8]attacks.Square
	n, next int
}

// Searcher walks tours depth-first over a fixed attack table. It holds no
// per-search state, so one Searcher may serve many goroutines.
type Searcher struct {
	table attacks.Table
	opts  Options
}

func NewSearcher(table attacks.Table, opts Options) *Searcher {
	return &Searcher{table: table, opts: opts}
}

// fill loads the unvisited knight moves from f.sq in search order.
func (s *Searcher) fill(f *frame, visited attacks.Bitboard) {
	f.n, f.next = 0, 0
	for x := s.table[f.sq] &^ visited; x != 0; x &= x - 1 {
		f.moves[f.n] = attacks.Square(bits.TrailingZeros64(uint64(x)))
		f.n++
	}
	if s.opts.Order != Warnsdorff {
		return
	}
	var degree [8]int
	for i := 0; i < f.n; i++ {
		degree[i] = (s.table[f.moves[i]] &^ visited).Count()
	}
	// Insertion sort; candidates arrive in ascending square order.
	for i := 1; i < f.n; i++ {
		for j := i; j > 0 && degree[j] < degree[j-1]; j-- {
			degree[j], degree[j-1] = degree[j-1], degree[j]
			f.moves[j], f.moves[j-1] = f.moves[j-1], f.moves[j]
		}
	}
}

// Search enumerates tours starting at start and calls visit for each one.
// A visit error ends the search; ErrStop ends it without error.
func (s *Searcher) Search(ctx context.Context, start attacks.Square, visit func(Tour) error) (Stats, error) {
	var (
		st    Stats
		stack [attacks.NumSquares]frame
		iter  uint64
	)
	if start >= attacks.NumSquares {
		return st, fmt.Errorf("%w: %d", attacks.ErrInvalidSquare, start)
	}
	const maxDepth = attacks.NumSquares - 1
	home := s.table[start]

	visited := attacks.Bit(start)
	stack[0].sq = start
	s.fill(&stack[0], visited)
	depth := 0

	for {
		if iter&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}
		iter++

		f := &stack[depth]
		switch {
		case f.next < f.n:
			next := f.moves[f.next]
			f.next++
			st.Nodes++
			if s.opts.MaxNodes > 0 && st.Nodes > s.opts.MaxNodes {
				return st, ErrNodeLimit
			}

			depth++
			stack[depth].sq = next
			if depth < maxDepth {
				visited |= attacks.Bit(next)
				s.fill(&stack[depth], visited)
				continue
			}
			// Complete path; closed tours need the start within reach.
			depth--
			if s.opts.Closed && !home.Has(next) {
				continue
			}
			st.Tours++
			if err := visit(collect(&stack)); err != nil {
				if errors.Is(err, ErrStop) {
					return st, nil
				}
				return st, err
			}
		case depth > 0:
			visited &^= attacks.Bit(f.sq)
			depth--
		default:
			return st, nil
		}
	}
}

func collect(stack *[attacks.NumSquares]frame) Tour {
	var t Tour
	for i := range stack {
		t[i] = stack[i].sq
	}
	return t
}
