package tour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"knight-tables/attacks"
)

// Config drives Run.
type Config struct {
	Options
	// Workers is the number of concurrent searches; at least 2 when unset.
	Workers int
	// Starts lists the start squares; all 64 when empty.
	Starts []attacks.Square
	// Limit caps the tours reported per start square; 0 reports all.
	Limit uint64
	// Log receives per-worker progress; nil disables it.
	Log *log.Logger
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return max(2, runtime.GOMAXPROCS(0))
}

func (c Config) starts() []attacks.Square {
	if len(c.Starts) > 0 {
		return c.Starts
	}
	all := make([]attacks.Square, attacks.NumSquares)
	for i := range all {
		all[i] = attacks.Square(i)
	}
	return all
}

// printer serializes tour lines from all workers and numbers them.
type printer struct {
	mu    sync.Mutex
	w     io.Writer
	count uint64
}

func (p *printer) print(t Tour) error {
	rest := make([]string, 0, len(t)-1)
	for _, sq := range t[1:] {
		rest = append(rest, sq.String())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	_, err := fmt.Fprintf(p.w, "[%d, %v]: %s\n", p.count, t[0], strings.Join(rest, " "))
	return err
}

// Run searches from every configured start square. Worker i takes starts
// i, i+N, i+2N, ... Every tour found is verified before it is written to w.
// A start that exhausts MaxNodes is logged and skipped.
func Run(ctx context.Context, table attacks.Table, cfg Config, w io.Writer) (Stats, error) {
	var (
		total Stats
		mu    sync.Mutex
	)
	out := &printer{w: w}
	searcher := NewSearcher(table, cfg.Options)
	starts := cfg.starts()
	n := cfg.workers()

	g, ctx := errgroup.WithContext(ctx)
	for id := 0; id < n && id < len(starts); id++ {
		id := id
		g.Go(func() error {
			for i := id; i < len(starts); i += n {
				start := starts[i]
				if cfg.Log != nil {
					cfg.Log.Printf("worker %d: %v", id, start)
				}
				var found uint64
				st, err := searcher.Search(ctx, start, func(t Tour) error {
					if err := Verify(table, t, cfg.Closed); err != nil {
						return err
					}
					if err := out.print(t); err != nil {
						return fmt.Errorf("write tour: %w", err)
					}
					found++
					if cfg.Limit > 0 && found >= cfg.Limit {
						return ErrStop
					}
					return nil
				})
				mu.Lock()
				total.add(st)
				mu.Unlock()
				switch {
				case errors.Is(err, ErrNodeLimit):
					if cfg.Log != nil {
						cfg.Log.Printf("worker %d: %v: %v after %d nodes", id, start, err, st.Nodes)
					}
				case err != nil:
					return fmt.Errorf("search from %v: %w", start, err)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	return total, err
}
