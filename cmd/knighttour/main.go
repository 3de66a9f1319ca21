// Command knighttour searches for knight's tours over the generated attack
// table and prints each verified tour as "[n, start]: squares...".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"knight-tables/attacks"
	"knight-tables/tour"
)

func main() {
	closed := flag.Bool("closed", true, "only report closed (re-entrant) tours")
	order := flag.String("order", "warnsdorff", "move ordering: warnsdorff or bitscan")
	workers := flag.Int("threads", 0, "worker count (default max(2, GOMAXPROCS))")
	starts := flag.String("start", "", "comma-separated start squares, e.g. a1,d4 (default all)")
	limit := flag.Uint64("limit", 1, "tours to report per start square (0 = all)")
	maxNodes := flag.Uint64("maxnodes", 10_000_000, "moves tried per start square before giving up (0 = unbounded)")
	timeout := flag.Duration("timeout", 0, "stop the whole run after this long")
	flag.Parse()

	logger := log.New(os.Stderr, "knighttour: ", 0)

	ord, err := tour.ParseOrder(*order)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var squares []attacks.Square
	if *starts != "" {
		for _, s := range strings.Split(*starts, ",") {
			sq, err := attacks.ParseSquare(strings.TrimSpace(s))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			squares = append(squares, sq)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	cfg := tour.Config{
		Options: tour.Options{Closed: *closed, Order: ord, MaxNodes: *maxNodes},
		Workers: *workers,
		Starts:  squares,
		Limit:   *limit,
		Log:     logger,
	}
	start := time.Now()
	st, err := tour.Run(ctx, attacks.KnightAttacks, cfg, os.Stdout)
	logger.Printf("%d tours, %d nodes in %s", st.Tours, st.Nodes, time.Since(start).Round(time.Millisecond))
	switch {
	case interrupted(err):
		logger.Printf("stopped: %v", err)
	case err != nil:
		logger.Fatal(err)
	default:
		fmt.Println("done.")
	}
}

// interrupted reports whether err is the run ending on request, by -timeout
// or an interrupt, rather than a failure.
func interrupted(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
