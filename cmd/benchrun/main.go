package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// step is one command of the benchmark run.
type step struct {
	title string
	args  []string
}

var steps = []step{
	{"Benchmarks (BENCHMARK  N  ns/op  B/op  allocs/op)", []string{"go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"}},
	{"Open tours, one per start", []string{"go", "run", "./cmd/knighttour", "-closed=false", "-limit", "1"}},
	{"Closed tours, one per start", []string{"go", "run", "./cmd/knighttour", "-closed", "-limit", "1", "-maxnodes", "1000000"}},
	{"Table cross-check", []string{"go", "run", ".", "-check", "-o", os.DevNull}},
}

// run streams a command's output and returns its exit code, or an error
// when the command could not be started.
func run(args []string) (int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var ee *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &ee):
		return ee.ExitCode(), nil
	}
	return 1, fmt.Errorf("%s: %w", strings.Join(args, " "), err)
}

// Usage: go run ./cmd/benchrun
func main() {
	failed := 0
	for i, s := range steps {
		fmt.Printf("\n== %s\n", s.title)
		code, err := run(s.args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if code != 0 {
			// Later steps are meaningless if the benchmarks do not build.
			if i == 0 {
				os.Exit(code)
			}
			fmt.Fprintf(os.Stderr, "step %q exited with %d\n", s.title, code)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
