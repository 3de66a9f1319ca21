// Command knight-tables prints the knight attack table, one bitboard per
// square, as a declaration ready to paste into a chess engine.
//
//	go run .              # Go declaration on stdout
//	go run . -format c    # C++ constexpr array
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"knight-tables/attacks"
	"knight-tables/crosscheck"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("knight-tables: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func run(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("knight-tables", flag.ContinueOnError)
	format := fs.String("format", "go", "declaration syntax: go or c")
	name := fs.String("name", "", "table identifier (default knightAttacks / knight_attack_table)")
	typ := fs.String("type", "", "Go array type of the table (default [64]uint64)")
	pkg := fs.String("package", "", "emit a complete generated Go file in this package")
	out := fs.String("o", "", "write to file instead of stdout")
	check := fs.Bool("check", false, "cross-check the table against goosemg and dragontoothmg first")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	if fs.NArg() > 0 {
		return usageError{fmt.Errorf("unexpected arguments: %v", fs.Args())}
	}
	f, err := attacks.ParseFormat(*format)
	if err != nil {
		return usageError{err}
	}

	table := attacks.Build()
	if *check {
		if err := crosscheck.All(table); err != nil {
			return err
		}
		log.Printf("table agrees with goosemg and dragontoothmg")
	}

	w := stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}
	return attacks.Write(w, table, attacks.Options{
		Format:  f,
		Name:    *name,
		Type:    *typ,
		Package: *pkg,
	})
}
