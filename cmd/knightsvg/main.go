// Command knightsvg renders the knight attack set of one square as SVG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"knight-tables/attacks"
	"knight-tables/diagram"
)

func main() {
	square := flag.String("square", "d4", "source square")
	cell := flag.Int("cell", 48, "square size in pixels")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	sq, err := attacks.ParseSquare(*square)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(sq, *cell, *out); err != nil {
		log.Fatalf("knightsvg: %v", err)
	}
}

func run(sq attacks.Square, cell int, out string) error {
	if out == "" {
		return diagram.Render(os.Stdout, sq, attacks.KnightAttacks[sq], diagram.Options{Cell: cell})
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := diagram.Render(f, sq, attacks.KnightAttacks[sq], diagram.Options{Cell: cell}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
