package attacks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects the declaration wrapper placed around the listing.
type Format int

const (
	FormatGo Format = iota
	FormatC
)

var ErrUnknownFormat = errors.New("unknown format")

func (f Format) String() string {
	switch f {
	case FormatGo:
		return "go"
	case FormatC:
		return "c"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a flag value ("go", "c", "cpp", "c++") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "go", "":
		return FormatGo, nil
	case "c", "cpp", "c++":
		return FormatC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls Write. The zero value emits a Go declaration named knightAttacks.
type Options struct {
	Format Format
	// Name is the table identifier; empty selects the per-format default.
	Name string
	// Type is the Go array type of the declaration, "[64]uint64" when empty.
	// Ignored for FormatC.
	Type string
	// Package, when set with FormatGo, prefixes a generated-file header and a
	// package clause so the listing compiles on its own.
	Package string
	// Generator names the command in the generated-file header.
	Generator string
}

func (o Options) name() string {
	if o.Name != "" {
		return o.Name
	}
	if o.Format == FormatC {
		return "knight_attack_table"
	}
	return "knightAttacks"
}

func (o Options) opening() (string, error) {
	switch o.Format {
	case FormatGo:
		typ := o.Type
		if typ == "" {
			typ = fmt.Sprintf("[%d]uint64", NumSquares)
		}
		return fmt.Sprintf("var %s = %s{", o.name(), typ), nil
	case FormatC:
		return fmt.Sprintf("static constexpr const Bitboard %s[%d] = {", o.name(), NumSquares), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownFormat, o.Format)
}

func (o Options) closing() string {
	if o.Format == FormatC {
		return "};"
	}
	return "}"
}

// Write emits t as a declaration: one opening line, 64 lines of the form
// "\t0x<hex>," in square order, and one closing line.
func Write(w io.Writer, t Table, opts Options) error {
	open, err := opts.opening()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if opts.Format == FormatGo && opts.Package != "" {
		gen := opts.Generator
		if gen == "" {
			gen = "knight-tables"
		}
		fmt.Fprintf(bw, "// Code generated by %s; DO NOT EDIT.\n\npackage %s\n\n", gen, opts.Package)
		fmt.Fprintf(bw, "// %s holds the knight attack bitboard for each square.\n", opts.name())
	}
	fmt.Fprintln(bw, open)
	for _, bb := range t {
		fmt.Fprintf(bw, "\t0x%x,\n", uint64(bb))
	}
	fmt.Fprintln(bw, opts.closing())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
