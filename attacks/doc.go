// Package attacks builds the knight attack table: for every square of an
// 8x8 board, the bitboard of squares one knight move away on an empty board.
//
// KnightAttacks is the generated form of Build, regenerated with go generate.
package attacks

//go:generate go run .. -package attacks -name KnightAttacks -type Table -o knight_table.go
