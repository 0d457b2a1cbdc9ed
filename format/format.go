// Package format provides functions to render an Othello bitboard pair as
// a text board. It exists purely to make test fixtures and debugging
// output readable, mirroring the role the teacher repo's format package
// plays for chess positions.
package format

import "strings"

var squareString = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Bitboard formats a single bitboard (e.g. just the mover's discs) into a
// grid of filled/empty markers.
func Bitboard(bitboard uint64) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := byte('.')
			if bitboard&square != 0 {
				symbol = '*'
			}

			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// Board formats an (empty, mover) bitboard pair, oriented from the
// mover's perspective: 'O' marks a mover disc, 'x' marks an opponent
// disc, '.' marks an empty square.
func Board(empty, mover uint64) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := byte('x')
			switch {
			case empty&square != 0:
				symbol = '.'
			case mover&square != 0:
				symbol = 'O'
			}

			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// SquareName returns the algebraic name (e.g. "d3") of square index sq
// (0 = a1, 63 = h8).
func SquareName(sq int) string { return squareString[sq] }
