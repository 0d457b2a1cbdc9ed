package pattern

import (
	"github.com/BelikovArtem/othello-eval/bitutil"
	"github.com/BelikovArtem/othello-eval/types"
)

// Diagonal extractors, one Extractor per orientation/length combination
// the NWSE diagonals need. The NESW (second) diagonal of length 8 uses
// bitutil.ExtractSecondDiagonal instead, since its count (8) exceeds its
// step (7), which the magic-multiplier Extractor cannot handle directly.
var (
	mainDiag = bitutil.NewExtractor(0, 8, 9)

	d7nwse = [2]bitutil.Extractor{
		bitutil.NewExtractor(1, 7, 9),
		bitutil.NewExtractor(8, 7, 9),
	}
	d7nesw = [2]bitutil.Extractor{
		bitutil.NewExtractor(6, 7, 7),
		bitutil.NewExtractor(15, 7, 7),
	}

	d6nwse = [2]bitutil.Extractor{
		bitutil.NewExtractor(2, 6, 9),
		bitutil.NewExtractor(16, 6, 9),
	}
	d6nesw = [2]bitutil.Extractor{
		bitutil.NewExtractor(5, 6, 7),
		bitutil.NewExtractor(23, 6, 7),
	}

	d5nwse = [2]bitutil.Extractor{
		bitutil.NewExtractor(3, 5, 9),
		bitutil.NewExtractor(24, 5, 9),
	}
	d5nesw = [2]bitutil.Extractor{
		bitutil.NewExtractor(4, 5, 7),
		bitutil.NewExtractor(31, 5, 7),
	}

	colExtractors = buildColExtractors()
)

func buildColExtractors() [8]bitutil.Extractor {
	var e [8]bitutil.Extractor
	for c := 0; c < 8; c++ {
		e[c] = bitutil.NewExtractor(uint(c), 8, 8)
	}
	return e
}

// base3Line combines the extracted empty/mover bit-strings for one line
// into a base-3 configuration index, per the evaluator's digit
// convention (empty contributes a 1-weighted digit, mover a 2-weighted
// digit, opponent the implicit 0).
func base3Line(emptyBits, moverBits uint64) int {
	return int(base2to3[emptyBits] + 2*base2to3[moverBits])
}

// Extract is the pure bitboard-to-pattern-index function: given the
// empty-square and mover-disc bitboards, it returns every base-3 pattern
// index the score combiner needs.
func Extract(empty, mover uint64) types.Features {
	var f types.Features

	for r := 0; r < 8; r++ {
		shift := uint(8 * r)
		eb := (empty >> shift) & 0xff
		mb := (mover >> shift) & 0xff
		f.Rows[r] = base3Line(eb, mb)
	}

	for c := 0; c < 8; c++ {
		ex := colExtractors[c]
		eb := bitutil.Dispatch(ex, empty)
		mb := bitutil.Dispatch(ex, mover)
		f.Cols[c] = base3Line(eb, mb)
	}

	f.D8A = base3Line(bitutil.Dispatch(mainDiag, empty), bitutil.Dispatch(mainDiag, mover))
	f.D8B = base3Line(bitutil.ExtractSecondDiagonal(empty), bitutil.ExtractSecondDiagonal(mover))

	extractPair := func(exs [2]bitutil.Extractor, out []int, base int) {
		for i, ex := range exs {
			eb := bitutil.Dispatch(ex, empty)
			mb := bitutil.Dispatch(ex, mover)
			out[base+i] = base3Line(eb, mb)
		}
	}
	extractPair(d7nwse, f.D7[:], 0)
	extractPair(d7nesw, f.D7[:], 2)
	extractPair(d6nwse, f.D6[:], 0)
	extractPair(d6nesw, f.D6[:], 2)
	extractPair(d5nwse, f.D5[:], 0)
	extractPair(d5nesw, f.D5[:], 2)

	f.Triangle[0] = int(row1ToTriangle[f.Rows[0]] + row2ToTriangle[f.Rows[1]] +
		row3ToTriangle[f.Rows[2]] + row4ToTriangle[f.Rows[3]])
	f.Triangle[1] = int(row1ToTriangle[f.Rows[7]] + row2ToTriangle[f.Rows[6]] +
		row3ToTriangle[f.Rows[5]] + row4ToTriangle[f.Rows[4]])

	return f
}
