package eval

import "github.com/BelikovArtem/othello-eval/bitutil"

// Position is the minimal interface a caller's board representation must
// satisfy for Adapt to translate it into the extractor's bitboard pair.
// Grounded in the original engine's Pos2 adapter: the core never touches
// move generation or flip computation, only the final disc layout and
// whose turn it is.
type Position interface {
	// Bitboards returns the black-disc and white-disc masks.
	Bitboards() (black, white uint64)
	// BlackToMove reports whether black is the side to move.
	BlackToMove() bool
	// MoveCount returns the number of legal moves available to black if
	// forBlack is true, otherwise to white.
	MoveCount(forBlack bool) int
}

// Adapted holds everything the score combiner needs, with the board
// already oriented from the mover's perspective.
type Adapted struct {
	Empty, Mover           uint64
	EmptyCount             int
	NMovesMover, NMovesOpp int
}

// Adapt extracts (empty, mover, empty count, move counts) from pos,
// performing the color inversion so the extractor and combiner remain
// color-blind: when white is to move, Mover is the white-disc mask.
func Adapt(pos Position) Adapted {
	black, white := pos.Bitboards()
	empty := ^(black | white)

	blackToMove := pos.BlackToMove()
	mover := black
	if !blackToMove {
		mover = white
	}

	return Adapted{
		Empty:       empty,
		Mover:       mover,
		EmptyCount:  bitutil.CountBits(empty),
		NMovesMover: pos.MoveCount(blackToMove),
		NMovesOpp:   pos.MoveCount(!blackToMove),
	}
}
