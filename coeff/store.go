package coeff

import "github.com/BelikovArtem/othello-eval/eval"

// Store owns every coefficient set loaded for one (family, set) pair and
// the empty-count dispatch table that selects among them. Once built by
// Load, a Store is immutable and safe for concurrent readers.
type Store struct {
	sets    [][]int32
	byEmpty [60]int
}

func (s *Store) addSet(set []int32) int {
	s.sets = append(s.sets, set)
	return len(s.sets) - 1
}

// PCoeffs returns the coefficient array bound to emptyCount. Always
// returns a valid slice; out-of-range counts are folded into range via
// modular arithmetic rather than panicking, matching the design's choice
// to keep Evaluate free of dynamic preconditions.
func (s *Store) PCoeffs(emptyCount int) []int32 {
	idx := emptyCount % 60
	if idx < 0 {
		idx += 60
	}
	return s.sets[s.byEmpty[idx]]
}

// SetIndex returns the internal coefficient-set index bound to
// emptyCount, for diagnostics that want to compare bucket assignment
// across empty counts without comparing slice contents.
func (s *Store) SetIndex(emptyCount int) int {
	idx := emptyCount % 60
	if idx < 0 {
		idx += 60
	}
	return s.byEmpty[idx]
}

// Evaluate scores a position already reduced to the extractor's bitboard
// pair, delegating feature extraction and score combination to package
// eval.
func (s *Store) Evaluate(empty, mover uint64, emptyCount, nMovesMover, nMovesOpp int) int32 {
	return eval.Evaluate(s.PCoeffs(emptyCount), empty, mover, nMovesMover, nMovesOpp, emptyCount)
}
