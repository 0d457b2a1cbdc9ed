// Package eval implements the score combiner and the position adapter:
// the two components that sit above the pattern extractor and the
// coefficient store. Score is a pure function of a coefficient array and
// a Features record; Adapt translates a caller's board representation
// into the extractor's (empty, mover) bitboard pair.
package eval

import (
	"github.com/BelikovArtem/othello-eval/pattern"
	"github.com/BelikovArtem/othello-eval/types"
)

func clamp63(n int) int {
	if n < 0 {
		return 0
	}
	if n > 63 {
		return 63
	}
	return n
}

// Score combines a coefficient array (as produced by the coefficient
// loader, see package coeff) with a position's extracted Features,
// mobility counts, and empty count into a final centi-disc evaluation.
func Score(c []int32, f types.Features, nMovesMover, nMovesOpp, emptyCount int) int32 {
	var acc int64

	rowSchedule := [8]types.Map{
		types.MapR1, types.MapR2, types.MapR3, types.MapR4,
		types.MapR4, types.MapR3, types.MapR2, types.MapR1,
	}
	for i, m := range rowSchedule {
		acc += int64(c[types.Offset(m)+f.Rows[i]])
	}
	for i, m := range rowSchedule {
		acc += int64(c[types.Offset(m)+f.Cols[i]])
	}

	acc += int64(c[types.Offset(types.MapD8)+f.D8A])
	acc += int64(c[types.Offset(types.MapD8)+f.D8B])
	for _, idx := range f.D7 {
		acc += int64(c[types.Offset(types.MapD7)+idx])
	}
	for _, idx := range f.D6 {
		acc += int64(c[types.Offset(types.MapD6)+idx])
	}
	for _, idx := range f.D5 {
		acc += int64(c[types.Offset(types.MapD5)+idx])
	}

	triOff := types.Offset(types.MapTriangle)
	for _, packed := range f.Triangle {
		acc += int64(c[triOff+(packed&0xFFFF)])
		acc += int64(c[triOff+((packed>>16)&0xFFFF)])
	}

	c2x5Off := types.Offset(types.MapC2x5)
	edgeOff := types.Offset(types.MapEdgeXX)

	addEdge := func(rowA, rowB int) {
		packed := pattern.Row1To2x5(f.Rows[rowA]) + pattern.Row2To2x5(f.Rows[rowB])
		acc += int64(c[c2x5Off+(packed&0xFFFF)])
		acc += int64(c[c2x5Off+((packed>>16)&0xFFFF)])
		acc += int64(c[edgeOff+f.Rows[rowA]+6561*int(pattern.Row2ToXX(f.Rows[rowB]))])
	}
	addEdge(0, 1)
	addEdge(7, 6)

	addEdgeCols := func(colA, colB int) {
		packed := pattern.Row1To2x5(f.Cols[colA]) + pattern.Row2To2x5(f.Cols[colB])
		acc += int64(c[c2x5Off+(packed&0xFFFF)])
		acc += int64(c[c2x5Off+((packed>>16)&0xFFFF)])
		acc += int64(c[edgeOff+f.Cols[colA]+6561*int(pattern.Row2ToXX(f.Cols[colB]))])
	}
	addEdgeCols(0, 1)
	addEdgeCols(7, 6)

	pmMoverRaw := (acc >> 8) & 0xff
	pmOppRaw := acc & 0xff
	nPMMover := (int(pmMoverRaw) + potMobAdd) >> potMobShift
	nPMOpp := (int(pmOppRaw) + potMobAdd) >> potMobShift

	score := int32(acc >> 16)

	score += int32(c[types.Offset(types.MapPM1)+clamp63(nPMMover)])
	score += int32(c[types.Offset(types.MapPM2)+clamp63(nPMOpp)])
	score += int32(c[types.Offset(types.MapM1)+clamp63(nMovesMover)])
	score += int32(c[types.Offset(types.MapM2)+clamp63(nMovesOpp)])
	score += int32(c[types.Offset(types.MapParity)+(emptyCount&1)])

	return score
}

const (
	potMobAdd   = 1
	potMobShift = 2
)

// Evaluate runs the full pipeline (extract then combine) for callers that
// only have the raw bitboard pair and a coefficient array, without
// needing a coeff.Store.
func Evaluate(c []int32, empty, mover uint64, nMovesMover, nMovesOpp, emptyCount int) int32 {
	f := pattern.Extract(empty, mover)
	return Score(c, f, nMovesMover, nMovesOpp, emptyCount)
}
