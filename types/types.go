// Package types contains declarations of the data types and predefined
// constants shared by every component of the pattern evaluator: the map
// catalogue, the packed coefficient layout, and the bitboard square-naming
// constants (file-major, bit 0 = A1, bit 63 = H8).
package types

// Map identifies one of the geometric feature maps the evaluator indexes
// coefficients by. The order below is load-bearing: it is the order maps
// appear both in a coefficient file's payload and in the flat coefficient
// array the loader produces (see [Offset]).
type Map int

const (
	MapR1 Map = iota
	MapR2
	MapR3
	MapR4
	MapD8
	MapD7
	MapD6
	MapD5
	MapTriangle
	MapC2x4
	MapC2x5
	MapEdgeXX
	MapM1
	MapM2
	MapPM1
	MapPM2
	MapParity
	mapCount
)

// mapSizes holds the per-map configuration counts from the map catalogue.
var mapSizes = [mapCount]int{
	MapR1:       6561,
	MapR2:       6561,
	MapR3:       6561,
	MapR4:       6561,
	MapD8:       6561,
	MapD7:       2187,
	MapD6:       729,
	MapD5:       243,
	MapTriangle: 9 * 6561,
	MapC2x4:     6561,
	MapC2x5:     9 * 6561,
	MapEdgeXX:   9 * 6561,
	MapM1:       64,
	MapM2:       64,
	MapPM1:      64,
	MapPM2:      64,
	MapParity:   2,
}

// NConfigs returns the number of distinct base-3 configurations the map
// covers: the size of the slice of the coefficient array it occupies.
func (m Map) NConfigs() int { return mapSizes[m] }

// IsPattern reports whether m is one of the packed pattern maps (R1..R4,
// D5..D8, Triangle, C2x4, C2x5, EdgeXX) as opposed to a plain scalar map
// (M1, M2, PM1, PM2, Parity).
func (m Map) IsPattern() bool { return m < MapM1 }

var mapOffsets = buildOffsets()

func buildOffsets() [mapCount]int {
	var offsets [mapCount]int
	running := 0
	for m := Map(0); m < mapCount; m++ {
		offsets[m] = running
		running += mapSizes[m]
	}
	return offsets
}

// Offset returns the starting index of m's slice within a flat coefficient
// array of size [TotalCoeffs].
func Offset(m Map) int { return mapOffsets[m] }

// TotalCoeffs is the size of one complete coefficient set: the sum of every
// map's configuration count, in table order.
var TotalCoeffs = mapOffsets[mapCount-1] + mapSizes[mapCount-1]

// CoeffWord is one packed 32-bit coefficient-array entry. For the pattern
// maps the layout is:
//
//	bits 31-16: signed coefficient in centi-discs, clamped to [-0x3FFF, 0x3FFF]
//	bits 15-8:  potential-mobility contribution for the mover
//	bits 7-0:   potential-mobility contribution for the opponent
//
// For the non-pattern maps (M1, M2, PM1, PM2, Parity) the word is an
// unscaled signed coefficient with no packing.
type CoeffWord int32

// PackPattern packs a centi-disc coefficient, clamped to 14-bit signed
// range, together with the two potential-mobility bytes.
func PackPattern(coeff int32, pmMover, pmOpp byte) CoeffWord {
	switch {
	case coeff > 0x3FFF:
		coeff = 0x3FFF
	case coeff < -0x3FFF:
		coeff = -0x3FFF
	}
	return CoeffWord(coeff<<16 | int32(pmMover)<<8 | int32(pmOpp))
}

// Coeff extracts the signed centi-disc coefficient from a packed pattern
// word (arithmetic shift, so the sign is preserved).
func (w CoeffWord) Coeff() int32 { return int32(w) >> 16 }

// PMMover extracts the mover's potential-mobility byte from a packed
// pattern word.
func (w CoeffWord) PMMover() byte { return byte(int32(w) >> 8) }

// PMOpp extracts the opponent's potential-mobility byte from a packed
// pattern word.
func (w CoeffWord) PMOpp() byte { return byte(w) }

// Features holds every pattern-map index extracted from a single bitboard
// pair, in the order the score combiner consumes them. It is produced by
// the feature extractor and otherwise opaque to callers.
type Features struct {
	// Rows holds the eight row indices, row 0 (rank 1) through row 7 (rank 8).
	Rows [8]int
	// Cols holds the eight column indices, column 0 (file A) through
	// column 7 (file H).
	Cols [8]int
	// D8A and D8B are the two length-8 diagonal indices.
	D8A, D8B int
	// D7, D6, D5 hold two indices per orientation (NWSE then NESW), in
	// the fixed order {A1, A2, B1, B2}.
	D7 [4]int
	D6 [4]int
	D5 [4]int
	// Triangle holds the two corner-triangle indices: Triangle[0] is
	// composed from rows 0-3 (the a1/h1 corners), Triangle[1] from rows
	// 7-4 (the a8/h8 corners).
	Triangle [2]int
}

// Square bitboards, file-major: bit 0 is A1, bit 63 is H8. These name the
// same 64 squares for any 8x8 board game.
const (
	A1 uint64 = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Square indices, 0 (A1) through 63 (H8).
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)
