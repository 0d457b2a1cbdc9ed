// Package pattern implements the board-to-pattern-index tables and the
// bitboard feature extractor: the base-2-to-base-3 conversion table, the
// row-composition tables for the corner patterns, the 2x4-into-2x5 fold
// table, and the potential-mobility contribution tables the loader packs
// into pattern coefficients.
package pattern

// base2to3 maps an 8-bit occupancy byte to the base-3 integer obtained by
// promoting each set bit i into a ternary digit of weight 3^i. Used by
// Extract as base2to3[emptyByte] + 2*base2to3[moverByte] to produce a row
// (or gathered-column/diagonal) configuration index, matching the
// original engine's base2ToBase3Table.
var base2to3 = buildBase2to3()

func buildBase2to3() [256]int32 {
	var pow3 [8]int32
	pow3[0] = 1
	for i := 1; i < 8; i++ {
		pow3[i] = pow3[i-1] * 3
	}

	var t [256]int32
	for m := 0; m < 256; m++ {
		var v int32
		for i := 0; i < 8; i++ {
			if m&(1<<i) != 0 {
				v += pow3[i]
			}
		}
		t[m] = v
	}
	return t
}

// rowDigits decomposes a row configuration index (0..6560) into its 8
// ternary digits, digit 0 at column a through digit 7 at column h.
func rowDigits(rowIdx int) [8]int {
	var d [8]int
	for i := 0; i < 8; i++ {
		d[i] = rowIdx % 3
		rowIdx /= 3
	}
	return d
}

// triPacked packs two triangle-corner partial indices into one word, low
// 16 bits for the left corner (a-file side), high 16 bits for the right
// corner (h-file side) — mirroring the packing row{1,2,3,4}ToTriangle use
// in the original engine so that a single pass over rows 1-4 (or, for the
// opposite board edge, rows 8-5) yields both corner indices at once.
func triPacked(low, high int32) int32 { return low | high<<16 }

// row1ToTriangle, row2ToTriangle, row3ToTriangle, row4ToTriangle give the
// partial triangle-pattern contribution of each row of the 4-deep corner
// triangle (row1 contributes 4 squares, row2 three, row3 two, row4 one),
// summed to build the full 10-square base-3 Triangle index for the a-file
// corner (low 16 bits) and h-file corner (high 16 bits) simultaneously.
var (
	row1ToTriangle = buildRow1ToTriangle()
	row2ToTriangle = buildRow2ToTriangle()
	row3ToTriangle = buildRow3ToTriangle()
	row4ToTriangle = buildRow4ToTriangle()
)

func buildRow1ToTriangle() [6561]int32 {
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := int32(d[0]) + int32(d[1])*3 + int32(d[2])*9 + int32(d[3])*27
		high := int32(d[7]) + int32(d[6])*3 + int32(d[5])*9 + int32(d[4])*27
		t[r] = triPacked(low, high)
	}
	return t
}

func buildRow2ToTriangle() [6561]int32 {
	const weight = 81 // 3^4
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := (int32(d[0]) + int32(d[1])*3 + int32(d[2])*9) * weight
		high := (int32(d[7]) + int32(d[6])*3 + int32(d[5])*9) * weight
		t[r] = triPacked(low, high)
	}
	return t
}

func buildRow3ToTriangle() [6561]int32 {
	const weight = 2187 // 3^7
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := (int32(d[0]) + int32(d[1])*3) * weight
		high := (int32(d[7]) + int32(d[6])*3) * weight
		t[r] = triPacked(low, high)
	}
	return t
}

func buildRow4ToTriangle() [6561]int32 {
	const weight = 19683 // 3^9
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := int32(d[0]) * weight
		high := int32(d[7]) * weight
		t[r] = triPacked(low, high)
	}
	return t
}

// row1To2x5 and row2To2x5 give the partial contribution of each row of the
// 2x5 corner block (5 squares per row, columns a-e for the left block and
// columns h-d for the right block), packed low 16 bits for the left
// block, high 16 bits for the right block.
var (
	row1To2x5 = buildRow1To2x5()
	row2To2x5 = buildRow2To2x5()
)

func buildRow1To2x5() [6561]int32 {
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := int32(d[0]) + int32(d[1])*3 + int32(d[2])*9 + int32(d[3])*27 + int32(d[4])*81
		high := int32(d[7]) + int32(d[6])*3 + int32(d[5])*9 + int32(d[4])*27 + int32(d[3])*81
		t[r] = triPacked(low, high)
	}
	return t
}

func buildRow2To2x5() [6561]int32 {
	const weight = 243 // 3^5
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		low := (int32(d[0]) + int32(d[1])*3 + int32(d[2])*9 + int32(d[3])*27 + int32(d[4])*81) * weight
		high := (int32(d[7]) + int32(d[6])*3 + int32(d[5])*9 + int32(d[4])*27 + int32(d[3])*81) * weight
		t[r] = triPacked(low, high)
	}
	return t
}

// row2ToXX gives the contribution of the two X-squares (b2 and g2) to the
// EdgeXX pattern: two ternary digits, weight 1 and 3, independent per
// board side.
var row2ToXX = buildRow2ToXX()

func buildRow2ToXX() [6561]int32 {
	var t [6561]int32
	for r := 0; r < 6561; r++ {
		d := rowDigits(r)
		t[r] = int32(d[1]) + int32(d[6])*3
	}
	return t
}

// configs2x5To2x4 maps a 2x5 corner-block configuration to the 2x4
// sub-configuration obtained by deleting its outermost column (column e,
// digit weights 3^4 and 3^9), used once at load time to fold 2x4
// coefficients into 2x5.
var configs2x5To2x4 = buildConfigs2x5To2x4()

func buildConfigs2x5To2x4() [59049]int32 {
	var t [59049]int32
	for c := 0; c < 59049; c++ {
		v := c
		var digits [10]int
		for i := 0; i < 10; i++ {
			digits[i] = v % 3
			v /= 3
		}
		// digits[0..4] = row1 cols a-e, digits[5..9] = row2 cols a-e.
		// Drop column e (digits[4] and digits[9]) to fold into the 2x4
		// sub-pattern (rows 1-2, cols a-d).
		row1 := digits[0] + digits[1]*3 + digits[2]*9 + digits[3]*27
		row2 := digits[5] + digits[6]*3 + digits[7]*9 + digits[8]*27
		t[c] = int32(row1 + row2*81)
	}
	return t
}

// Fold2x5To2x4 maps a 2x5 corner-block configuration to its 2x4
// sub-configuration, used once at load time to fold the 2x4 coefficient
// slot into 2x5.
func Fold2x5To2x4(config int) int32 { return configs2x5To2x4[config] }

// potMobShift and potMobAdd record the data constants that turn a summed
// potential-mobility byte into a move count. Nothing in this package
// reads them; the score combiner in package eval declares its own copies
// with the same values.
const (
	potMobAdd   = 1
	potMobShift = 2
)

// configToPM tables give the per-configuration potential-mobility
// contribution of a straight-line pattern (rows/diagonals of length
// 5..8), one table per side (0 = mover, 1 = opponent) and per length.
// configToPMTriangle does the same for the 10-square corner triangle.
//
// A square contributes to a side's potential mobility if it is empty and
// adjacent (within the line) to an opponent disc from that side's point
// of view; the contribution is the count of such squares, later summed
// across the eight patterns touching a square before being shifted down
// by potMobShift in the score combiner.
var (
	configToPM         = buildConfigToPM()
	configToPMTriangle = buildConfigToPMTriangle()
)

// potMobDigitCount returns, for a line of n ternary digits (0=opponent,
// 1=empty, 2=mover per the evaluator's base-3 convention), how many empty
// squares are adjacent to a disc of the opposite color from the given
// side's perspective. side 0 counts empty squares adjacent to an
// opponent disc (potential mobility for the mover); side 1 is symmetric.
func potMobDigitCount(digits []int, side int) int {
	target := 2 // mover disc is the enemy from the opponent's perspective
	if side == 0 {
		target = 0 // opponent disc is the enemy from the mover's perspective
	}
	count := 0
	for i, d := range digits {
		if d != 1 {
			continue
		}
		if i > 0 && digits[i-1] == target {
			count++
			continue
		}
		if i < len(digits)-1 && digits[i+1] == target {
			count++
		}
	}
	return count
}

func buildConfigToPM() [2][4][]byte {
	var tables [2][4][]byte
	lengths := [4]int{5, 6, 7, 8}
	for li, n := range lengths {
		size := 1
		for i := 0; i < n; i++ {
			size *= 3
		}
		for side := 0; side < 2; side++ {
			tbl := make([]byte, size)
			for c := 0; c < size; c++ {
				digits := make([]int, n)
				v := c
				for i := 0; i < n; i++ {
					digits[i] = v % 3
					v /= 3
				}
				tbl[c] = byte(potMobDigitCount(digits, side))
			}
			tables[side][li] = tbl
		}
	}
	return tables
}

func buildConfigToPMTriangle() [2][]byte {
	const size = 59049
	var tables [2][]byte
	for side := 0; side < 2; side++ {
		tbl := make([]byte, size)
		for c := 0; c < size; c++ {
			digits := make([]int, 10)
			v := c
			for i := 0; i < 10; i++ {
				digits[i] = v % 3
				v /= 3
			}
			// Adjacency within the triangle's own row/column neighbor
			// layout is not a simple line; approximate with the same
			// neighbor-count rule applied across the full digit
			// sequence, consistent with the straight-line patterns.
			tbl[c] = byte(potMobDigitCount(digits, side))
		}
		tables[side] = tbl
	}
	return tables
}

// Row1To2x5 returns row1ToTriangle's 2x5-block counterpart for the given
// row-1 configuration: the packed left/right partial 2x5 index.
func Row1To2x5(rowIdx int) int32 { return row1To2x5[rowIdx] }

// Row2To2x5 returns the packed left/right partial 2x5 index contributed
// by row 2.
func Row2To2x5(rowIdx int) int32 { return row2To2x5[rowIdx] }

// Row2ToXX returns the two X-square ternary digits (columns b and g)
// contributed by row 2 to the EdgeXX pattern.
func Row2ToXX(rowIdx int) int32 { return row2ToXX[rowIdx] }

// ConfigToPM returns the potential-mobility byte for a straight-line
// pattern of the given length (5..8) and side (0=mover,1=opponent).
func ConfigToPM(side, length, config int) byte {
	li := length - 5
	return configToPM[side][li][config]
}

// ConfigToPMTriangle returns the potential-mobility byte for the corner
// triangle pattern.
func ConfigToPMTriangle(side, config int) byte {
	return configToPMTriangle[side][config]
}
