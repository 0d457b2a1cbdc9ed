// Package bitutil implements the bit-manipulation primitives the pattern
// evaluator builds on: least-significant-bit scanning, population count,
// and the two-square-value gather used to turn a masked run of board bits
// into a base-3 pattern configuration.
package bitutil

import "github.com/klauspost/cpuid"

// Precalculated magic used to form indices for the BitScanLookup array.
const BITSCAN_MAGIC uint64 = 0x07EDD5E59A4E28C2

// Precalculated lookup table of LSB indices for 64 uints.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the Least Significant Bit (LSB) withing the bitboard.
// bitboard&-bitboard gives the LSB which is then run through the hashing scheme to index a lookup.
func BitScan(bitboard uint64) int { return bitScanLookup[bitboard&-bitboard*BITSCAN_MAGIC>>58] }

// PopLSB removes (pops) the least significant bit from the bitboard and returns its index.
// If the bitboard is empty, it returns -1.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}

	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the number of bits set within the bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard > 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}

// Extractor gathers count bits out of a 64-bit value, starting at bit
// start and spaced step bits apart, and returns them right-justified in
// the low count bits in the same order they appear in the source value
// (lowest source bit becomes the lowest result bit).
type Extractor struct {
	mask  uint64
	mult  uint64
	shift uint
}

// NewExtractor builds the mask/multiplier/shift triple for the magic
// multiplier technique: (value & mask) * mult >> shift gathers the bits
// at start, start+step, start+2*step, ... into the low count bits.
// Ported from the meta_repeated_bit/extractor template metaprogram in the
// original engine's bitextractor.h, computed here at package-init time
// with ordinary loops instead of C++ template recursion.
func NewExtractor(start, count, step uint) Extractor {
	// The count>step precondition only matters when step>1: it prevents
	// the shifted partial products the multiply produces from
	// overlapping. A step of 1 gathers an already-contiguous run, where
	// mult degenerates to the identity (no merging needed), so any count
	// is valid.
	if step > 1 && count > step {
		panic("bitutil: count must not exceed step")
	}

	var mask uint64
	for i := uint(0); i < count; i++ {
		mask |= 1 << (start + i*step)
	}

	var multBase uint64
	if step > 0 {
		for i := uint(0); i < count; i++ {
			multBase |= 1 << (i * (step - 1))
		}
	} else {
		multBase = 1
	}

	shiftAmt := 63 - start - (count-1)*step
	return Extractor{mask: mask, mult: multBase << shiftAmt, shift: 64 - count}
}

// Mask returns the set of source bits e gathers, for callers that need it
// to drive [GatherMask] or [Dispatch] directly.
func (e Extractor) Mask() uint64 { return e.mask }

// Extract gathers the configured bits out of value.
func (e Extractor) Extract(value uint64) uint64 {
	return ((value & e.mask) * e.mult) >> e.shift
}

// secondDiagMask and secondDiagMult implement the NESW (second) diagonal
// of length 8, whose count of 8 exceeds its step of 7 and so breaks the
// precondition of [NewExtractor] (count must not exceed step). Ported
// directly from extract_second_diagonal in the original engine's
// bitextractor.h.
const (
	secondDiagMask = 1<<7 | 1<<14 | 1<<21 | 1<<28 | 1<<35 | 1<<42 | 1<<49 | 1<<56
	secondDiagMult = 0x0101010101010101
)

// ExtractSecondDiagonal gathers the 8 bits of the a8-h1 diagonal (NESW),
// the one geometry the general-purpose magic multiplier in Extract cannot
// handle because its count exceeds its step. Result bit f holds the
// square on file f (bit 0 = a8, bit 7 = h1), so the highest source bit
// becomes the lowest result bit.
func ExtractSecondDiagonal(value uint64) uint64 {
	return ((value & secondDiagMask) * secondDiagMult) >> 56
}

// GatherMask performs the same bit-gather as Extract but with a loop over
// the mask's set bits rather than a magic multiplication; it is the
// portable stand-in for a hardware parallel-bit-extract instruction.
// [Dispatch] selects it on CPUs that report BMI2 support.
func GatherMask(value, mask uint64) uint64 {
	var result uint64
	var bit uint
	for m := mask; m != 0; m &= m - 1 {
		lsb := m & -m
		if value&lsb != 0 {
			result |= 1 << bit
		}
		bit++
	}
	return result
}

// HasBMI2 reports whether the running CPU advertises BMI2 support,
// detected once at package-init time via github.com/klauspost/cpuid.
var HasBMI2 = cpuid.CPU.BMI2()

// Dispatch selects between the magic-multiplier extractor and the
// mask-gather emulation based on runtime CPU capability, never at build
// time: on CPUs with BMI2 the gather emulation models the path a real
// PEXT instruction would take, otherwise the multiply-based extractor is
// used unconditionally. Both paths return identical results for every
// input; only their CPU profile differs.
func Dispatch(e Extractor, value uint64) uint64 {
	if HasBMI2 {
		return GatherMask(value, e.mask)
	}
	return e.Extract(value)
}
