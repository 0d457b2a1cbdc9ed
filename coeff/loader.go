// Package coeff implements the coefficient loader and store: opening the
// per-bucket coefficient files, auto-migrating the legacy float format,
// packing pattern coefficients together with their potential-mobility
// bytes, folding the 2x4 corner block into 2x5, and building the
// empty-count dispatch table.
package coeff

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	"github.com/BelikovArtem/othello-eval/coefferr"
	"github.com/BelikovArtem/othello-eval/internal/obslog"
	"github.com/BelikovArtem/othello-eval/pattern"
	"github.com/BelikovArtem/othello-eval/types"
	"go.uber.org/zap"
)

const supportedFamily = 'J'

// Load builds a Store for the given evaluator family and coefficient-set
// identifier, reading files named <family><set><letter>.cof out of
// <baseDir>/coefficients.
func Load(family, set byte, baseDir string) (*Store, error) {
	if family != supportedFamily {
		return nil, coefferr.New(coefferr.KindUnsupportedFamily, string(family)).
			WithDetail("only family %q is supported", string(supportedFamily))
	}

	nFiles := 6
	if set >= '9' {
		nFiles = 10
	}
	setWidth := 60 / nFiles

	store := &Store{}
	for fileIndex := 0; fileIndex < nFiles; fileIndex++ {
		letter := byte('a' + fileIndex)
		path := filepath.Join(baseDir, "coefficients", string([]byte{family, set, letter})+".cof")

		raw, err := loadFileRaw(path)
		if err != nil {
			return nil, err
		}

		even, odd := buildParitySets(raw, set, fileIndex)
		evenIdx := store.addSet(even)
		oddIdx := store.addSet(odd)

		lo := 59 - setWidth*fileIndex - setWidth + 1
		hi := 59 - setWidth*fileIndex
		for nEmpty := lo; nEmpty <= hi; nEmpty++ {
			if nEmpty < 0 || nEmpty > 59 {
				continue
			}
			if nEmpty&1 != 0 {
				store.byEmpty[nEmpty] = oddIdx
			} else {
				store.byEmpty[nEmpty] = evenIdx
			}
		}

		obslog.Logger().Debug("bound coefficient file",
			zap.String("path", path),
			zap.Int("file_index", fileIndex),
			zap.Int("bucket_lo", lo),
			zap.Int("bucket_hi", hi),
		)
	}

	return store, nil
}

// loadFileRaw opens path, validates its header, migrates a legacy v14
// file in place if needed, and returns the flat array of raw (unpacked,
// centi-disc) coefficients in table order.
func loadFileRaw(path string) ([]int32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, coefferr.New(coefferr.KindCoefficientFile, path).WithCause(err)
	}
	if len(data) < 8 {
		return nil, coefferr.New(coefferr.KindCoefficientTruncated, path).
			WithDetail("file shorter than the 8-byte header")
	}

	version := int32(binary.LittleEndian.Uint32(data[0:4]))
	params := int32(binary.LittleEndian.Uint32(data[4:8]))

	if version != 1 {
		return nil, coefferr.New(coefferr.KindCoefficientFormat, path).
			WithDetail("version=%d, want 1", version)
	}

	switch params {
	case 100:
		return parseV100(path, data[8:])
	case 14:
		raw, err := parseV14(path, data[8:])
		if err != nil {
			return nil, err
		}
		if err := rewriteV100(path, raw); err != nil {
			return nil, err
		}
		obslog.Logger().Info("migrated legacy coefficient file", zap.String("path", path))
		return raw, nil
	default:
		return nil, coefferr.New(coefferr.KindCoefficientFormat, path).
			WithDetail("params=%d, want 100 or 14", params)
	}
}

func parseV100(path string, body []byte) ([]int32, error) {
	n := types.TotalCoeffs
	if len(body) < n*2 {
		return nil, coefferr.New(coefferr.KindCoefficientTruncated, path).
			WithDetail("expected %d bytes of v100 payload, got %d", n*2, len(body))
	}
	raw := make([]int32, n)
	for i := 0; i < n; i++ {
		raw[i] = int32(int16(binary.LittleEndian.Uint16(body[i*2:])))
	}
	return raw, nil
}

func parseV14(path string, body []byte) ([]int32, error) {
	n := types.TotalCoeffs
	if len(body) < n*4 {
		return nil, coefferr.New(coefferr.KindCoefficientTruncated, path).
			WithDetail("expected %d bytes of v14 payload, got %d", n*4, len(body))
	}
	raw := make([]int32, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(body[i*4:])
		f := math.Float32frombits(bits)
		raw[i] = clamp14(int32(math.Round(float64(f) * 100)))
	}
	return raw, nil
}

func clamp14(v int32) int32 {
	switch {
	case v > 0x3FFF:
		return 0x3FFF
	case v < -0x3FFF:
		return -0x3FFF
	default:
		return v
	}
}

// rewriteV100 atomically replaces path with a v100-format file carrying
// the already-migrated raw coefficients, so a second load of the same
// family/set hits the v100 branch directly (see TestLegacyMigrationRewritesToV100).
func rewriteV100(path string, raw []int32) error {
	buf := make([]byte, 8+len(raw)*2)
	binary.LittleEndian.PutUint32(buf[0:4], 1)
	binary.LittleEndian.PutUint32(buf[4:8], 100)
	for i, v := range raw {
		binary.LittleEndian.PutUint16(buf[8+i*2:], uint16(int16(v)))
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return coefferr.New(coefferr.KindCoefficientRewrite, path).WithCause(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return coefferr.New(coefferr.KindCoefficientRewrite, path).WithCause(err)
	}
	return nil
}

// buildParitySets produces the even- and odd-parity coefficient sets
// seeded from the same raw block, applying the parity correction,
// pattern packing, and 2x4-into-2x5 fold independently to each.
func buildParitySets(raw []int32, set byte, fileIndex int) (even, odd []int32) {
	return buildOneParitySet(raw, set, fileIndex, 0), buildOneParitySet(raw, set, fileIndex, 1)
}

func buildOneParitySet(raw []int32, set byte, fileIndex, parity int) []int32 {
	out := make([]int32, types.TotalCoeffs)

	for m := types.Map(0); m < types.MapParity+1; m++ {
		off := types.Offset(m)
		n := m.NConfigs()
		for c := 0; c < n; c++ {
			coeff := raw[off+c]

			if m == types.MapParity && set >= 'A' {
				switch {
				case fileIndex >= 7:
					coeff += 65 // 0.65 * stone value (100)
				case fileIndex == 6:
					coeff += 33 // 0.33 * stone value (100)
				}
			}

			if m.IsPattern() {
				pmMover, pmOpp := patternPM(m, c)
				out[off+c] = int32(types.PackPattern(coeff, pmMover, pmOpp))
			} else {
				out[off+c] = coeff
			}
		}
	}

	fold2x4Into2x5(out)
	_ = parity // parity does not change the contents; it only names the byEmpty slots the caller binds the set to
	return out
}

// patternPM returns the potential-mobility bytes a pattern-map
// configuration packs alongside its coefficient. Triangle, C2x4, C2x5 and
// EdgeXX are not straight-line patterns (C2x4/C2x5/EdgeXX) or use the
// dedicated triangle table (Triangle); the rest use the length-keyed
// straight-line table.
func patternPM(m types.Map, config int) (mover, opp byte) {
	switch m {
	case types.MapTriangle:
		return pattern.ConfigToPMTriangle(0, config), pattern.ConfigToPMTriangle(1, config)
	case types.MapC2x4, types.MapC2x5, types.MapEdgeXX:
		return 0, 0
	default:
		length := rowLength(m)
		return pattern.ConfigToPM(0, length, config), pattern.ConfigToPM(1, length, config)
	}
}

func rowLength(m types.Map) int {
	switch m {
	case types.MapR1, types.MapR2, types.MapR3, types.MapR4, types.MapD8:
		return 8
	case types.MapD7:
		return 7
	case types.MapD6:
		return 6
	case types.MapD5:
		return 5
	default:
		return 8
	}
}

// fold2x4Into2x5 adds the C2x4 slot's coefficients into the corresponding
// C2x5 slot, then zeroes C2x4, matching the loader invariant that
// coeff[C2x4][0..6560] == 0 after construction.
func fold2x4Into2x5(out []int32) {
	c2x4Off := types.Offset(types.MapC2x4)
	c2x5Off := types.Offset(types.MapC2x5)

	for c := 0; c < types.MapC2x5.NConfigs(); c++ {
		sub := pattern.Fold2x5To2x4(c)
		out[c2x5Off+c] += out[c2x4Off+sub]
	}
	for c := 0; c < types.MapC2x4.NConfigs(); c++ {
		out[c2x4Off+c] = 0
	}
}
