package pattern

import (
	"math/rand"
	"testing"

	"github.com/BelikovArtem/othello-eval/bitutil"
)

func TestBase2to3RoundTrip(t *testing.T) {
	for e := 0; e < 256; e++ {
		for m := 0; m < 256; m++ {
			if e&m != 0 {
				continue
			}
			got := base2to3[e] + 2*base2to3[m]

			var want int32
			pow := int32(1)
			for i := 0; i < 8; i++ {
				switch {
				case e&(1<<i) != 0:
					// digit 1, contributes pow*1
					want += pow
				case m&(1<<i) != 0:
					want += pow * 2
				}
				pow *= 3
			}
			if got != want {
				t.Fatalf("e=%x m=%x: got %d want %d", e, m, got, want)
			}
		}
	}
}

func TestExtractSelfConsistentRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		mover := rng.Uint64()
		empty := ^mover & rng.Uint64()
		mover &^= empty

		f := Extract(empty, mover)
		for _, idx := range f.Rows {
			if idx < 0 || idx >= 6561 {
				t.Fatalf("row index out of range: %d", idx)
			}
		}
		for _, idx := range f.Cols {
			if idx < 0 || idx >= 6561 {
				t.Fatalf("col index out of range: %d", idx)
			}
		}
		if f.D8A < 0 || f.D8A >= 6561 || f.D8B < 0 || f.D8B >= 6561 {
			t.Fatalf("diag8 index out of range: %d %d", f.D8A, f.D8B)
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	empty := uint64(0xFFFFFFE7E7FFFFFF)
	mover := uint64(0x0000001008000000)

	a := Extract(empty, mover)
	b := Extract(empty, mover)
	if a != b {
		t.Fatalf("Extract is not deterministic: %+v != %+v", a, b)
	}
}

func TestColumnExtractorAgreesWithGatherMask(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for c := 0; c < 8; c++ {
		ex := colExtractors[c]
		for i := 0; i < 500; i++ {
			v := rng.Uint64()
			want := bitutil.GatherMask(v, ex.Mask())
			got := ex.Extract(v)
			if got != want {
				t.Fatalf("col %d: Extract=%#x GatherMask=%#x", c, got, want)
			}
		}
	}
}

func TestFold2x5From2x4TableInRange(t *testing.T) {
	for c := 0; c < 59049; c += 977 {
		v := configs2x5To2x4[c]
		if v < 0 || v >= 6561 {
			t.Fatalf("configs2x5To2x4[%d] = %d out of [0,6561)", c, v)
		}
	}
}
