package types

import "testing"

func TestOffsetOrder(t *testing.T) {
	prev := Offset(MapR1)
	if prev != 0 {
		t.Fatalf("MapR1 offset = %d, want 0", prev)
	}
	for m := Map(1); m < mapCount; m++ {
		off := Offset(m)
		if off < prev {
			t.Fatalf("map %d offset %d is less than previous offset %d", m, off, prev)
		}
		prev = off
	}
}

func TestOffsetMatchesRunningSize(t *testing.T) {
	want := 0
	for m := Map(0); m < mapCount; m++ {
		if got := Offset(m); got != want {
			t.Fatalf("map %d: offset = %d, want %d", m, got, want)
		}
		want += m.NConfigs()
	}
	if TotalCoeffs != want {
		t.Fatalf("TotalCoeffs = %d, want %d", TotalCoeffs, want)
	}
}

func TestIsPattern(t *testing.T) {
	for m := MapR1; m <= MapEdgeXX; m++ {
		if !m.IsPattern() {
			t.Fatalf("map %d should be a pattern map", m)
		}
	}
	for m := MapM1; m <= MapParity; m++ {
		if m.IsPattern() {
			t.Fatalf("map %d should not be a pattern map", m)
		}
	}
}

func TestPackPatternRoundTrip(t *testing.T) {
	cases := []struct {
		coeff    int32
		pmM, pmO byte
	}{
		{0, 0, 0},
		{1234, 10, 20},
		{-1234, 255, 0},
		{0x3FFF, 1, 1},
		{-0x3FFF, 1, 1},
	}
	for _, c := range cases {
		w := PackPattern(c.coeff, c.pmM, c.pmO)
		if got := w.Coeff(); got != c.coeff {
			t.Errorf("PackPattern(%d,..).Coeff() = %d, want %d", c.coeff, got, c.coeff)
		}
		if got := w.PMMover(); got != c.pmM {
			t.Errorf("PMMover() = %d, want %d", got, c.pmM)
		}
		if got := w.PMOpp(); got != c.pmO {
			t.Errorf("PMOpp() = %d, want %d", got, c.pmO)
		}
	}
}

func TestPackPatternClamp(t *testing.T) {
	cases := []struct {
		in, want int32
	}{
		{0x4000, 0x3FFF},
		{1 << 20, 0x3FFF},
		{-0x4000, -0x3FFF},
		{-(1 << 20), -0x3FFF},
	}
	for _, c := range cases {
		w := PackPattern(c.in, 0, 0)
		if got := w.Coeff(); got != c.want {
			t.Errorf("PackPattern(%d,..).Coeff() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSquareConstantsDistinct(t *testing.T) {
	squares := []uint64{
		A1, B1, C1, D1, E1, F1, G1, H1,
		A8, B8, C8, D8, E8, F8, G8, H8,
	}
	seen := make(map[uint64]bool)
	for _, sq := range squares {
		if seen[sq] {
			t.Fatalf("duplicate square bit %x", sq)
		}
		seen[sq] = true
	}
	if A1 != 1 {
		t.Fatalf("A1 = %x, want 1", A1)
	}
	if H8 != 1<<63 {
		t.Fatalf("H8 = %x, want 1<<63", H8)
	}
}

func TestSquareIndices(t *testing.T) {
	if SA1 != 0 {
		t.Fatalf("SA1 = %d, want 0", SA1)
	}
	if SH8 != 63 {
		t.Fatalf("SH8 = %d, want 63", SH8)
	}
}
