package analysis

import (
	"math"
	"testing"
)

func TestPhyschemAlphabet(t *testing.T) {
	got := Physchem("ACDEFGHIKLMNPQRSTVWY")
	if got.HydrophobicPercent != 50.0 {
		t.Errorf("hydrophobic = %v, want 50.0", got.HydrophobicPercent)
	}
	// R, K, and H (fractional but positive) count as positive; D and E negative.
	if got.PositiveCount != 3 || got.NegativeCount != 2 {
		t.Errorf("charge counts = +%d/-%d, want +3/-2", got.PositiveCount, got.NegativeCount)
	}
	if got.NetCharge != 1 {
		t.Errorf("net charge = %d, want 1", got.NetCharge)
	}
	if got.IsoelectricPoint != 7.5 {
		t.Errorf("pI = %v, want 7.5", got.IsoelectricPoint)
	}
	if got.Aromaticity != 15.0 {
		t.Errorf("aromaticity = %v, want 15.0", got.Aromaticity)
	}
}

func TestPhyschemHistidineCounts(t *testing.T) {
	got := Physchem("HHHH")
	if got.PositiveCount != 4 || got.NegativeCount != 0 || got.NetCharge != 4 {
		t.Fatalf("histidine run: %+v", got)
	}
	if got.IsoelectricPoint != 9.0 {
		t.Fatalf("pI = %v, want 9.0", got.IsoelectricPoint)
	}
}

func TestPhyschemAcidic(t *testing.T) {
	got := Physchem("DDEE")
	if got.NetCharge != -4 {
		t.Fatalf("net charge = %d, want -4", got.NetCharge)
	}
	if math.Abs(got.IsoelectricPoint-5.0) > 1e-9 {
		t.Fatalf("pI = %v, want 5.0", got.IsoelectricPoint)
	}
	if got.Aromaticity != 0 {
		t.Fatalf("aromaticity = %v, want 0", got.Aromaticity)
	}
}
