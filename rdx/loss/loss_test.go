package loss

import "testing"

func TestNeverDropsAtZero(t *testing.T) {
	inj := New(0, 1)
	for i := 0; i < 1000; i++ {
		if inj.ShouldDrop() {
			t.Fatalf("rate 0 must never drop")
		}
	}
}

func TestAlwaysDropsAtOne(t *testing.T) {
	inj := New(1, 1)
	for i := 0; i < 1000; i++ {
		if !inj.ShouldDrop() {
			t.Fatalf("rate 1 must always drop")
		}
	}
}

func TestDeterministicGivenSeed(t *testing.T) {
	a := New(0.5, 42)
	b := New(0.5, 42)
	for i := 0; i < 500; i++ {
		if a.ShouldDrop() != b.ShouldDrop() {
			t.Fatalf("two injectors with the same seed diverged at draw %d", i)
		}
	}
}

func TestRateClamped(t *testing.T) {
	if New(-1, 1).Rate() != 0 {
		t.Fatalf("negative rate should clamp to 0")
	}
	if New(2, 1).Rate() != 1 {
		t.Fatalf("rate above 1 should clamp to 1")
	}
}
