package utils

import (
	"math"
	"testing"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
)

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", a.Seed())
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table chose %q", got)
	}

	only := []defs.SpawnEntry{{Kind: defs.EnemySmall, Weight: 0}, {Kind: defs.EnemyLarge, Weight: 5}}
	for i := 0; i < 50; i++ {
		if got := rng.ChooseWeighted(only); got != defs.EnemyLarge {
			t.Fatalf("zero-weight entry chosen: %q", got)
		}
	}

	counts := map[defs.EnemyKind]int{}
	table := []defs.SpawnEntry{{Kind: defs.EnemySmall, Weight: 3}, {Kind: defs.EnemyMedium, Weight: 1}}
	for i := 0; i < 4000; i++ {
		counts[rng.ChooseWeighted(table)]++
	}
	if counts[defs.EnemySmall] < 2700 || counts[defs.EnemySmall] > 3300 {
		t.Errorf("weights not respected: %v", counts)
	}
}

func TestRangeAndAngle(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 200; i++ {
		if v := rng.Range(-2, 5); v < -2 || v >= 5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if a := rng.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of bounds: %v", a)
		}
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestLerp(t *testing.T) {
	if Lerp(2, 4, 0.25) != 2.5 {
		t.Error("Lerp(2,4,0.25) != 2.5")
	}
}
