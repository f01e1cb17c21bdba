package entity

import (
	"testing"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
)

func TestNewEntityIsUnique(t *testing.T) {
	w := NewWorld(nil)
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		id := uint64(w.NewEntity())
		if id == 0 || seen[id] {
			t.Fatalf("bad or repeated id %d", id)
		}
		seen[id] = true
	}
}

func TestFilterCompactsInPlace(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	backing := items
	got := Filter(items, func(v int) bool { return v%2 == 0 })
	if len(got) != 3 || got[0] != 2 || got[2] != 6 {
		t.Fatalf("Filter = %v", got)
	}
	if backing[3] != 0 || backing[5] != 0 {
		t.Errorf("tail not zeroed: %v", backing)
	}
	if again := Filter(got, func(v int) bool { return v%2 == 0 }); len(again) != 3 {
		t.Errorf("second Filter changed length to %d", len(again))
	}
}

func TestCrystalLifecycle(t *testing.T) {
	w := NewWorld(component.NewPlayer(config.DefaultSettings().Player))
	a := w.AddCrystal(defs.CategoryHeat, 1, 2)
	b := w.AddCrystal(defs.CategoryFrost, 3, 4)
	if w.Crystal(a.ID) != a {
		t.Fatal("lookup failed")
	}
	a.Collected = true
	b.Consumed = true
	if w.Crystal(a.ID) != nil {
		t.Error("collected crystal still found")
	}
	w.RemoveGoneCrystals()
	if len(w.Crystals) != 0 {
		t.Errorf("crystals left: %d", len(w.Crystals))
	}
}
