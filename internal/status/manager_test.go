package status

import (
	"math"
	"testing"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
)

func TestAddRefreshKeepsLongerRemaining(t *testing.T) {
	m := NewManager()
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryHeat, Duration: 5, BonusLevels: 1})
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryHeat, Duration: 3, BonusLevels: 1})

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, expected a single effect", m.Len())
	}
	e, ok := m.Get(Supercharge, defs.CategoryHeat)
	if !ok {
		t.Fatal("effect missing")
	}
	if e.Remaining != 5 {
		t.Errorf("Remaining = %v, expected 5", e.Remaining)
	}
}

func TestAddRefreshExtendsAndOverwritesConfig(t *testing.T) {
	m := NewManager()
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryFrost, Duration: 2, BonusLevels: 1})
	m.Update(1.5)
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryFrost, Duration: 4, BonusLevels: 3})

	e, _ := m.Get(Supercharge, defs.CategoryFrost)
	if e.Remaining != 4 {
		t.Errorf("Remaining = %v, expected 4", e.Remaining)
	}
	if got := m.BonusLevels(defs.CategoryFrost); got != 3 {
		t.Errorf("BonusLevels = %d, expected the overwritten 3", got)
	}
}

func TestUpdateExpiresAndFiresCallback(t *testing.T) {
	m := NewManager()
	var fired []defs.Category
	onExpire := func(e Effect) { fired = append(fired, e.Category) }
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryHeat, Duration: 1, OnExpire: onExpire})
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryPsyche, Duration: 3, OnExpire: onExpire})

	m.Update(0.5)
	if len(fired) != 0 {
		t.Fatalf("callback fired early: %v", fired)
	}
	m.Update(0.5)
	if len(fired) != 1 || fired[0] != defs.CategoryHeat {
		t.Fatalf("fired = %v, expected [heat]", fired)
	}
	if m.Has(Supercharge, defs.CategoryHeat) {
		t.Error("expired effect still present")
	}
	if !m.Has(Supercharge, defs.CategoryPsyche) {
		t.Error("unexpired effect removed")
	}
}

func TestBonusLevels(t *testing.T) {
	m := NewManager()
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryHeat, Duration: 5, BonusLevels: 2})
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryAll, Duration: 5, BonusLevels: 1})
	m.Add(Effect{Type: Haste, Category: defs.CategoryHeat, Duration: 5, BonusLevels: 9})

	tests := []struct {
		category defs.Category
		want     int
	}{
		{defs.CategoryHeat, 3},
		{defs.CategoryFrost, 1},
		{defs.CategoryKinetic, 1},
	}
	for _, tc := range tests {
		t.Run(string(tc.category), func(t *testing.T) {
			if got := m.BonusLevels(tc.category); got != tc.want {
				t.Errorf("BonusLevels(%s) = %d, expected %d", tc.category, got, tc.want)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	m := NewManager()
	if got := m.Multiplier(Haste); got != 1 {
		t.Fatalf("Multiplier with no effects = %v, expected 1", got)
	}
	m.Add(Effect{Type: Haste, Category: defs.CategoryKinetic, Duration: 5, Magnitude: 0.25})
	m.Add(Effect{Type: Haste, Category: defs.CategoryAll, Duration: 5, Magnitude: 0.5})
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryKinetic, Duration: 5, Magnitude: 9})

	if got := m.Multiplier(Haste); math.Abs(got-1.875) > 1e-12 {
		t.Errorf("Multiplier(Haste) = %v, expected 1.875", got)
	}
}

func TestAddIgnoresNonPositiveDuration(t *testing.T) {
	m := NewManager()
	m.Add(Effect{Type: Haste, Duration: 0})
	if m.Len() != 0 {
		t.Errorf("zero-duration effect stored")
	}
}

func TestActiveSorted(t *testing.T) {
	m := NewManager()
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryPsyche, Duration: 1})
	m.Add(Effect{Type: Haste, Category: defs.CategoryKinetic, Duration: 1})
	m.Add(Effect{Type: Supercharge, Category: defs.CategoryFrost, Duration: 1})

	got := m.Active()
	if len(got) != 3 {
		t.Fatalf("Active() returned %d effects", len(got))
	}
	if got[0].Type != Haste || got[1].Category != defs.CategoryFrost || got[2].Category != defs.CategoryPsyche {
		t.Errorf("Active() order = %+v", got)
	}
}
