// internal/status/manager.go
package status

import (
	"sort"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
)

// Type names a kind of temporary modifier.
type Type string

const (
	// Supercharge adds BonusLevels to every power of its category.
	Supercharge Type = "supercharge"
	// Haste multiplies player movement speed by 1+Magnitude.
	Haste Type = "haste"
)

// Effect is a temporary modifier held by a Manager.
type Effect struct {
	Type        Type
	Category    defs.Category
	Duration    float64
	Remaining   float64
	BonusLevels int
	Magnitude   float64
	// OnExpire runs once when the effect times out. It is not called when a
	// refresh replaces the effect.
	OnExpire func(Effect)
}

type key struct {
	typ      Type
	category defs.Category
}

// Manager keeps at most one effect per (Type, Category).
type Manager struct {
	effects map[key]*Effect
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{effects: make(map[key]*Effect)}
}

// Add stores e, or refreshes the existing effect with the same key.
// A refresh keeps the longer remaining time and takes the new configuration.
func (m *Manager) Add(e Effect) {
	if e.Duration <= 0 {
		return
	}
	k := key{e.Type, e.Category}
	e.Remaining = e.Duration
	if existing, ok := m.effects[k]; ok && existing.Remaining > e.Remaining {
		e.Remaining = existing.Remaining
	}
	m.effects[k] = &e
}

// Update advances every effect by dt and drops the ones that ran out.
func (m *Manager) Update(dt float64) {
	var expired []Effect
	for k, e := range m.effects {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			delete(m.effects, k)
			if e.OnExpire != nil {
				expired = append(expired, *e)
			}
		}
	}
	// Callbacks run after the sweep so they may call Add safely.
	sortEffects(expired)
	for _, e := range expired {
		e.OnExpire(e)
	}
}

// BonusLevels sums the bonus levels of supercharges matching category.
// A supercharge of CategoryAll matches every category.
func (m *Manager) BonusLevels(category defs.Category) int {
	total := 0
	for k, e := range m.effects {
		if k.typ != Supercharge {
			continue
		}
		if k.category == category || k.category == defs.CategoryAll {
			total += e.BonusLevels
		}
	}
	return total
}

var multiplierOrder = append([]defs.Category{defs.CategoryAll}, defs.Categories...)

// Multiplier returns the product of 1+Magnitude over the effects of type t,
// in a fixed category order.
func (m *Manager) Multiplier(t Type) float64 {
	mult := 1.0
	for _, c := range multiplierOrder {
		if e, ok := m.effects[key{t, c}]; ok {
			mult *= 1 + e.Magnitude
		}
	}
	return mult
}

// Has reports whether an effect with the key is active.
func (m *Manager) Has(t Type, category defs.Category) bool {
	_, ok := m.effects[key{t, category}]
	return ok
}

// Get returns a copy of the effect with the key.
func (m *Manager) Get(t Type, category defs.Category) (Effect, bool) {
	e, ok := m.effects[key{t, category}]
	if !ok {
		return Effect{}, false
	}
	return *e, true
}

// Len returns the number of active effects.
func (m *Manager) Len() int {
	return len(m.effects)
}

// Active returns copies of all effects in a stable order for display.
func (m *Manager) Active() []Effect {
	out := make([]Effect, 0, len(m.effects))
	for _, e := range m.effects {
		out = append(out, *e)
	}
	sortEffects(out)
	return out
}

// Clear drops every effect without firing callbacks.
func (m *Manager) Clear() {
	for k := range m.effects {
		delete(m.effects, k)
	}
}

func sortEffects(list []Effect) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Type != list[j].Type {
			return list[i].Type < list[j].Type
		}
		return list[i].Category < list[j].Category
	})
}
