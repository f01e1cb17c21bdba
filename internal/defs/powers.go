package defs

import "math"

// PowerDefinition describes a castable or passive power.
type PowerDefinition struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Category     Category   `yaml:"category"`
	Kind         PowerKind  `yaml:"kind"`
	Passive      bool       `yaml:"passive"`
	BaseCooldown float64    `yaml:"base_cooldown"`
	Cost         int        `yaml:"cost"`
	MaxLevel     int        `yaml:"max_level"`
	Base         PowerStats `yaml:"base"`
	LevelScale   PowerScale `yaml:"level_scale"`
}

// PowerStats are the level-1 numbers of a power. Not every power uses every field.
type PowerStats struct {
	Damage       float64 `yaml:"damage"`
	Radius       float64 `yaml:"radius"`
	Count        float64 `yaml:"count"`
	Duration     float64 `yaml:"duration"`
	Speed        float64 `yaml:"speed"`
	Knockback    float64 `yaml:"knockback"`
	Slow         float64 `yaml:"slow"`
	SlowDuration float64 `yaml:"slow_duration"`
	Pull         float64 `yaml:"pull"`
	Interval     float64 `yaml:"interval"`
	Value        float64 `yaml:"value"`
	Pierce       bool    `yaml:"pierce"`
}

// PowerScale holds per-level growth factors: stat = base * factor^(level-1).
// A zero factor means the stat does not scale.
type PowerScale struct {
	Cooldown float64 `yaml:"cooldown"`
	Damage   float64 `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	Count    float64 `yaml:"count"`
	Duration float64 `yaml:"duration"`
	Value    float64 `yaml:"value"`
}

func grow(base, factor float64, level int) float64 {
	if factor == 0 || level <= 1 {
		return base
	}
	return base * math.Pow(factor, float64(level-1))
}

// Cooldown returns the cooldown at the given effective level, before passive reductions.
func (d PowerDefinition) Cooldown(level int) float64 {
	return grow(d.BaseCooldown, d.LevelScale.Cooldown, level)
}

// Stats returns the power's numbers at the given effective level.
func (d PowerDefinition) Stats(level int) PowerStats {
	s := d.Base
	s.Damage = grow(d.Base.Damage, d.LevelScale.Damage, level)
	s.Radius = grow(d.Base.Radius, d.LevelScale.Radius, level)
	s.Count = grow(d.Base.Count, d.LevelScale.Count, level)
	s.Duration = grow(d.Base.Duration, d.LevelScale.Duration, level)
	s.Value = grow(d.Base.Value, d.LevelScale.Value, level)
	return s
}

// IntCount returns Count floored, never below 1.
func (s PowerStats) IntCount() int {
	n := int(math.Floor(s.Count))
	if n < 1 {
		return 1
	}
	return n
}
