package defs

// SpawnEntry is one weighted row of a spawn table.
type SpawnEntry struct {
	Kind   EnemyKind `yaml:"kind"`
	Weight int       `yaml:"weight"`
}

// SpawnPhase is the spawn table in effect from FromMinute until the next phase.
type SpawnPhase struct {
	FromMinute float64      `yaml:"from_minute"`
	Entries    []SpawnEntry `yaml:"entries"`
}
