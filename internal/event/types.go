// internal/event/types.go
package event

import (
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/types"
)

const (
	EnemyKilled      EventType = "EnemyKilled"
	PlayerDamaged    EventType = "PlayerDamaged"
	LevelUp          EventType = "LevelUp"
	CrystalCollected EventType = "CrystalCollected"
	GameOver         EventType = "GameOver"
	ChampionFused    EventType = "ChampionFused"
	PowerCast        EventType = "PowerCast"
)

// AllTypes lists every event type, for subscribers that want everything.
var AllTypes = []EventType{
	EnemyKilled, PlayerDamaged, LevelUp, CrystalCollected, GameOver, ChampionFused, PowerCast,
}

// EnemyKilledData is sent once per kill.
type EnemyKilledData struct {
	EnemyID types.EntityID
	Kind    defs.EnemyKind
	X, Y    float64
	XP      int
	Source  string
	Crystal defs.Category
	// DropChance is the chance the enemy leaves a crystal.
	DropChance float64
}

// PlayerDamagedData carries the health before and after the hit.
type PlayerDamagedData struct {
	Amount       float64
	HealthBefore float64
	HealthAfter  float64
	Source       string
}

// LevelUpData is sent once per level gained.
type LevelUpData struct {
	Level int
}

// CrystalCollectedData is sent when the player picks up a crystal.
type CrystalCollectedData struct {
	CrystalID types.EntityID
	Category  defs.Category
	Total     int
}

// GameOverData summarises the run.
type GameOverData struct {
	Time  float64
	Level int
	Kills int
}

// ChampionFusedData is sent when orbiting enemies fuse.
type ChampionFusedData struct {
	ChampionID types.EntityID
	CrystalID  types.EntityID
	Fused      int
	X, Y       float64
}

// PowerCastData is sent for every active power cast.
type PowerCastData struct {
	PowerID string
	Level   int
}
