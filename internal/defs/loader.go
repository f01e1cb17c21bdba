// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/enemies.yaml
var defaultEnemiesYAML []byte

//go:embed defaults/powers.yaml
var defaultPowersYAML []byte

//go:embed defaults/spawns.yaml
var defaultSpawnsYAML []byte

var (
	ErrUnknownEnemy      = errors.New("unknown enemy kind")
	ErrUnknownPower      = errors.New("unknown power")
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Library is the immutable set of definitions a run is built from.
type Library struct {
	enemies map[EnemyKind]EnemyDefinition
	powers  map[string]PowerDefinition
	spawns  []SpawnPhase
}

// Default returns the embedded library.
func Default() (*Library, error) {
	return Parse(defaultEnemiesYAML, defaultPowersYAML, defaultSpawnsYAML)
}

// Load reads enemies.yaml, powers.yaml and spawns.yaml from dir. Files missing
// from dir fall back to the embedded defaults; an empty dir means all defaults.
func Load(dir string) (*Library, error) {
	if dir == "" {
		return Default()
	}
	read := func(name string, fallback []byte) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("definition file missing, using built-in", "file", name, "dir", dir)
			return fallback, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return data, nil
	}
	enemies, err := read("enemies.yaml", defaultEnemiesYAML)
	if err != nil {
		return nil, err
	}
	powers, err := read("powers.yaml", defaultPowersYAML)
	if err != nil {
		return nil, err
	}
	spawns, err := read("spawns.yaml", defaultSpawnsYAML)
	if err != nil {
		return nil, err
	}
	return Parse(enemies, powers, spawns)
}

// Parse decodes and validates the three definition documents.
func Parse(enemiesYAML, powersYAML, spawnsYAML []byte) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(enemiesYAML, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	var powerDefs []PowerDefinition
	if err := yaml.Unmarshal(powersYAML, &powerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal power definitions: %w", err)
	}
	var spawnPhases []SpawnPhase
	if err := yaml.Unmarshal(spawnsYAML, &spawnPhases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spawn tables: %w", err)
	}

	lib := &Library{
		enemies: make(map[EnemyKind]EnemyDefinition, len(enemyDefs)),
		powers:  make(map[string]PowerDefinition, len(powerDefs)),
	}
	for _, def := range enemyDefs {
		if err := validateEnemy(def); err != nil {
			return nil, err
		}
		lib.enemies[def.Kind] = def
	}
	for _, kind := range EnemyKinds {
		if _, ok := lib.enemies[kind]; !ok {
			return nil, fmt.Errorf("%w: no definition for enemy kind %q", ErrInvalidDefinition, kind)
		}
	}
	for _, def := range powerDefs {
		if err := validatePower(def); err != nil {
			return nil, err
		}
		if _, dup := lib.powers[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate power %q", ErrInvalidDefinition, def.ID)
		}
		lib.powers[def.ID] = def
	}

	sort.SliceStable(spawnPhases, func(i, j int) bool {
		return spawnPhases[i].FromMinute < spawnPhases[j].FromMinute
	})
	for _, phase := range spawnPhases {
		total := 0
		for _, e := range phase.Entries {
			if _, ok := lib.enemies[e.Kind]; !ok {
				return nil, fmt.Errorf("spawn table at minute %v: %w %q", phase.FromMinute, ErrUnknownEnemy, e.Kind)
			}
			total += e.Weight
		}
		if total <= 0 {
			return nil, fmt.Errorf("%w: spawn table at minute %v has no weight", ErrInvalidDefinition, phase.FromMinute)
		}
	}
	if len(spawnPhases) == 0 {
		return nil, fmt.Errorf("%w: no spawn tables", ErrInvalidDefinition)
	}
	lib.spawns = spawnPhases
	return lib, nil
}

func knownKind(kind EnemyKind) bool {
	for _, k := range EnemyKinds {
		if kind == k {
			return true
		}
	}
	return false
}

func validateEnemy(def EnemyDefinition) error {
	switch {
	case !knownKind(def.Kind):
		return fmt.Errorf("%w %q", ErrUnknownEnemy, def.Kind)
	case def.Health <= 0:
		return fmt.Errorf("%w: enemy %q health must be positive", ErrInvalidDefinition, def.Kind)
	case def.Radius < 0 || def.Speed < 0 || def.Damage < 0:
		return fmt.Errorf("%w: enemy %q has negative stats", ErrInvalidDefinition, def.Kind)
	case def.DropChance < 0 || def.DropChance > 1:
		return fmt.Errorf("%w: enemy %q drop_chance outside [0,1]", ErrInvalidDefinition, def.Kind)
	case def.Crystal != "" && !def.Crystal.Valid():
		return fmt.Errorf("%w: enemy %q drops unknown crystal %q", ErrInvalidDefinition, def.Kind, def.Crystal)
	case def.Kind == EnemyTower && def.Behavior.SpawnInterval <= 0:
		return fmt.Errorf("%w: tower spawn_interval must be positive", ErrInvalidDefinition)
	case def.Kind == EnemyTower && !knownKind(def.Behavior.SpawnKind):
		return fmt.Errorf("tower spawn_kind: %w %q", ErrUnknownEnemy, def.Behavior.SpawnKind)
	case def.Kind == EnemyBuilder && def.Behavior.BuildTime <= 0:
		return fmt.Errorf("%w: builder build_time must be positive", ErrInvalidDefinition)
	case def.Kind == EnemyFiery && def.Behavior.TrailInterval <= 0:
		return fmt.Errorf("%w: fiery trail_interval must be positive", ErrInvalidDefinition)
	}
	return nil
}

func validatePower(def PowerDefinition) error {
	switch {
	case def.ID == "":
		return fmt.Errorf("%w: power without id", ErrInvalidDefinition)
	case !def.Category.Valid():
		return fmt.Errorf("%w: power %q has unknown category %q", ErrInvalidDefinition, def.ID, def.Category)
	case def.MaxLevel < 1:
		return fmt.Errorf("%w: power %q max_level must be >= 1", ErrInvalidDefinition, def.ID)
	case def.Passive != (def.Kind == PowerPassive):
		return fmt.Errorf("%w: power %q passive flag disagrees with kind %q", ErrInvalidDefinition, def.ID, def.Kind)
	case !def.Passive && def.BaseCooldown <= 0:
		return fmt.Errorf("%w: power %q base_cooldown must be positive", ErrInvalidDefinition, def.ID)
	case def.Base.Radius < 0:
		return fmt.Errorf("%w: power %q radius must not be negative", ErrInvalidDefinition, def.ID)
	}
	switch def.Kind {
	case PowerRing, PowerArea, PowerCrucible, PowerBeam, PowerShield, PowerProjectile:
		if def.Base.Duration <= 0 {
			return fmt.Errorf("%w: power %q duration must be positive", ErrInvalidDefinition, def.ID)
		}
	case PowerPassive:
	default:
		return fmt.Errorf("%w: power %q has unknown kind %q", ErrInvalidDefinition, def.ID, def.Kind)
	}
	return nil
}

// Enemy returns the definition for kind.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, error) {
	def, ok := l.enemies[kind]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w %q", ErrUnknownEnemy, kind)
	}
	return def, nil
}

// Power returns the definition for id.
func (l *Library) Power(id string) (PowerDefinition, error) {
	def, ok := l.powers[id]
	if !ok {
		return PowerDefinition{}, fmt.Errorf("%w %q", ErrUnknownPower, id)
	}
	return def, nil
}

// Powers returns every power definition sorted by ID.
func (l *Library) Powers() []PowerDefinition {
	out := make([]PowerDefinition, 0, len(l.powers))
	for _, def := range l.powers {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LargestRadius returns the largest enemy radius in the library.
func (l *Library) LargestRadius() float64 {
	largest := 0.0
	for _, def := range l.enemies {
		if def.Radius > largest {
			largest = def.Radius
		}
	}
	return largest
}

// SpawnPhase returns the spawn table active at the given run time in seconds.
func (l *Library) SpawnPhase(elapsed float64) SpawnPhase {
	minute := elapsed / 60
	current := l.spawns[0]
	for _, phase := range l.spawns {
		if phase.FromMinute <= minute {
			current = phase
		}
	}
	return current
}
