// internal/defs/types.go
package defs

// Category is the elemental theme shared by powers, crystals and supercharges.
type Category string

const (
	CategoryHeat    Category = "heat"
	CategoryFrost   Category = "frost"
	CategoryPsyche  Category = "psyche"
	CategoryKinetic Category = "kinetic"
	// CategoryAll matches every category when summing supercharge bonuses.
	CategoryAll Category = "all"
)

// Categories lists the concrete categories in display order.
var Categories = []Category{CategoryHeat, CategoryFrost, CategoryPsyche, CategoryKinetic}

// Valid reports whether c is a concrete category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHeat, CategoryFrost, CategoryPsyche, CategoryKinetic:
		return true
	}
	return false
}

// EnemyKind tags the enemy variant. Behaviour differences are data plus one
// movement function per kind.
type EnemyKind string

const (
	EnemySmall         EnemyKind = "small"
	EnemyMedium        EnemyKind = "medium"
	EnemyLarge         EnemyKind = "large"
	EnemyBuilder       EnemyKind = "builder"
	EnemyFighter       EnemyKind = "fighter"
	EnemyFiery         EnemyKind = "fiery"
	EnemyGravitational EnemyKind = "gravitational"
	EnemyFastPurple    EnemyKind = "fast_purple"
	EnemyChampion      EnemyKind = "champion"
	EnemyTower         EnemyKind = "tower"
)

// EnemyKinds lists every kind the library must define.
var EnemyKinds = []EnemyKind{
	EnemySmall, EnemyMedium, EnemyLarge, EnemyBuilder, EnemyFighter,
	EnemyFiery, EnemyGravitational, EnemyFastPurple, EnemyChampion, EnemyTower,
}

// IsLegacy reports whether k is one of the plain small/medium/large chasers.
func (k EnemyKind) IsLegacy() bool {
	return k == EnemySmall || k == EnemyMedium || k == EnemyLarge
}

// PowerKind selects which effect a power spawns.
type PowerKind string

const (
	PowerProjectile PowerKind = "projectile"
	PowerRing       PowerKind = "ring"
	PowerArea       PowerKind = "area"
	PowerCrucible   PowerKind = "crucible"
	PowerBeam       PowerKind = "beam"
	PowerShield     PowerKind = "shield"
	PowerPassive    PowerKind = "passive"
)
