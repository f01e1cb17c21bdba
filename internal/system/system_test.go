package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/component"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/config"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/defs"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/entity"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/event"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/status"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/internal/utils"
	"github.com/Ninjef/aiGeneratedActionRPG-sub000/pkg/spatial"
)

type harness struct {
	lib        *defs.Library
	settings   config.Settings
	world      *entity.World
	enemies    *EnemyManager
	grid       *EnemyGrid
	dispatcher *event.Dispatcher
	recorder   *event.Recorder
	rng        *utils.PRNGService
	spawner    *Spawner
	combat     *CombatSystem
	powers     *PowerManager
	players    *PlayerSystem
	crystals   *CrystalSystem
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	lib, err := defs.Default()
	require.NoError(t, err)
	h := &harness{
		lib:        lib,
		settings:   config.DefaultSettings(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
	}
	h.world = entity.NewWorld(component.NewPlayer(h.settings.Player))
	h.enemies = NewEnemyManager(h.rng)
	h.grid = spatial.NewGrid[*component.Enemy](config.SpatialCellSize)
	h.recorder = event.NewRecorder(h.dispatcher)
	h.spawner = NewSpawner(lib, h.world, h.enemies)
	h.combat = NewCombatSystem(h.world, h.enemies, h.grid, h.dispatcher, h.rng, lib.LargestRadius())
	h.powers = NewPowerManager(lib, h.world, h.enemies, h.dispatcher, h.rng)
	h.players = NewPlayerSystem(h.world, h.dispatcher)
	h.crystals = NewCrystalSystem(h.world, h.dispatcher, h.rng, h.settings.Crystals)
	return h
}

func (h *harness) spawn(t *testing.T, kind defs.EnemyKind, x, y float64) *component.Enemy {
	t.Helper()
	e, err := h.spawner.Spawn(kind, x, y)
	require.NoError(t, err, "Spawn(%s)", kind)
	return e
}

func (h *harness) countKind(kind defs.EnemyKind) int {
	n := 0
	h.enemies.Each(func(e *component.Enemy) {
		if !e.Dead && e.Kind == kind {
			n++
		}
	})
	return n
}

func effectCount(w *entity.World) int {
	return len(w.Projectiles) + len(w.Areas) + len(w.Rings) + len(w.Crucibles) + len(w.Beams) + len(w.Shields)
}

// ripeOrbiters spawns enough small enemies around crystal, each already
// circling it for the full fuse time.
func (h *harness) ripeOrbiters(t *testing.T, crystal *component.Crystal, x, y float64) []*component.Enemy {
	t.Helper()
	cfg := h.settings.Champions
	var out []*component.Enemy
	for i := 0; i < cfg.FuseCount; i++ {
		e := h.spawn(t, defs.EnemySmall, x+float64(i), y)
		e.Behavior.OrbitCrystal = crystal.ID
		e.Behavior.OrbitTime = cfg.FuseTime
		out = append(out, e)
	}
	return out
}

func TestRemoveDeadEnemiesIdempotent(t *testing.T) {
	h := newHarness(t)
	a := h.spawn(t, defs.EnemySmall, 10, 0)
	h.spawn(t, defs.EnemyChampion, 20, 0)
	h.spawn(t, defs.EnemyTower, 30, 0)
	h.enemies.MarkDead(a)

	require.Equal(t, 1, h.enemies.RemoveDeadEnemies())
	count := h.enemies.Count()
	assert.Zero(t, h.enemies.RemoveDeadEnemies(), "second pass removed more")
	assert.Equal(t, count, h.enemies.Count())
}

func TestDamageEnemyAwardsKillOnce(t *testing.T) {
	h := newHarness(t)
	e := h.spawn(t, defs.EnemyMedium, 0, 0)
	xp := e.XP

	require.False(t, h.combat.DamageEnemy(e, 5, SourceProjectile), "non-lethal hit reported a kill")
	require.True(t, h.combat.DamageEnemy(e, 1000, SourceProjectile), "lethal hit not reported")
	require.True(t, e.Dead, "enemy not flagged dead immediately")
	assert.False(t, h.combat.DamageEnemy(e, 1000, SourceRing), "second lethal hit reported another kill")

	assert.Equal(t, 1, h.recorder.Counts[event.EnemyKilled])
	assert.Equal(t, xp, h.world.Player.XP)
	assert.Equal(t, 1, h.world.Kills)
}

func TestKillsAcrossSourcesInOneFrame(t *testing.T) {
	h := newHarness(t)
	e := h.spawn(t, defs.EnemySmall, 0, 0)
	e.ApplyBurningPanic(5, h.rng)
	e.Health = 0.1

	h.combat.DamageEnemy(e, 50, SourceShield)
	h.combat.ApplyBurning(0.1, 100)
	assert.Equal(t, 1, h.recorder.Counts[event.EnemyKilled])
}

func TestBurningDamageKillsPanickingEnemies(t *testing.T) {
	h := newHarness(t)
	burning := h.spawn(t, defs.EnemySmall, 0, 0)
	calm := h.spawn(t, defs.EnemySmall, 50, 0)
	burning.ApplyBurningPanic(5, h.rng)

	h.combat.ApplyBurning(1, burning.MaxHealth+1)
	assert.True(t, burning.Dead, "burning enemy survived lethal burn")
	assert.Equal(t, calm.MaxHealth, calm.Health, "calm enemy took burning damage")
}

func TestNearestSkipsTowersAndDead(t *testing.T) {
	h := newHarness(t)
	h.spawn(t, defs.EnemyTower, 1, 0)
	dead := h.spawn(t, defs.EnemySmall, 2, 0)
	dead.Dead = true
	champ := h.spawn(t, defs.EnemyChampion, 50, 0)
	small := h.spawn(t, defs.EnemySmall, 80, 0)

	assert.Same(t, champ, h.enemies.Nearest(0, 0, nil))
	notChamp := func(e *component.Enemy) bool { return e != champ }
	assert.Same(t, small, h.enemies.Nearest(0, 0, notChamp))
	assert.Nil(t, h.enemies.Nearest(0, 0, func(*component.Enemy) bool { return false }))
}

func TestDespawnFarEnemies(t *testing.T) {
	h := newHarness(t)
	h.spawn(t, defs.EnemySmall, 10, 0)
	far := h.spawn(t, defs.EnemySmall, 5000, 0)
	anchor := h.spawn(t, defs.EnemySmall, 0, 6000)
	anchor.CryostasisInvulnerable = true

	assert.Equal(t, 1, h.enemies.DespawnFarEnemies(0, 0, 1000))
	assert.True(t, far.Dead)
	assert.Equal(t, 2, h.enemies.Count())
	assert.Zero(t, h.recorder.Counts[event.EnemyKilled], "despawn counted as a kill")
}

func TestGridQueriesMatchBruteForce(t *testing.T) {
	h := newHarness(t)
	var all []*component.Enemy
	for i := 0; i < 200; i++ {
		all = append(all, h.spawn(t, defs.EnemySmall, h.rng.Range(-500, 500), h.rng.Range(-500, 500)))
	}
	h.enemies.PopulateSpatialGrid(h.grid)
	require.Equal(t, 200, h.grid.Len())

	for i := 0; i < 50; i++ {
		x, y := h.rng.Range(-500, 500), h.rng.Range(-500, 500)
		got := h.grid.Nearby(x, y)
		for _, e := range spatial.NearbyBrute(all, x, y, config.SpatialCellSize) {
			require.Contains(t, got, e, "grid missed enemy %d near (%v,%v)", e.ID, x, y)
		}
	}
}

func TestCheckPlayerCollisions(t *testing.T) {
	h := newHarness(t)
	h.spawn(t, defs.EnemySmall, 5, 0)
	h.spawn(t, defs.EnemyTower, -10, 0) // no contact damage
	h.spawn(t, defs.EnemySmall, 500, 0)

	h.combat.ResolvePlayerCollisions()
	require.Equal(t, 1, h.recorder.Counts[event.PlayerDamaged], "i-frames block the rest")
	data := h.recorder.Last[event.PlayerDamaged].Data.(event.PlayerDamagedData)
	assert.Equal(t, data.Amount, data.HealthBefore-data.HealthAfter)
}

func TestEnemyUpdateChasesTarget(t *testing.T) {
	h := newHarness(t)
	e := h.spawn(t, defs.EnemyMedium, 100, 0)
	h.enemies.Update(0.1, 0, 0, &EnemyContext{Player: h.world.Player})
	assert.InDelta(t, 100-e.BaseSpeed*0.1, e.X, 1e-9)
}

func TestFieryTrailWhileImmobilized(t *testing.T) {
	h := newHarness(t)
	e := h.spawn(t, defs.EnemyFiery, 100, 0)
	e.ApplyImmobilize(10)
	trails := 0
	for i := 0; i < 20; i++ {
		trails += len(h.enemies.Update(0.1, 0, 0, nil).Trails)
	}
	assert.Equal(t, 100.0, e.X, "immobilized enemy moved")
	assert.Positive(t, trails, "fiery enemy stopped trailing while immobilized")
}

func TestBuilderBecomesTower(t *testing.T) {
	h := newHarness(t)
	builder := h.spawn(t, defs.EnemyBuilder, 100, 0)
	waves := NewWaveSystem(h.lib, h.world, h.enemies, h.spawner, h.rng, h.settings.Spawning)
	for i := 0; i < 100 && !builder.Dead; i++ {
		waves.HandleRequests(h.enemies.Update(0.1, 0, 0, nil))
	}
	require.True(t, builder.Dead, "builder never finished building")

	h.enemies.RemoveDeadEnemies()
	assert.Equal(t, 1, h.countKind(defs.EnemyTower))
	assert.Zero(t, h.recorder.Counts[event.EnemyKilled], "building counted as a kill")
}

func TestTowerSpawnsOnInterval(t *testing.T) {
	h := newHarness(t)
	tower := h.spawn(t, defs.EnemyTower, 0, 0)
	spawns := 0
	for i := 0; i < int(tower.Params.SpawnInterval*10)+1; i++ {
		spawns += len(h.enemies.Update(0.1, 500, 500, nil).Spawns)
	}
	assert.Equal(t, 1, spawns)
	assert.Zero(t, tower.X, "tower moved")
	assert.Zero(t, tower.Y, "tower moved")
}

func TestGravitationalPullsPlayer(t *testing.T) {
	h := newHarness(t)
	h.spawn(t, defs.EnemyGravitational, 100, 0)
	p := h.world.Player
	h.enemies.Update(0.1, p.X, p.Y, &EnemyContext{Player: p})
	assert.Positive(t, p.PullX, "expected pull toward the enemy")
}

func TestCrucibleCastSpawnsOneEffect(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("crucible", 6)
	h.spawn(t, defs.EnemySmall, 100, 0)

	cast, err := h.powers.CastPower("crucible")
	require.NoError(t, err)
	require.True(t, cast)
	assert.Len(t, h.world.Crucibles, 1)
	assert.Equal(t, 1, effectCount(h.world), "other effects spawned")
}

func TestCastPowerUnknown(t *testing.T) {
	h := newHarness(t)
	_, err := h.powers.CastPower("meteor")
	require.Error(t, err, "unknown power")
	_, err = h.powers.CastPower("fireball")
	assert.Error(t, err, "power not held")
}

func TestProjectileFallsBackToRandomAngle(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("fireball", 8)
	cast, err := h.powers.CastPower("fireball")
	require.NoError(t, err)
	require.True(t, cast, "cast with no enemies")
	require.Len(t, h.world.Projectiles, 1)

	p := h.world.Projectiles[0]
	assert.False(t, math.IsNaN(p.VX) || math.IsNaN(p.VY))
	assert.Positive(t, math.Hypot(p.VX, p.VY))
}

func TestProjectileAimsAtNearest(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("fireball", 8)
	h.spawn(t, defs.EnemySmall, 0, 300)
	h.spawn(t, defs.EnemySmall, 0, -900)
	_, err := h.powers.CastPower("fireball")
	require.NoError(t, err)

	p := h.world.Projectiles[0]
	assert.Positive(t, p.VY)
	assert.InDelta(t, 0, p.VX, 1e-6)
}

func TestCryostasisWithoutTargetStaysReady(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("cryostasis", 6)
	h.powers.Update(0.1)
	require.Empty(t, h.world.Beams, "beam cast without a target")
	assert.Zero(t, h.powers.RemainingCooldown("cryostasis"), "cooldown started without a cast")

	h.spawn(t, defs.EnemySmall, 50, 0)
	h.powers.Update(0.1)
	require.Len(t, h.world.Beams, 1, "beam not cast once a target appeared")
	assert.Positive(t, h.powers.RemainingCooldown("cryostasis"))
}

func TestCooldownFormula(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.GrantPower("fireball", 8)
	def, err := h.lib.Power("fireball")
	require.NoError(t, err)

	base, err := h.powers.CurrentCooldown("fireball")
	require.NoError(t, err)
	assert.InDelta(t, def.BaseCooldown, base, 1e-9, "level 1 cooldown")

	p.Effects.Add(status.Effect{Type: status.Supercharge, Category: defs.CategoryHeat, Duration: 5, BonusLevels: 2})
	assert.Equal(t, 3, h.powers.EffectiveLevel(def))

	p.PassiveUpgrades[defs.CategoryHeat] = 2
	got, _ := h.powers.CurrentCooldown("fireball")
	assert.InDelta(t, def.BaseCooldown*math.Pow(def.LevelScale.Cooldown, 2)*(1-0.16), got, 1e-9)

	p.PassiveUpgrades[defs.CategoryHeat] = 100
	got, _ = h.powers.CurrentCooldown("fireball")
	assert.InDelta(t, def.BaseCooldown*math.Pow(def.LevelScale.Cooldown, 2)*(1-MaxPassiveCooldownCut), got, 1e-9, "capped cooldown")
}

func TestPowerUpdateCastsOnCooldown(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("frost_nova", 6)
	def, _ := h.lib.Power("frost_nova")

	h.powers.Update(0.01)
	require.Len(t, h.world.Rings, 1)

	steps := int(def.BaseCooldown/0.1) - 1
	for i := 0; i < steps; i++ {
		h.powers.Update(0.1)
	}
	assert.Len(t, h.world.Rings, 1, "cast again before cooldown")
	h.powers.Update(0.2)
	assert.Len(t, h.world.Rings, 2)
	assert.Equal(t, 2, h.recorder.Counts[event.PowerCast])
}

func TestShieldCapAndSpacing(t *testing.T) {
	h := newHarness(t)
	h.world.Player.GrantPower("orbital_shield", 6)
	def, _ := h.lib.Power("orbital_shield")
	maxShields := def.Stats(1).IntCount()

	for i := 0; i < maxShields+3; i++ {
		h.powers.CastPower("orbital_shield")
	}
	require.Len(t, h.world.Shields, maxShields)

	gap := math.Abs(h.world.Shields[1].Angle - h.world.Shields[0].Angle)
	want := 2 * math.Pi / float64(maxShields)
	if math.Abs(gap-want) > 1e-9 && math.Abs(gap-(2*math.Pi-want)) > 1e-9 {
		t.Errorf("shield gap = %v, expected %v", gap, want)
	}
}

func TestPassivePowers(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	p.GrantPower("stone_skin", 5)
	p.GrantPower("swiftness", 5)
	h.powers.Update(0.1)

	skin, _ := h.lib.Power("stone_skin")
	assert.InDelta(t, skin.Base.Value, p.DamageReduction, 1e-9)
	assert.Positive(t, p.SpeedBonus)
	assert.Zero(t, effectCount(h.world), "passives spawned effects")
}

func TestPlayerSystemLevelUpEvents(t *testing.T) {
	h := newHarness(t)
	need := h.world.Player.XPToNextLevel
	h.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{XP: need}})
	require.Equal(t, 2, h.world.Player.Level)
	assert.Equal(t, 1, h.recorder.Counts[event.LevelUp])
}

// dropCrystals dispatches n kills that each drop a crystal of category at (5, 0).
func (h *harness) dropCrystals(n int, category defs.Category) {
	for i := 0; i < n; i++ {
		h.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
			X: 5, Y: 0, Crystal: category, DropChance: 1,
		}})
	}
}

func TestCrystalDropPickupAndSupercharge(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	per := h.settings.Crystals.PerSupercharge

	h.dropCrystals(per, defs.CategoryFrost)
	require.Len(t, h.world.Crystals, per)

	h.crystals.Update(0.1)
	assert.Empty(t, h.world.Crystals, "crystals left after pickup")
	assert.Equal(t, per, p.Crystals[defs.CategoryFrost])
	assert.True(t, p.Effects.Has(status.Supercharge, defs.CategoryFrost), "supercharge not granted")
	assert.False(t, p.Effects.Has(status.Haste, defs.CategoryFrost), "frost supercharge granted haste")
	assert.Equal(t, per, h.recorder.Counts[event.CrystalCollected])
}

func TestKineticSuperchargeGrantsHaste(t *testing.T) {
	h := newHarness(t)
	p := h.world.Player
	before := p.Speed()

	h.dropCrystals(h.settings.Crystals.PerSupercharge, defs.CategoryKinetic)
	h.crystals.Update(0.1)
	require.True(t, p.Effects.Has(status.Haste, defs.CategoryKinetic))
	assert.InDelta(t, before*(1+h.settings.Crystals.HasteMagnitude), p.Speed(), 1e-9)

	p.Effects.Update(h.settings.Crystals.SuperchargeDuration)
	assert.InDelta(t, before, p.Speed(), 1e-9, "haste outlived the supercharge")
}

func TestCrystalMagnet(t *testing.T) {
	h := newHarness(t)
	c := h.world.AddCrystal(defs.CategoryHeat, 100, 0)
	h.crystals.Update(0.1)
	assert.Less(t, c.X, 100.0, "crystal in magnet range did not move")

	far := h.world.AddCrystal(defs.CategoryHeat, 1000, 0)
	h.crystals.Update(0.1)
	assert.Equal(t, 1000.0, far.X, "crystal outside magnet range moved")
}

func TestChampionFusion(t *testing.T) {
	h := newHarness(t)
	champions := NewChampionSystem(h.world, h.enemies, h.spawner, h.dispatcher, h.settings.Champions)
	crystal := h.world.AddCrystal(defs.CategoryPsyche, 2000, 2000)
	orbiters := h.ripeOrbiters(t, crystal, 2000, 2000)

	champions.Update()
	for _, e := range orbiters {
		require.True(t, e.Dead, "orbiter survived fusion")
	}
	assert.True(t, crystal.Consumed)
	require.Equal(t, 1, h.countKind(defs.EnemyChampion))
	assert.Equal(t, 1, h.recorder.Counts[event.ChampionFused])
	assert.Zero(t, h.recorder.Counts[event.EnemyKilled])
}

func TestChampionNeedsEnoughOrbiters(t *testing.T) {
	h := newHarness(t)
	cfg := h.settings.Champions
	champions := NewChampionSystem(h.world, h.enemies, h.spawner, h.dispatcher, cfg)
	crystal := h.world.AddCrystal(defs.CategoryPsyche, 0, 0)
	for i := 0; i < cfg.FuseCount-1; i++ {
		e := h.spawn(t, defs.EnemySmall, 10, 0)
		e.Behavior.OrbitCrystal = crystal.ID
		e.Behavior.OrbitTime = cfg.FuseTime * 2
	}
	champions.Update()
	assert.Zero(t, h.countKind(defs.EnemyChampion))
	assert.False(t, crystal.Consumed, "fused with too few orbiters")
}

func TestChampionSkipsUnfitOrbiters(t *testing.T) {
	tests := []struct {
		name  string
		setup func(orbiters []*component.Enemy)
	}{
		{"frozen", func(orbiters []*component.Enemy) { orbiters[0].ApplyPermanentFreeze() }},
		{"anchor", func(orbiters []*component.Enemy) { orbiters[0].CryostasisInvulnerable = true }},
		{"out of reach", func(orbiters []*component.Enemy) { orbiters[0].X, orbiters[0].Y = 600, 600 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			champions := NewChampionSystem(h.world, h.enemies, h.spawner, h.dispatcher, h.settings.Champions)
			crystal := h.world.AddCrystal(defs.CategoryPsyche, 0, 0)
			tc.setup(h.ripeOrbiters(t, crystal, 10, 0))

			champions.Update()
			assert.Zero(t, h.countKind(defs.EnemyChampion))
			assert.False(t, crystal.Consumed)
		})
	}
}

func TestFrozenOrbitersDropTheirOrbit(t *testing.T) {
	h := newHarness(t)
	champions := NewChampionSystem(h.world, h.enemies, h.spawner, h.dispatcher, h.settings.Champions)
	crystal := h.world.AddCrystal(defs.CategoryHeat, 0, 0)
	ctx := &EnemyContext{Player: h.world.Player, Crystals: h.world.Crystals, OrbitRadius: h.settings.Champions.OrbitRadius}

	var orbiters []*component.Enemy
	for i := 0; i < h.settings.Champions.FuseCount; i++ {
		orbiters = append(orbiters, h.spawn(t, defs.EnemySmall, 60+float64(i), 0))
	}
	for i := 0; i < 50; i++ {
		h.enemies.Update(0.1, 5000, 5000, ctx)
	}
	for _, e := range orbiters {
		require.Equal(t, crystal.ID, e.Behavior.OrbitCrystal)
		require.GreaterOrEqual(t, e.Behavior.OrbitTime, h.settings.Champions.FuseTime)
	}

	for _, e := range orbiters {
		e.ApplyPermanentFreeze()
		e.X, e.Y = 600, 600
	}
	for i := 0; i < 60; i++ {
		h.enemies.Update(0.1, 5000, 5000, ctx)
	}
	for _, e := range orbiters {
		assert.Zero(t, e.Behavior.OrbitCrystal)
		assert.Zero(t, e.Behavior.OrbitTime)
	}

	champions.Update()
	assert.Zero(t, h.countKind(defs.EnemyChampion), "frozen enemies fused")
	assert.False(t, crystal.Consumed)
}

func TestSmallEnemiesOrbitCrystals(t *testing.T) {
	h := newHarness(t)
	crystal := h.world.AddCrystal(defs.CategoryHeat, 0, 0)
	e := h.spawn(t, defs.EnemySmall, 60, 0)
	ctx := &EnemyContext{Player: h.world.Player, Crystals: h.world.Crystals, OrbitRadius: h.settings.Champions.OrbitRadius}
	for i := 0; i < 20; i++ {
		h.enemies.Update(0.1, 5000, 5000, ctx)
	}
	require.Equal(t, crystal.ID, e.Behavior.OrbitCrystal, "enemy not orbiting crystal")
	assert.Positive(t, e.Behavior.OrbitTime, "orbit time not accumulating")
}

func TestWaveSystemSpawnsAndCaps(t *testing.T) {
	h := newHarness(t)
	cfg := h.settings.Spawning
	cfg.MaxEnemies = 5
	waves := NewWaveSystem(h.lib, h.world, h.enemies, h.spawner, h.rng, cfg)

	waves.Update(cfg.InitialInterval)
	require.Equal(t, cfg.BatchSize, h.enemies.Count(), "one batch")
	for i := 0; i < 50; i++ {
		waves.Update(cfg.InitialInterval)
	}
	assert.LessOrEqual(t, h.enemies.Count(), cfg.MaxEnemies+cfg.BatchSize)

	h.world.GameTime = 3600
	assert.Equal(t, cfg.MinInterval, waves.SpawnInterval(), "late interval floor")
}
