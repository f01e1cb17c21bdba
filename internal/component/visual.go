package component

// DamageFlash marks that an entity should be drawn in the hurt colour.
type DamageFlash struct {
	Timer    float64 // time left on the flash
	Duration float64 // full length of the flash
}

// Trigger restarts the flash.
func (f *DamageFlash) Trigger(duration float64) {
	f.Timer = duration
	f.Duration = duration
}

// Update counts the flash down.
func (f *DamageFlash) Update(dt float64) {
	if f.Timer > 0 {
		f.Timer -= dt
		if f.Timer < 0 {
			f.Timer = 0
		}
	}
}

// Active reports whether the flash is showing.
func (f DamageFlash) Active() bool {
	return f.Timer > 0
}
