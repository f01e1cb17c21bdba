// internal/types/types.go
package types

// EntityID identifies any simulated object. Zero means "no entity".
type EntityID uint64
