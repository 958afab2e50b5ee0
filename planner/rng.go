package planner

import (
	"hash/fnv"
	"math/rand"
)

// === Subsystem Constants ===

const (
	// SubsystemCenterChoice drives which regional center each object clusters around.
	SubsystemCenterChoice = "placement-center"

	// SubsystemJitter drives the Gaussian offset of each object from its center.
	SubsystemJitter = "placement-jitter"
)

// === PartitionedRNG ===

// PartitionedRNG hands out deterministic, isolated random streams per subsystem.
//
// Each subsystem seed is masterSeed XOR fnv1a64(subsystemName), so drawing
// more values from one stream never shifts another. Two generators built from
// the same seed return identical sequences for every subsystem.
//
// Not safe for concurrent use; each scenario builds its own.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name return the same *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
