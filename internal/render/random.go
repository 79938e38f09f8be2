package render

import (
	"math/rand/v2"

	"gridmapper/internal/gridmap"
)

// Independent generator streams per cell, so adding randomness to one
// layer never shifts the texture of another.
const (
	floorStream uint64 = iota + 1
	objectStream
)

// CellHash mixes a coordinate into a 32-bit seed.
func CellHash(c gridmap.Coord) uint32 {
	h := uint32(c.X)
	h = h*31 + uint32(c.Y)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func cellRand(c gridmap.Coord, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(CellHash(c)), stream))
}

// randomUnit returns a value in [-1, 1).
func randomUnit(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}
