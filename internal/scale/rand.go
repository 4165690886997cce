package scale

import (
	"math"
	"math/rand"
)

// Per-subsystem seed offsets. Every generator derives its RNG from the single
// top-level seed plus its own offset, so steps can be skipped or rerun
// without disturbing each other's streams.
const (
	SeedOffsetPHD       = 0
	SeedOffsetSRT       = 100
	SeedOffsetFeather   = 200
	SeedOffsetFairtable = 300
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randInt draws uniformly from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// clampGauss draws from N(mu, sigma) clamped to [lo, hi].
func clampGauss(rng *rand.Rand, mu, sigma, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, rng.NormFloat64()*sigma+mu))
}

func choice[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// sample picks n distinct elements without replacement via partial
// Fisher-Yates. The input slice is not modified.
func sample[T any](rng *rand.Rand, pool []T, n int) []T {
	if n > len(pool) {
		n = len(pool)
	}
	work := make([]T, len(pool))
	copy(work, pool)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n]
}

// weightedChoice picks an index proportional to the given weights.
func weightedChoice(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

func roundTo(x float64, places int) float64 {
	pow := math.Pow10(places)
	return math.Round(x*pow) / pow
}

// roundToStep rounds x to the nearest multiple of step (1000 for contract
// budgets, 100 for project budgets).
func roundToStep(x, step float64) float64 {
	return math.Round(x/step) * step
}
