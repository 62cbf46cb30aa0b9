package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomGraph generates a random undirected graph over n nodes with
// numEdges undirected edges, returned as mirrored parallel edge lists
// (2*numEdges directed entries). Self-loops are excluded; parallel edges may
// occur.
func (r *RNG) GenerateRandomGraph(n, numEdges int) (src, dst []int32) {
	src = make([]int32, 0, 2*numEdges)
	dst = make([]int32, 0, 2*numEdges)

	for i := 0; i < numEdges; i++ {
		u := int32(r.rand.Intn(n))
		v := int32(r.rand.Intn(n))
		if u == v {
			v = (v + 1) % int32(n)
		}

		src = append(src, u, v)
		dst = append(dst, v, u)
	}

	return src, dst
}

// GenerateRandomLabels assigns each of n nodes a class label in [0, numClasses),
// with unlabeledRatio of nodes marked unlabeled (-1).
func (r *RNG) GenerateRandomLabels(n, numClasses int, unlabeledRatio float64) []int32 {
	labels := make([]int32, n)
	for i := range labels {
		if r.rand.Float64() < unlabeledRatio {
			labels[i] = -1
			continue
		}
		labels[i] = int32(r.rand.Intn(numClasses))
	}

	return labels
}
