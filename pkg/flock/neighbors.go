package flock

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// DistanceMatrix is the dense NxN matrix of euclidean distances between agents,
// stored row major. It is symmetric with a zero diagonal.
type DistanceMatrix struct {
	N int
	d []float64
}

// At returns the distance between agents i and j.
func (m *DistanceMatrix) At(i, j int) float64 {
	return m.d[i*m.N+j]
}

// Row returns the distances from agent i to every agent. The slice aliases the matrix.
func (m *DistanceMatrix) Row(i int) []float64 {
	return m.d[i*m.N : (i+1)*m.N]
}

// ComputeDistances returns the all-pairs distance matrix of positions.
func ComputeDistances(positions []geometry.Vector2D) *DistanceMatrix {
	m := &DistanceMatrix{}
	m.compute(positions)
	return m
}

// compute fills m for positions, reusing the backing array when it is large enough.
// Only the upper triangle is computed, the lower one is mirrored.
func (m *DistanceMatrix) compute(positions []geometry.Vector2D) {
	n := len(positions)
	m.N = n
	if cap(m.d) < n*n {
		m.d = make([]float64, n*n)
	} else {
		m.d = m.d[:n*n]
	}
	for i := 0; i < n; i++ {
		m.d[i*n+i] = 0
		for j := i + 1; j < n; j++ {
			dist := positions[i].DistanceTo(positions[j])
			m.d[i*n+j] = dist
			m.d[j*n+i] = dist
		}
	}
}

// Neighbors holds, per agent, the membership masks of its separation set
// (distance < separation distance) and alignment set (distance < alignment
// distance), and the size of each set.
//
// An agent is always a member of its own sets since its self distance is 0.
type Neighbors struct {
	Separation       []*bitset.BitSet
	Alignment        []*bitset.BitSet
	SeparationCounts []int
	AlignmentCounts  []int
}

// Len returns the number of agents described.
func (nb *Neighbors) Len() int {
	return len(nb.SeparationCounts)
}

// FindNeighbors derives the separation and alignment sets from a distance matrix.
// Both thresholds are strict.
func FindNeighbors(m *DistanceMatrix, separationDistance, alignmentDistance float64) *Neighbors {
	nb := &Neighbors{}
	nb.compute(m, separationDistance, alignmentDistance)
	return nb
}

func (nb *Neighbors) compute(m *DistanceMatrix, separationDistance, alignmentDistance float64) {
	n := m.N
	nb.resize(n)
	for i := 0; i < n; i++ {
		sep, ali := nb.Separation[i], nb.Alignment[i]
		sep.ClearAll()
		ali.ClearAll()
		for j, d := range m.Row(i) {
			if d < separationDistance {
				sep.Set(uint(j))
			}
			if d < alignmentDistance {
				ali.Set(uint(j))
			}
		}
		nb.SeparationCounts[i] = int(sep.Count())
		nb.AlignmentCounts[i] = int(ali.Count())
	}
}

// resize grows the per agent buffers to n agents. Existing bitsets are kept
// and widened, agents never disappear so shrinking is not needed.
func (nb *Neighbors) resize(n int) {
	for i := range nb.Separation {
		if nb.Separation[i].Len() < uint(n) {
			nb.Separation[i] = bitset.New(uint(n))
			nb.Alignment[i] = bitset.New(uint(n))
		}
	}
	for len(nb.Separation) < n {
		nb.Separation = append(nb.Separation, bitset.New(uint(n)))
		nb.Alignment = append(nb.Alignment, bitset.New(uint(n)))
	}
	nb.Separation = nb.Separation[:n]
	nb.Alignment = nb.Alignment[:n]
	if cap(nb.SeparationCounts) < n {
		nb.SeparationCounts = make([]int, n)
		nb.AlignmentCounts = make([]int, n)
	}
	nb.SeparationCounts = nb.SeparationCounts[:n]
	nb.AlignmentCounts = nb.AlignmentCounts[:n]
}

// NeighborField computes the distance matrix and the neighbor sets of a
// population frame after frame, keeping its buffers between frames.
// The search is all-pairs, O(N²) in time and memory.
type NeighborField struct {
	distances DistanceMatrix
	neighbors Neighbors
}

// Update recomputes distances and neighbor sets for positions. The returned
// values alias the field's buffers and stay valid until the next Update.
func (f *NeighborField) Update(positions []geometry.Vector2D, separationDistance, alignmentDistance float64) (*DistanceMatrix, *Neighbors) {
	f.distances.compute(positions)
	f.neighbors.compute(&f.distances, separationDistance, alignmentDistance)
	return &f.distances, &f.neighbors
}

// Neighbors returns the sets computed by the last Update.
func (f *NeighborField) Neighbors() *Neighbors {
	return &f.neighbors
}

// forEach calls fn with every member index of set, in increasing order.
func forEach(set *bitset.BitSet, fn func(j int)) {
	for j, ok := set.NextSet(0); ok; j, ok = set.NextSet(j + 1) {
		fn(int(j))
	}
}
