package flock

import "github.com/lao-tseu-is-alive/go-boids/pkg/geometry"

// Deltas are the unweighted steering vectors of each agent for one frame.
type Deltas struct {
	Separation []geometry.Vector2D
	Alignment  []geometry.Vector2D
	Cohesion   []geometry.Vector2D
}

func (d *Deltas) resize(n int) {
	if cap(d.Separation) < n {
		d.Separation = make([]geometry.Vector2D, n)
		d.Alignment = make([]geometry.Vector2D, n)
		d.Cohesion = make([]geometry.Vector2D, n)
	}
	d.Separation = d.Separation[:n]
	d.Alignment = d.Alignment[:n]
	d.Cohesion = d.Cohesion[:n]
}

// ComputeDeltas applies the three boids rules to every agent:
//
//   - separation: sum of (p_i - p_j) over the separation set. A sum, not a
//     mean, so the push grows with local crowding.
//   - alignment: mean velocity of the alignment set minus v_i.
//   - cohesion: mean position of the alignment set minus p_i.
//
// An empty alignment set yields zero alignment and cohesion deltas.
func ComputeDeltas(positions, velocities []geometry.Vector2D, nb *Neighbors) *Deltas {
	d := &Deltas{}
	d.compute(positions, velocities, nb)
	return d
}

func (d *Deltas) compute(positions, velocities []geometry.Vector2D, nb *Neighbors) {
	n := len(positions)
	d.resize(n)
	for i := 0; i < n; i++ {
		me := positions[i]

		var separation geometry.Vector2D
		forEach(nb.Separation[i], func(j int) {
			separation = separation.Add(me.Sub(positions[j]))
		})
		d.Separation[i] = separation

		count := nb.AlignmentCounts[i]
		if count == 0 {
			d.Alignment[i] = geometry.Vector2D{}
			d.Cohesion[i] = geometry.Vector2D{}
			continue
		}
		var velSum, posSum geometry.Vector2D
		forEach(nb.Alignment[i], func(j int) {
			velSum = velSum.Add(velocities[j])
			posSum = posSum.Add(positions[j])
		})
		k := float64(count)
		velAvg := geometry.Vector2D{X: velSum.X / k, Y: velSum.Y / k}
		posAvg := geometry.Vector2D{X: posSum.X / k, Y: posSum.Y / k}
		d.Alignment[i] = velAvg.Sub(velocities[i])
		d.Cohesion[i] = posAvg.Sub(me)
	}
}

// ApplyForces adds the weighted deltas to every velocity:
// v += separation*sf + alignment*af + cohesion*cf
//
// A weighted term that is not finite is skipped. Sums over agents near the
// float64 range overflow to Inf, and Inf*0 would turn the velocity into NaN.
func ApplyForces(velocities []geometry.Vector2D, d *Deltas, cfg Config) {
	for i := range velocities {
		steer := weighted(d.Separation[i], cfg.SeparationFactor).
			Add(weighted(d.Alignment[i], cfg.AlignmentFactor)).
			Add(weighted(d.Cohesion[i], cfg.CohesionFactor))
		velocities[i] = velocities[i].Add(steer)
	}
}

func weighted(delta geometry.Vector2D, factor float64) geometry.Vector2D {
	w := delta.Mul(factor)
	if !w.IsFinite() {
		return geometry.Vector2D{}
	}
	return w
}
