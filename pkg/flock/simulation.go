package flock

import (
	"golang.org/x/sync/errgroup"
)

// Simulation is an ordered list of species stepped and drawn together.
// Species never see each other's agents.
type Simulation struct {
	species []*Species

	// MaxParallel bounds how many species are stepped at once. Values below 2
	// step them one after the other, in list order.
	MaxParallel int
}

// NewSimulation returns a simulation holding the given species in order.
func NewSimulation(species ...*Species) *Simulation {
	return &Simulation{species: species}
}

// Add appends a species; it is stepped and drawn after the existing ones.
func (s *Simulation) Add(sp *Species) {
	s.species = append(s.species, sp)
}

// Species returns the species in drawing order.
func (s *Simulation) Species() []*Species {
	return s.species
}

// Count returns the total number of agents across all species.
func (s *Simulation) Count() int {
	total := 0
	for _, sp := range s.species {
		total += sp.Count()
	}
	return total
}

// Step advances every species by one frame with its own config.
//
// Species own disjoint stores so they may be stepped concurrently; the result
// does not depend on MaxParallel. The first error met is returned.
func (s *Simulation) Step() error {
	if s.MaxParallel < 2 || len(s.species) < 2 {
		for _, sp := range s.species {
			if err := sp.Step(); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(s.MaxParallel)
	for _, sp := range s.species {
		g.Go(sp.Step)
	}
	return g.Wait()
}

// Agents returns a copy of every agent, species after species in list order.
func (s *Simulation) Agents() []Agent {
	out := make([]Agent, 0, s.Count())
	for _, sp := range s.species {
		out = sp.store.AppendAgents(out)
	}
	return out
}
