// FILE: generator.go
// Package feature — fixed-schema feature generators (spec §4.2).
//
// Each Generator declares an ordered, immutable list of feature names and a
// pure Compute over the shared types.State bag. Generators never mutate
// shared state and carry no rolling buffers of their own: the caller
// (typically a StateBuilder) hands in the histories via types.State slices,
// and each generator clamps them to the tails it needs (tail.go).
//
// Grounded on the teacher's BuildExtendedFeatures (_examples/chidi150c-coinbase
// strategy.go): a pure function building a fixed-order []float64 row from a
// candle history, generalized here from one ad hoc feature row into four
// independently addressable generators with a declared name table, per
// DESIGN NOTES §9's "replace runtime polymorphism of generators with a
// capability/interface abstraction".
package feature

import "quantcore/internal/types"

// Generator declares a fixed ordered name list and a pure compute function.
type Generator interface {
	// Names returns the generator's ordered, immutable feature names.
	Names() []string
	// Compute derives this generator's slice of the feature vector from
	// state. The returned slice always has len(Names()) entries.
	Compute(s *types.State) types.FeatureVector
}
