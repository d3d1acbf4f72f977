// Package testutil provides testing utilities for genebits.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	s := rng.Nucleotides(1000)          // A, C, G, T only
//	s = rng.Letters(1000)               // full alphabet incl. U and ambiguity codes
//	s = rng.GCRun(100, 40, 12)          // AT background with a GC run
//
// # Bit Fixtures
//
//	seq := testutil.Bits(0, 0, 1, 1, 0, 1) // AUG
package testutil
