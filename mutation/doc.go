// Package mutation flags GC-rich runs as mutation candidates.
//
// A run is a maximal stretch of consecutive C or G bases. Runs whose length
// in bits reaches a fifth of the sequence length are reported.
//
// Scan keeps the historical arithmetic: a region's End is the bit before
// the terminating A/T base and its Size is one less than the run length.
// ScanCorrected reports the run length itself as Size.
package mutation
