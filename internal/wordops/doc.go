// Package wordops provides word-level kernels over []uint64 bit arrays.
//
// The kernels back the XOR and population-count operations of package bitseq.
// Two implementations exist:
//
//   - generic: one word per iteration
//   - unrolled: four words per iteration, selected when the CPU reports a
//     hardware population-count instruction (POPCNT on x86-64, ASIMD CNT on
//     ARM64)
//
// The selection happens once at package init. Set GENEBITS_KERNEL to
// "generic" or "unrolled" to force a specific implementation.
package wordops
