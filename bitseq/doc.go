// Package bitseq packs nucleotide strings into a dense 2-bit-per-base bit
// array and provides the bit algebra the scanners are built on.
//
// # Layout
//
// A Sequence stores its bits in uint64 words, most significant bit first:
// logical bit p lives in word p/64 at shift 63-p%64 (see Locate). Each base
// occupies two consecutive bits:
//
//	A = 00   G = 01   C = 10   T/U = 11
//
// Ambiguity codes are canonicalized when packing (N,R,M,W,D,V -> A;
// Y,S,B -> C; K,H -> G). Unused trailing bits of the last word are always
// zero, so word-level operations never see garbage.
//
// # Operations
//
//   - Pack / Unpack: text <-> bits (Unpack is lossy: U and ambiguity codes
//     come back as their canonical base)
//   - Bit / SetBit / Window / Base: positional access with bounds checks
//   - Slice / Prefix: independent copies of a bit range
//   - Xor / PopCount / Mask / GCCount: bit algebra
//   - Encode / Decode: compact binary form with optional compression
//
// A Sequence is not safe for concurrent mutation. Read-only use from many
// goroutines is fine.
package bitseq
