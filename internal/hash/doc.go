// Package hash provides the checksums used by the sequence encoding.
//
// All checksums are CRC32-Castagnoli, which the standard library computes
// with hardware support on amd64 (SSE4.2) and arm64 (CRC extension).
package hash
