// Package conv provides checked integer conversions.
//
// Bit offsets and lengths are plain ints throughout genebits. They are
// narrowed here when they cross into fixed-width formats: uint32 values of
// roaring bitmaps, block headers and the uint64 length field of an encoded
// sequence.
package conv
