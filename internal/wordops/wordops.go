package wordops

import "math/bits"

// Kernel function pointers. Generic implementations are the default;
// initCapabilities swaps in the unrolled versions when they pay off.
var (
	kernelXorWords      = xorWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
)

// XorWords performs dst[i] ^= src[i] for i < min(len(dst), len(src)).
func XorWords(dst, src []uint64) {
	n := min(len(dst), len(src))
	kernelXorWords(dst[:n], src[:n])
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

func xorWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}

func xorWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func popcountWordsUnrolled(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
