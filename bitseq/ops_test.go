package bitseq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/testutil"
)

func TestXor(t *testing.T) {
	tests := []struct {
		name string
		a, b *bitseq.Sequence
		want []int
	}{
		{
			name: "Equal length",
			a:    testutil.Bits(1, 0, 1, 1),
			b:    testutil.Bits(1, 1, 0, 1),
			want: []int{0, 1, 1, 0},
		},
		{
			name: "Shorter right operand is right-aligned",
			a:    testutil.Bits(1, 1, 1, 1, 1),
			b:    testutil.Bits(1, 0),
			want: []int{1, 1, 1, 0, 1},
		},
		{
			name: "Shorter left operand is right-aligned",
			a:    testutil.Bits(0, 1),
			b:    testutil.Bits(0, 0, 0, 0, 1),
			want: []int{0, 0, 0, 0, 0},
		},
		{
			name: "Empty operand",
			a:    testutil.Bits(1, 0, 1),
			b:    bitseq.New(0),
			want: []int{1, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bitseq.Xor(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bitsOf(t, got))
		})
	}
}

func TestXorMatchesBitwiseReference(t *testing.T) {
	rng := testutil.NewRNG(99)

	for i := 0; i < 100; i++ {
		a := testutil.MustPack(rng.Nucleotides(rng.Intn(150)))
		b := testutil.MustPack(rng.Nucleotides(rng.Intn(150)))
		if i%10 == 0 {
			// Odd bit lengths exercise unaligned offsets.
			var err error
			a, err = a.Prefix(a.Len() / 3)
			require.NoError(t, err)
		}

		got, err := bitseq.Xor(a, b)
		require.NoError(t, err)

		ab, bb := bitsOf(t, a), bitsOf(t, b)
		n := max(len(ab), len(bb))
		want := make([]int, n)
		for j := range want {
			var x, y int
			if k := j - (n - len(ab)); k >= 0 {
				x = ab[k]
			}
			if k := j - (n - len(bb)); k >= 0 {
				y = bb[k]
			}
			want[j] = x ^ y
		}
		assert.Equal(t, want, bitsOf(t, got))

		swapped, err := bitseq.Xor(b, a)
		require.NoError(t, err)
		assert.True(t, got.Equal(swapped))
	}
}

func TestXorNull(t *testing.T) {
	_, err := bitseq.Xor(nil, bitseq.New(4))
	assert.ErrorIs(t, err, bitseq.ErrNullSequence)
	_, err = bitseq.Xor(bitseq.New(4), nil)
	assert.ErrorIs(t, err, bitseq.ErrNullSequence)
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, bitseq.PopCount(nil))
	assert.Equal(t, 0, bitseq.PopCount(bitseq.New(0)))
	assert.Equal(t, 6, bitseq.PopCount(testutil.Bits(0, 0, 1, 1, 1, 0, 0, 1, 1, 1)))
	assert.Equal(t, 200, bitseq.PopCount(testutil.MustPack(strings.Repeat("T", 100))))
}

func TestMask(t *testing.T) {
	const w = uint64(0xF0F0_0000_0000_00A5)

	tests := []struct {
		name        string
		start, size uint
		want        uint64
	}{
		{name: "Zero size", start: 5, size: 0, want: 0},
		{name: "Leading nibble", start: 0, size: 4, want: 0xF},
		{name: "Second nibble", start: 4, size: 4, want: 0x0},
		{name: "Trailing byte", start: 56, size: 8, want: 0xA5},
		{name: "Ends at word boundary", start: 62, size: 2, want: 0b01},
		{name: "Whole word", start: 0, size: 64, want: w},
		{name: "Clamped", start: 60, size: 10, want: 0x5},
		{name: "Start past word", start: 64, size: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bitseq.Mask(w, tt.start, tt.size))
		})
	}
}

func TestGCCount(t *testing.T) {
	assert.Equal(t, 0, bitseq.GCCount(nil))
	assert.Equal(t, 4, bitseq.GCCount(testutil.MustPack("ACGTGC")))
	// The trailing half base is not counted.
	assert.Equal(t, 1, bitseq.GCCount(testutil.Bits(1, 0, 1)))

	rng := testutil.NewRNG(3)
	for _, n := range []int{31, 32, 33, 500} {
		letters := rng.Nucleotides(n)
		want := strings.Count(letters, "G") + strings.Count(letters, "C")
		assert.Equal(t, want, bitseq.GCCount(testutil.MustPack(letters)), "n=%d", n)
	}
}
