package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/match"
	"github.com/hupe1980/genebits/testutil"
)

func TestCompute(t *testing.T) {
	seq := testutil.Bits(0, 0, 1, 1, 1, 0, 0, 1, 1, 1)
	a := testutil.Bits(0, 1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0)
	b := testutil.Bits(0, 1, 0, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 1, 0)
	c := testutil.Bits(1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1)
	d := testutil.Bits(0, 1, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 0, 1, 0)

	tests := []struct {
		name string
		a, b *bitseq.Sequence
		want float64
	}{
		{name: "Identical", a: seq, b: seq, want: 100},
		{name: "Against empty", a: seq, b: bitseq.New(0), want: 40},
		{name: "Same length", a: a, b: b, want: 81.25},
		{name: "Shorter first", a: a, b: c, want: 42.105263},
		{name: "Longer first", a: c, b: d, want: 47.368421},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := match.Compute(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestComputeGrowingPrefix(t *testing.T) {
	ones := testutil.Bits(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	bits := make([]int, 20)

	for i := 0; i < 20; i++ {
		assert.InDelta(t, float64(i)*5, match.Score(testutil.Bits(bits[:i+1]...), ones), 1e-9)
		bits[i] = 1
		assert.InDelta(t, float64(i+1)*5, match.Score(testutil.Bits(bits[:i+1]...), ones), 1e-9)
	}
}

func TestScoreProperties(t *testing.T) {
	rng := testutil.NewRNG(21)

	for i := 0; i < 50; i++ {
		a := testutil.MustPack(rng.Nucleotides(1 + rng.Intn(90)))
		b := testutil.MustPack(rng.Nucleotides(1 + rng.Intn(90)))

		assert.Equal(t, 100.0, match.Score(a, a))
		assert.Equal(t, match.Score(a, b), match.Score(b, a))

		s := match.Score(a, b)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestScoreSentinel(t *testing.T) {
	assert.Equal(t, match.Sentinel, match.Score(nil, nil))
	assert.Equal(t, match.Sentinel, match.Score(testutil.MustPack("A"), nil))

	_, err := match.Compute(nil, testutil.MustPack("A"))
	assert.ErrorIs(t, err, bitseq.ErrNullSequence)

	_, err = match.Compute(bitseq.New(0), bitseq.New(0))
	assert.ErrorIs(t, err, match.ErrEmptySequence)
	assert.Equal(t, match.Sentinel, match.Score(bitseq.New(0), bitseq.New(0)))
}
