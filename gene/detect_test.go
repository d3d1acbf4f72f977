package gene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genebits/bitseq"
	"github.com/hupe1980/genebits/gene"
	"github.com/hupe1980/genebits/testutil"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		seq   *bitseq.Sequence
		start []int
		stop  []int
	}{
		{
			name:  "Single gene",
			seq:   testutil.Bits(0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0),
			start: []int{6},
			stop:  []int{28},
		},
		{
			name:  "Latest start wins",
			seq:   testutil.Bits(1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1),
			start: []int{30},
			stop:  []int{48},
		},
		{
			name:  "First stop closes",
			seq:   testutil.Bits(1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1),
			start: []int{10},
			stop:  []int{26},
		},
		{
			name: "No gene",
			seq:  testutil.Bits(1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0),
		},
		{
			name:  "Two genes",
			seq:   testutil.Bits(1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
			start: []int{6, 36},
			stop:  []int{24, 48},
		},
		{
			name: "Open gene is dropped",
			seq:  testutil.MustPack("CCATGAAAAAA"),
		},
		{
			name: "Stop without start",
			seq:  testutil.MustPack("TAATAGTGA"),
		},
		{
			name: "Shorter than a codon",
			seq:  testutil.MustPack("AT"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := gene.NewMap(0)
			require.NoError(t, gene.Detect(tt.seq, m))
			require.Equal(t, len(tt.start), m.Len())

			for i := range tt.start {
				r := m.At(i)
				assert.Equal(t, tt.start[i], r.Start)
				assert.Equal(t, tt.stop[i], r.StopCodon())
				assert.Equal(t, tt.stop[i]+5, r.End)
			}
		})
	}
}

func TestDetectFromLetters(t *testing.T) {
	// Off-frame start: AUG begins at base 1.
	seq := testutil.MustPack("CATGGCCTAGCC")

	m := gene.NewMap(4)
	require.NoError(t, gene.Detect(seq, m))
	require.Equal(t, 1, m.Len())
	assert.Equal(t, gene.Region{Start: 2, End: 19}, m.At(0))
	assert.Equal(t, 18, m.At(0).Len())
}

func TestDetectResetsMap(t *testing.T) {
	m := gene.NewMap(4)
	require.NoError(t, gene.Detect(testutil.MustPack("ATGTAAATGTAA"), m))
	assert.Equal(t, 2, m.Len())

	require.NoError(t, gene.Detect(testutil.MustPack("ATGCCC"), m))
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Regions())
}

func TestDetectCapacity(t *testing.T) {
	m := gene.NewMap(2)
	assert.Equal(t, 2, m.Cap())

	err := gene.Detect(testutil.MustPack("ATGTAAATGTAGATGTGA"), m)
	require.ErrorIs(t, err, gene.ErrTooManyGenes)
	assert.Equal(t, []gene.Region{{Start: 0, End: 11}, {Start: 12, End: 23}}, m.Regions())

	assert.Equal(t, gene.DefaultCapacity, gene.NewMap(-1).Cap())
}

func TestDetectInvalidInput(t *testing.T) {
	assert.ErrorIs(t, gene.Detect(nil, gene.NewMap(1)), bitseq.ErrNullSequence)
	assert.ErrorIs(t, gene.Detect(testutil.MustPack("ATG"), nil), gene.ErrNilMap)
}

func TestCoverage(t *testing.T) {
	m := gene.NewMap(0)
	require.NoError(t, gene.Detect(testutil.MustPack("CCATGTAACCCATGCCCTGACC"), m))
	require.Equal(t, []gene.Region{{Start: 4, End: 15}, {Start: 22, End: 39}}, m.Regions())

	rb, err := m.Coverage()
	require.NoError(t, err)
	assert.Equal(t, uint64(6+9), rb.GetCardinality())
	assert.True(t, rb.Contains(2))
	assert.True(t, rb.Contains(7))
	assert.False(t, rb.Contains(8))
	assert.True(t, rb.Contains(11))
	assert.True(t, rb.Contains(19))
	assert.False(t, rb.Contains(20))

	for pos, want := range map[int]bool{0: false, 3: false, 4: true, 15: true, 16: false, 21: false, 22: true, 30: true, 39: true, 40: false} {
		assert.Equal(t, want, m.Covers(pos), "bit %d", pos)
	}
}

func TestRegionsIsCopy(t *testing.T) {
	m := gene.NewMap(0)
	require.NoError(t, gene.Detect(testutil.MustPack("ATGTAA"), m))

	regions := m.Regions()
	regions[0].Start = 99
	assert.Equal(t, 0, m.At(0).Start)
}
