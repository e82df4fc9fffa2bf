package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   int64
	}{
		{"single element", []int64{7}, 7},
		{"exact mean", []int64{2, 4, 6}, 4},
		{"truncates remainder", []int64{1, 2}, 1},
		{"ascending zero to four", []int64{0, 1, 2, 3, 4}, 2},
		{"all zeros", []int64{0, 0, 0}, 0},
		{"negative values", []int64{-3, -4}, -3},
		{"mixed signs truncate toward zero", []int64{-1, -1, 1}, 0},
		{"negative quotient toward zero", []int64{-7, 2}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageEmpty(t *testing.T) {
	got, err := Average(nil)
	require.Error(t, err)
	assert.Equal(t, int64(0), got)
	assert.True(t, IsEmptySequence(err))

	_, err = Average([]int64{})
	require.Error(t, err)
	assert.True(t, IsEmptySequence(err))
}

func TestAverageWideAccumulator(t *testing.T) {
	// Sums well past int32 must not wrap.
	values := make([]int64, 1000)
	for i := range values {
		values[i] = math.MaxInt32
	}

	got, err := Average(values)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32), got)
}

func TestAverageOfGenerated(t *testing.T) {
	gen := New(DefaultSeed)

	seq, err := gen.Generate(5)
	require.NoError(t, err)

	avg, err := Average(seq)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, avg, int64(0))
	assert.Less(t, avg, int64(5))

	// Fixed seed: repeating the whole pipeline yields the same mean.
	seq2, err := gen.Generate(5)
	require.NoError(t, err)
	avg2, err := Average(seq2)
	require.NoError(t, err)
	assert.Equal(t, avg, avg2)
}
