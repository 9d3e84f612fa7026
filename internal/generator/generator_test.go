package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typespeed/internal/wordlist"
)

func poolIndex(pools [][]string, words []string) int {
	for i, pool := range pools {
		set := make(map[string]struct{}, len(pool))
		for _, w := range pool {
			set[w] = struct{}{}
		}
		all := true
		for _, w := range words {
			if _, ok := set[w]; !ok {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

func TestGenerateWordCountAndSinglePool(t *testing.T) {
	pools := wordlist.Builtin()
	gen := NewWithSeed(1)
	for count := 1; count <= DefaultWords; count++ {
		text, err := gen.Generate(pools, count)
		require.NoError(t, err)
		words := strings.Split(text, " ")
		require.Len(t, words, count)
		assert.NotEqual(t, -1, poolIndex(pools, words), "words from more than one pool: %q", text)

		seen := map[string]struct{}{}
		for _, w := range words {
			_, dup := seen[w]
			assert.False(t, dup, "duplicate word %q in %q", w, text)
			seen[w] = struct{}{}
		}
	}
}

func TestGenerateDefaultUsesWholePool(t *testing.T) {
	pools := wordlist.Builtin()
	words, err := NewWithSeed(7).Words(pools, DefaultWords)
	require.NoError(t, err)
	idx := poolIndex(pools, words)
	require.NotEqual(t, -1, idx)
	assert.ElementsMatch(t, pools[idx], words)
}

func TestGenerateDoesNotMutatePools(t *testing.T) {
	pools := [][]string{{"a", "b", "c", "d"}}
	_, err := NewWithSeed(3).Generate(pools, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pools[0])
}

func TestGenerateInvalidArgument(t *testing.T) {
	pools := [][]string{{"a", "b", "c"}, {"d", "e"}}
	gen := NewWithSeed(1)

	_, err := gen.Generate(pools, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Generate(pools, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = gen.Generate(nil, 1)
	assert.ErrorIs(t, err, ErrNoPools)

	text, err := gen.Generate(pools, 2)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(text), 2)
}

func TestGeneratePoolChoiceIsUniform(t *testing.T) {
	pools := wordlist.Builtin()
	gen := NewWithSeed(42)
	const draws = 5000
	counts := make([]int, len(pools))
	for i := 0; i < draws; i++ {
		words, err := gen.Words(pools, 3)
		require.NoError(t, err)
		idx := poolIndex(pools, words)
		require.NotEqual(t, -1, idx)
		counts[idx]++
	}
	// Chi-square with 4 degrees of freedom; 18.47 is the 0.1% critical value.
	expected := float64(draws) / float64(len(pools))
	chi := 0.0
	for _, c := range counts {
		chi += math.Pow(float64(c)-expected, 2) / expected
	}
	assert.Less(t, chi, 18.47, "pool counts %v", counts)
}

func TestShuffleIsUniformOverFirstPosition(t *testing.T) {
	pools := [][]string{{"a", "b", "c", "d"}}
	gen := NewWithSeed(9)
	const draws = 4000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		words, err := gen.Words(pools, 1)
		require.NoError(t, err)
		counts[words[0]]++
	}
	expected := float64(draws) / 4
	chi := 0.0
	for _, w := range pools[0] {
		chi += math.Pow(float64(counts[w])-expected, 2) / expected
	}
	// 3 degrees of freedom, 0.1% critical value.
	assert.Less(t, chi, 16.27, "first-word counts %v", counts)
}
