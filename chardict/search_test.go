package chardict

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSearch(t *testing.T) {
	assert := assert.New(t)

	s := []byte{1, 3, 4, 5}
	var i uint64
	var ok bool
	i, ok = search(s, 2)
	assert.False(ok)
	assert.Equal(uint64(1), i)

	i, ok = search(s, 1)
	assert.Equal(uint64(0), i)
	assert.True(ok)

	i, ok = search(s, 5)
	assert.Equal(uint64(3), i)
	assert.True(ok)

	i, ok = search(s, 6)
	assert.False(ok)
	assert.Equal(uint64(4), i)

	i, ok = search(s, 0)
	assert.False(ok)
	assert.Equal(uint64(0), i)
}

func TestSearchEmpty(t *testing.T) {
	i, ok := search(nil, 'a')
	assert.False(t, ok)
	assert.Equal(t, uint64(0), i)
}

func TestSearchProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		s := rapid.SliceOfNDistinct(rapid.Byte(), 0, 64, rapid.ID[byte]).Draw(t, "s")
		slices.Sort(s)
		needle := rapid.Byte().Draw(t, "needle")

		i, ok := search(s, needle)
		// the standard library agrees on both the index and the outcome
		expectedI, expectedOk := slices.BinarySearch(s, needle)
		assert.Equal(expectedOk, ok)
		assert.Equal(uint64(expectedI), i)
	})
}
