package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New[uint](3, 1)
	s.Add(3)
	s.Add(2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(7))
	assert.Equal(t, []uint{1, 2, 3}, s.Sorted())
}

func TestSet_Empty(t *testing.T) {
	s := New[uint]()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted())
}
