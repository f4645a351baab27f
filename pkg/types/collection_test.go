package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkSumAndDefault runs the shared contract against a fresh record.
func checkSumAndDefault(t *testing.T, c ItemCollection) {
	t.Helper()

	assert.True(t, IsDefault(c), "fresh record should be default")
	assert.Equal(t, 0.0, Sum(c))

	c.Set(First, 10.0)
	c.Set(Second, 20.0)
	c.Set(Third, 30.0)

	assert.False(t, IsDefault(c), "record with values should not be default")
	assert.Equal(t, 60.0, Sum(c))
}

func TestSumAndDefault(t *testing.T) {
	t.Run("tuple", func(t *testing.T) { checkSumAndDefault(t, NewTuple()) })
	t.Run("array", func(t *testing.T) { checkSumAndDefault(t, NewArray()) })
	t.Run("tuple zero value", func(t *testing.T) { checkSumAndDefault(t, &Tuple{}) })
	t.Run("array zero value", func(t *testing.T) { checkSumAndDefault(t, &Array{}) })
}

func TestSumLeftToRight(t *testing.T) {
	a := NewArray()
	a.Set(First, 1e16)
	a.Set(Second, 1)
	a.Set(Third, 1)

	// (1e16 + 1) + 1 loses both ones; any other order would keep them.
	assert.Equal(t, 1e16, Sum(a))
}

func TestIsDefaultExactComparison(t *testing.T) {
	tests := []struct {
		name  string
		item  Item
		value float64
		want  bool
	}{
		{"tiny positive", First, 1e-300, false},
		{"tiny negative", Third, -math.SmallestNonzeroFloat64, false},
		{"negative zero", Second, math.Copysign(0, -1), true},
		{"nan", First, math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArray()
			a.Set(tt.item, tt.value)
			assert.Equal(t, tt.want, IsDefault(a))
		})
	}
}

func TestVariantsAgree(t *testing.T) {
	// Values every layout stores exactly.
	steps := []struct {
		item  Item
		value float64
	}{
		{Third, 2.25},
		{First, 7},
		{Second, -0.5},
		{First, 3},
	}

	tuple, array := NewTuple(), NewArray()
	for _, s := range steps {
		tuple.Set(s.item, s.value)
		array.Set(s.item, s.value)
	}

	for _, it := range Items() {
		assert.Equal(t, array.Get(it), tuple.Get(it), "Get(%v)", it)
	}
	assert.Equal(t, Sum(array), Sum(tuple))
	assert.Equal(t, IsDefault(array), IsDefault(tuple))
}
