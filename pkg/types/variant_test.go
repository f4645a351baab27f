package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	tests := []struct {
		variant  string
		wantType ItemCollection
		wantErr  error
	}{
		{VariantTuple, &Tuple{}, nil},
		{VariantArray, &Array{}, nil},
		{"", nil, ErrVariantEmpty},
		{"map", nil, ErrVariantUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			c, err := NewCollection(tt.variant)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, c)
			assert.True(t, IsDefault(c))
		})
	}
}

func TestNewCollectionReturnsFreshRecords(t *testing.T) {
	a, err := NewCollection(VariantArray)
	require.NoError(t, err)
	a.Set(First, 1)

	b, err := NewCollection(VariantArray)
	require.NoError(t, err)
	assert.True(t, IsDefault(b))
}

func TestIsValidVariant(t *testing.T) {
	assert.True(t, IsValidVariant(VariantTuple))
	assert.True(t, IsValidVariant(VariantArray))
	for _, v := range []string{"", "Tuple", "vector"} {
		assert.False(t, IsValidVariant(v), "IsValidVariant(%q)", v)
	}
}
