package cli

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 60, `60`},
		{"fraction", 0.5, `0.5`},
		{"nan", math.NaN(), `"NaN"`},
		{"positive infinity", math.Inf(1), `"+Inf"`},
		{"negative infinity", math.Inf(-1), `"-Inf"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(jsonFloat(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "10", formatFloat(10))
	assert.Equal(t, "10.7", formatFloat(10.7))
	assert.Equal(t, "0.10000000149011612", formatFloat(float64(float32(0.1))))
}

func TestParseAssignment(t *testing.T) {
	as, err := parseAssignment("Second= 2.5")
	require.NoError(t, err)
	assert.Equal(t, assignment{item: 1, value: 2.5}, as)

	_, err = parseAssignment("=1")
	assert.Error(t, err)
}
