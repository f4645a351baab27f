package types

import (
	"fmt"
	"math"
)

// Tuple stores the three slots in fields of different numeric width.
// The zero value is the default record.
type Tuple struct {
	First  uint32
	Second float32
	Third  float64
}

// NewTuple returns a Tuple with every slot set to zero.
func NewTuple() *Tuple {
	return &Tuple{}
}

// Get returns the slot for item widened to float64.
// It panics if item is not a valid Item.
func (t *Tuple) Get(item Item) float64 {
	switch item {
	case First:
		return float64(t.First)
	case Second:
		return float64(t.Second)
	case Third:
		return t.Third
	default:
		panic(fmt.Sprintf("types: invalid item %d", uint8(item)))
	}
}

// Set narrows value to the native type of the item's field:
//
//	First:  truncated toward zero and saturated to [0, math.MaxUint32];
//	        NaN stores 0.
//	Second: rounded to the nearest float32; out-of-range magnitudes
//	        become ±Inf.
//	Third:  stored unchanged.
//
// The conversion is silent. It panics if item is not a valid Item.
func (t *Tuple) Set(item Item, value float64) {
	switch item {
	case First:
		t.First = saturateUint32(value)
	case Second:
		t.Second = float32(value)
	case Third:
		t.Third = value
	default:
		panic(fmt.Sprintf("types: invalid item %d", uint8(item)))
	}
}

// saturateUint32 converts v to uint32, clamping instead of relying on the
// platform-dependent result of an out-of-range float conversion.
func saturateUint32(v float64) uint32 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
