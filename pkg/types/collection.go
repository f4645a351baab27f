package types

// ItemCollection provides uniform access to the three slots of a record,
// whatever its storage layout. Values cross the interface as float64.
type ItemCollection interface {
	// Get returns the value stored for item, widened to float64.
	Get(item Item) float64

	// Set stores value for item and leaves the other slots untouched.
	// Storage narrower than float64 converts the value first; see the
	// implementation for its conversion rules.
	Set(item Item, value float64)
}

// Compile-time checks that both storage layouts satisfy ItemCollection.
var (
	_ ItemCollection = (*Tuple)(nil)
	_ ItemCollection = (*Array)(nil)
)

// Sum returns Get(First) + Get(Second) + Get(Third), added left to right.
func Sum(c ItemCollection) float64 {
	sum := 0.0
	for _, it := range Items() {
		sum += c.Get(it)
	}
	return sum
}

// IsDefault reports whether every slot of c reads exactly 0.0. There is no
// tolerance: a tiny nonzero value is not default. Negative zero compares
// equal to zero; NaN does not.
func IsDefault(c ItemCollection) bool {
	for _, it := range Items() {
		if c.Get(it) != 0.0 {
			return false
		}
	}
	return true
}
