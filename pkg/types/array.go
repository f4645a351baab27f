package types

// Array stores the three slots as float64, indexed by Item.Index.
// Reads and writes are lossless. The zero value is the default record.
type Array [ItemCount]float64

// NewArray returns an Array with every slot set to zero.
func NewArray() *Array {
	return &Array{}
}

// Get returns the slot for item.
func (a *Array) Get(item Item) float64 {
	return a[item.Index()]
}

// Set stores value for item.
func (a *Array) Set(item Item, value float64) {
	a[item.Index()] = value
}
