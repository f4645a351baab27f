package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Item names one of the three slots every record exposes.
// The set is closed: First, Second and Third are the only valid items.
type Item uint8

// Item constants, in declaration order.
const (
	First Item = iota
	Second
	Third
)

// ItemCount is the number of slots in every record.
const ItemCount = 3

// Item parsing errors.
var (
	ErrInvalidItem = errors.New("invalid item")
)

// Items returns all items in declaration order. Aggregates over a record
// iterate in this order.
func Items() [ItemCount]Item {
	return [ItemCount]Item{First, Second, Third}
}

// Index returns the 0-based position of the item: First 0, Second 1,
// Third 2. It panics if i is not one of the declared constants.
func (i Item) Index() int {
	switch i {
	case First:
		return 0
	case Second:
		return 1
	case Third:
		return 2
	default:
		panic(fmt.Sprintf("types: invalid item %d", uint8(i)))
	}
}

// Valid reports whether i is one of First, Second or Third.
func (i Item) Valid() bool {
	switch i {
	case First, Second, Third:
		return true
	default:
		return false
	}
}

// String returns the lowercase item name.
func (i Item) String() string {
	switch i {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	default:
		return "Item(" + strconv.Itoa(int(i)) + ")"
	}
}

// ParseItem maps a name ("first", "Second", ...) or an index ("0".."2")
// to its Item. Returns ErrInvalidItem for anything else.
func ParseItem(s string) (Item, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, it := range Items() {
		if key == it.String() || key == strconv.Itoa(it.Index()) {
			return it, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidItem, s)
}
