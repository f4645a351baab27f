package types

import (
	"errors"
	"fmt"
)

// Storage variant names accepted by NewCollection and Config.Variant.
const (
	VariantTuple = "tuple"
	VariantArray = "array"
)

// Variant selection errors.
var (
	ErrVariantEmpty   = errors.New("variant must not be empty")
	ErrVariantUnknown = errors.New("unknown variant")
)

// knownVariants maps each variant name to its constructor.
var knownVariants = map[string]func() ItemCollection{
	VariantTuple: func() ItemCollection { return NewTuple() },
	VariantArray: func() ItemCollection { return NewArray() },
}

// IsValidVariant reports whether name is a recognized storage variant.
func IsValidVariant(name string) bool {
	_, ok := knownVariants[name]
	return ok
}

// NewCollection returns a default-state record of the named variant.
func NewCollection(variant string) (ItemCollection, error) {
	if variant == "" {
		return nil, ErrVariantEmpty
	}
	newFn, ok := knownVariants[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVariantUnknown, variant)
	}
	return newFn(), nil
}
