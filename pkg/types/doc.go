// Package types defines the Item key set, the ItemCollection interface with
// its derived Sum and IsDefault operations, and the two record layouts that
// implement it: Tuple (mixed-width fields, lossy) and Array (float64, lossless).
//
// Records are plain values with no internal locking; callers serialize
// concurrent access to a single record.
package types
