// Package arrayutil provides small helpers over records, ordered mappings and
// sequences: plucking a field, flattening nested structures, case-insensitive
// membership and search, prefixing values and keys, and filtering a mapping by
// a key set.
//
// Typed helpers work on Go slices, maps and
// [github.com/elliotchance/orderedmap/v2] ordered maps. The *Any variants
// accept loosely typed input such as decoded JSON documents and report
// malformed input through the sentinel errors in errors.go.
package arrayutil
