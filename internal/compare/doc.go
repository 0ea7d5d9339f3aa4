// Package compare classifies alignment columns of one or two sequence lists:
// agreement within a list, molecular diagnostic characters (MDCs) of list A
// against list B, and non-unique characters.
//
// Every function is a pure computation over its inputs; nothing is cached or
// mutated, so calls on disjoint inputs may run concurrently. Column indices
// are 0-based here and converted to 1-based by the renderers.
package compare
