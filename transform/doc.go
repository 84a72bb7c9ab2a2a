// Package transform implements linear maps between vector spaces over a
// field: matrix representation, kernel, image, invertibility, composition,
// integer powers, inverses, transforms induced on quotient spaces and cyclic
// subspaces.
//
// A Transform[V, W, F] pairs a domain Space[V, F], a range Space[W, F] and a
// rule func(V) W. Linearity of the rule is a precondition and is not checked.
// Endomorphisms are simply Transform[V, V, F] whose domain and range coincide.
//
// Transforms are themselves vectors (matrix.Vector): they add and scale
// pointwise and their coordinates are the row-major entries of their matrix
// representation, so spaces of transforms are ordinary matrix.Space values.
//
// Negative outcomes (not invertible) are reported with an ok flag; a rule
// that leaves its declared range is reported as ErrNotInRange.
package transform
