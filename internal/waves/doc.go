// Package waves provides linear wave theory derivations used by the
// analytical reef backend: the dispersion relation, wave number,
// celerity and group celerity, evaluated per spatial node.
//
// All derivations follow the convention that a dry node (depth <= 0)
// carries zero wave length, wave number and group celerity, never a
// negative or NaN value.
package waves
