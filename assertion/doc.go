// Package assertion implements the two assertion shapes RAIRE can emit —
// NotEliminatedBefore (NEB) and NotEliminatedNext (NEN) — and the operations
// shared by both: scoring a difficulty against a vote store and audit
// metric, classifying the effect of an assertion on an elimination-order
// suffix, and expanding a suffix into the full set of suffixes the assertion
// allows.
//
// An elimination order lists candidates from first-eliminated to winner. A
// suffix of it — "π" throughout this package and its callers — keeps that
// order: the winner of the sub-contest is at the last index, and index 0
// holds the earliest-eliminated candidate considered, which is the one most
// recently prepended as the suffix grows.
package assertion
