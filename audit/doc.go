// Package audit provides the audit-difficulty metrics used to score
// assertions: a scalar, non-negative "how many ballots must be sampled"
// estimate, with positive infinity standing for "cannot be audited this
// way". Four metrics are provided — BRAVO (ballot polling), MACRO (ballot
// comparison), and the two simpler 1/margin and 1/margin² estimates — behind
// a common Metric interface so the rest of the package tree never needs to
// know which one is in play.
//
// Every metric treats a tie or loss (winner tally <= loser tally) as
// infinitely difficult; NaN is never returned.
package audit
