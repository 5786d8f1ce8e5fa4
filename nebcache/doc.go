// Package nebcache precomputes every NotEliminatedBefore difficulty once per
// RAIRE run, so the search's inner loop over candidate pairs never recomputes
// a restricted tally it has already seen. A Table is an N×N array indexed by
// [winner][loser], with an infinite diagonal.
package nebcache
