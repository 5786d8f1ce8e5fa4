// Package raire is the top-level audit orchestrator: it validates a Problem,
// finds every possible IRV winner, searches for the cheapest set of NEB/NEN
// assertions that together prove the announced winner, trims redundant
// assertions from that set, and reports the result as a Solution.
//
// Internally the search (algorithm.go, frontier.go) is a best-first
// exploration of reverse-elimination-order suffixes: each frontier entry
// tracks the cheapest assertion found so far for ruling out every full
// elimination order ending in that suffix, and the search keeps expanding
// the currently-hardest entry until every suffix is accounted for at or
// below the running difficulty bound.
package raire
