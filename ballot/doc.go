// Package ballot holds the tabulated cast-vote record of an IRV contest and
// answers restricted-tally queries against it.
//
// A Store is built once from a slice of Vote records and a candidate count,
// and is immutable afterwards: every query method is a pure function of the
// Store's state. TotalVotes is linear in the number of vote records;
// RestrictedTallies is linear in the preference entries it scans plus the
// largest continuing candidate index, using a dense reverse-index array
// rather than a map, per the recommended approach. The other queries are
// O(1).
//
// Candidate indices are dense and zero-based: a Candidate value is only ever
// meaningful relative to a Store's NumCandidates. BallotPaperCount is a
// distinct integer type so that ballot counts and candidate indices cannot be
// accidentally mixed in arithmetic.
package ballot
