package ballot

import "fmt"

// Candidate is a dense, zero-based candidate index. A Candidate value is only
// meaningful relative to the NumCandidates of the Store it came from.
type Candidate int

// BallotPaperCount counts pieces of paper (ballots). It is a distinct type
// from Candidate so the two can never be mixed by accident in arithmetic.
type BallotPaperCount uint64

// Add returns c + other.
func (c BallotPaperCount) Add(other BallotPaperCount) BallotPaperCount {
	return c + other
}

// Sub returns c - other. The caller must ensure c >= other; restricted
// tallies and first-preference tallies are constructed so that subtraction
// never underflows in practice.
func (c BallotPaperCount) Sub(other BallotPaperCount) BallotPaperCount {
	return c - other
}

// Float64 converts the count to a float64 for use in difficulty formulas.
func (c BallotPaperCount) Float64() float64 {
	return float64(c)
}

// SumBallotPaperCounts adds up a slice of counts.
func SumBallotPaperCounts(counts []BallotPaperCount) BallotPaperCount {
	var total BallotPaperCount
	for _, c := range counts {
		total += c
	}
	return total
}

func (c BallotPaperCount) String() string {
	return fmt.Sprintf("%d", uint64(c))
}

// Vote is a single distinct ranked-preference ballot, carried with the
// number of physical ballots cast that way.
//
// Prefs[0] is the top preference. Prefs may be shorter than the contest's
// candidate count (a ballot need not rank every candidate), and every entry
// in Prefs is distinct.
type Vote struct {
	N     BallotPaperCount `json:"n"`
	Prefs []Candidate      `json:"prefs"`
}
