package assertion

import "github.com/democracydevelopers/raire-go/ballot"

// AllEliminationOrders lists every permutation of candidates 0..numCandidates
// as a full elimination order (first-eliminated first). It is only usable as
// a diagnostic for small numCandidates: the result has numCandidates!
// entries.
func AllEliminationOrders(numCandidates int) [][]ballot.Candidate {
	if numCandidates <= 0 {
		return [][]ballot.Candidate{{}}
	}
	c := ballot.Candidate(numCandidates - 1)
	var res [][]ballot.Candidate
	for _, v := range AllEliminationOrders(numCandidates - 1) {
		for i := 0; i <= len(v); i++ {
			vv := make([]ballot.Candidate, 0, len(v)+1)
			vv = append(vv, v[:i]...)
			vv = append(vv, c)
			vv = append(vv, v[i:]...)
			res = append(res, vv)
		}
	}
	return res
}
