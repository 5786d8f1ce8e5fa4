package raire

import (
	"container/heap"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// sequenceAndEffort is a frontier entry: a reverse-elimination-order suffix
// pi that still needs to be ruled out, together with the cheapest assertion
// found so far for one of its suffixes ("ancestors"), and which candidate
// (if any) the diving heuristic has already extended this entry with.
type sequenceAndEffort struct {
	pi                       []ballot.Candidate
	bestAssertionForAncestor assertion.AssertionAndDifficulty
	bestAncestorLength       int
	diveDone                 *ballot.Candidate
}

func (s *sequenceAndEffort) difficulty() audit.Difficulty {
	return s.bestAssertionForAncestor.Difficulty
}

// bestAncestor is the suffix of pi that the current best assertion was
// computed against.
func (s *sequenceAndEffort) bestAncestor() []ballot.Candidate {
	return s.pi[len(s.pi)-s.bestAncestorLength:]
}

// endsWith reports whether pi's tail matches suffix exactly.
func endsWith(pi, suffix []ballot.Candidate) bool {
	if len(suffix) > len(pi) {
		return false
	}
	offset := len(pi) - len(suffix)
	for i, c := range suffix {
		if pi[offset+i] != c {
			return false
		}
	}
	return true
}

// frontier is a max-heap of sequenceAndEffort entries keyed by difficulty,
// so the next entry popped always needs the most auditing effort so far.
type frontier []*sequenceAndEffort

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].difficulty() > f[j].difficulty() }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*sequenceAndEffort)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// purge drops every entry whose pi ends with suffix: the assertion that was
// just committed against that suffix already rules them out too.
func purge(f *frontier, suffix []ballot.Candidate) {
	kept := (*f)[:0]
	for _, e := range *f {
		if !endsWith(e.pi, suffix) {
			kept = append(kept, e)
		}
	}
	*f = kept
	heap.Init(f)
}
