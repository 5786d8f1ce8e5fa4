package trim

import (
	"encoding/json"
	"fmt"
)

// Algorithm selects how aggressively OrderAndRemoveUnnecessary discards
// assertions that a pruning tree shows are redundant.
type Algorithm int

const (
	// None only sorts assertions into canonical order; it never discards
	// any of them.
	None Algorithm = iota
	// MinimizeTree stops descending a branch as soon as one assertion
	// prunes it, keeping the pruning tree - and the trim pass - small.
	MinimizeTree
	// MinimizeAssertions keeps descending every branch regardless of
	// earlier pruning, usually finding a smaller assertion set at the
	// cost of a larger pruning tree.
	MinimizeAssertions
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "None"
	case MinimizeTree:
		return "MinimizeTree"
	case MinimizeAssertions:
		return "MinimizeAssertions"
	default:
		return "Algorithm(?)"
	}
}

// MarshalJSON renders Algorithm as its wire name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the three wire names, case-sensitively.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "None":
		*a = None
	case "MinimizeTree":
		*a = MinimizeTree
	case "MinimizeAssertions":
		*a = MinimizeAssertions
	default:
		return fmt.Errorf("trim: unknown trim algorithm %q", s)
	}
	return nil
}

// howFarToContinue governs what a pruning-tree node does with its children
// once it already has at least one pruning assertion of its own.
type howFarToContinue int

const (
	stopImmediately howFarToContinue = iota
	continueOnce
	forever
)

func (h howFarToContinue) shouldContinueIfPruned() bool {
	return h != stopImmediately
}

func (h howFarToContinue) nextLevelIfPruned() howFarToContinue {
	if h == continueOnce {
		return stopImmediately
	}
	return h
}
