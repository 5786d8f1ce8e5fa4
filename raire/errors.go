package raire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// Sentinel errors, one per RAIRE failure kind. Error wraps one of these with
// whatever payload that kind carries; errors.Is against these sentinels
// works through Error's Unwrap.
var (
	ErrInvalidTimeout                 = errors.New("raire: time limit must be greater than zero")
	ErrInvalidNumberOfCandidates      = errors.New("raire: invalid number of candidates")
	ErrTimeoutCheckingWinner          = errors.New("raire: timed out checking all possible winners")
	ErrTimeoutFindingAssertions       = errors.New("raire: timed out finding assertions")
	ErrTimeoutTrimmingAssertions      = errors.New("raire: timed out trimming assertions")
	ErrTiedWinners                    = errors.New("raire: candidates tied as alternate winners")
	ErrWrongWinner                    = errors.New("raire: the asserted winner was not actually the winner")
	ErrCouldNotRuleOut                = errors.New("raire: could not rule out an elimination order")
	ErrInternalErrorRuledOutWinner    = errors.New("raire: internal error - ruled out the winner")
	ErrInternalErrorDidntRuleOutLoser = errors.New("raire: internal error - did not rule out a loser")
	ErrInternalErrorTrimming          = errors.New("raire: internal error - trimming couldn't work")
)

// Error is the concrete error type Solve and its component stages return.
// Err names which sentinel occurred; the payload fields are populated only
// for the kinds that carry one.
type Error struct {
	Err        error
	Bound      audit.Difficulty   // set for ErrTimeoutFindingAssertions
	Candidates []ballot.Candidate // set for ErrTiedWinners, ErrWrongWinner
	Suffix     []ballot.Candidate // set for ErrCouldNotRuleOut
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrTimeoutFindingAssertions):
		return fmt.Sprintf("%s: bound at time of stopping %v", e.Err, e.Bound)
	case errors.Is(e.Err, ErrTiedWinners), errors.Is(e.Err, ErrWrongWinner):
		return fmt.Sprintf("%s: %v", e.Err, e.Candidates)
	case errors.Is(e.Err, ErrCouldNotRuleOut):
		return fmt.Sprintf("%s: %v", e.Err, e.Suffix)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func newTiedWinners(candidates []ballot.Candidate) *Error {
	return &Error{Err: ErrTiedWinners, Candidates: candidates}
}

func newWrongWinner(candidates []ballot.Candidate) *Error {
	return &Error{Err: ErrWrongWinner, Candidates: candidates}
}

func newCouldNotRuleOut(suffix []ballot.Candidate) *Error {
	return &Error{Err: ErrCouldNotRuleOut, Suffix: suffix}
}

func newTimeoutFindingAssertions(bound float64) *Error {
	return &Error{Err: ErrTimeoutFindingAssertions, Bound: bound}
}

// tagError is the reverse of errorTag, used by UnmarshalJSON.
var tagError = map[string]error{
	"InvalidTimeout":                 ErrInvalidTimeout,
	"InvalidNumberOfCandidates":      ErrInvalidNumberOfCandidates,
	"TimeoutCheckingWinner":          ErrTimeoutCheckingWinner,
	"TimeoutFindingAssertions":       ErrTimeoutFindingAssertions,
	"TimeoutTrimmingAssertions":      ErrTimeoutTrimmingAssertions,
	"TiedWinners":                    ErrTiedWinners,
	"WrongWinner":                    ErrWrongWinner,
	"CouldNotRuleOut":                ErrCouldNotRuleOut,
	"InternalErrorRuledOutWinner":    ErrInternalErrorRuledOutWinner,
	"InternalErrorDidntRuleOutLoser": ErrInternalErrorDidntRuleOutLoser,
	"InternalErrorTrimming":          ErrInternalErrorTrimming,
}

// errorTag is the wire-format discriminator for each sentinel, matching the
// Rust enum's variant names.
var errorTag = map[error]string{
	ErrInvalidTimeout:                 "InvalidTimeout",
	ErrInvalidNumberOfCandidates:      "InvalidNumberOfCandidates",
	ErrTimeoutCheckingWinner:          "TimeoutCheckingWinner",
	ErrTimeoutFindingAssertions:       "TimeoutFindingAssertions",
	ErrTimeoutTrimmingAssertions:      "TimeoutTrimmingAssertions",
	ErrTiedWinners:                    "TiedWinners",
	ErrWrongWinner:                    "WrongWinner",
	ErrCouldNotRuleOut:                "CouldNotRuleOut",
	ErrInternalErrorRuledOutWinner:    "InternalErrorRuledOutWinner",
	ErrInternalErrorDidntRuleOutLoser: "InternalErrorDidntRuleOutLoser",
	ErrInternalErrorTrimming:          "InternalErrorTrimming",
}

// MarshalJSON renders Error the way the original Rust enum serializes:
// a bare string for payload-free variants, or a single-key object mapping
// the variant name to its payload.
func (e *Error) MarshalJSON() ([]byte, error) {
	tag, ok := errorTag[e.Err]
	if !ok {
		tag = e.Err.Error()
	}
	switch {
	case errors.Is(e.Err, ErrTimeoutFindingAssertions):
		return json.Marshal(map[string]float64{tag: e.Bound})
	case errors.Is(e.Err, ErrTiedWinners), errors.Is(e.Err, ErrWrongWinner):
		return json.Marshal(map[string][]ballot.Candidate{tag: e.Candidates})
	case errors.Is(e.Err, ErrCouldNotRuleOut):
		return json.Marshal(map[string][]ballot.Candidate{tag: e.Suffix})
	default:
		return json.Marshal(tag)
	}
}

// UnmarshalJSON is the inverse of MarshalJSON, accepting either a bare tag
// string or a single-key object mapping the tag to its payload.
func (e *Error) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		sentinel, ok := tagError[tag]
		if !ok {
			return fmt.Errorf("raire: unknown error tag %q", tag)
		}
		e.Err = sentinel
		return nil
	}

	var withBound map[string]float64
	if err := json.Unmarshal(data, &withBound); err == nil && len(withBound) == 1 {
		for tag, bound := range withBound {
			sentinel, ok := tagError[tag]
			if !ok {
				return fmt.Errorf("raire: unknown error tag %q", tag)
			}
			e.Err = sentinel
			e.Bound = bound
			return nil
		}
	}

	var withCandidates map[string][]ballot.Candidate
	if err := json.Unmarshal(data, &withCandidates); err == nil && len(withCandidates) == 1 {
		for tag, candidates := range withCandidates {
			sentinel, ok := tagError[tag]
			if !ok {
				return fmt.Errorf("raire: unknown error tag %q", tag)
			}
			e.Err = sentinel
			switch sentinel {
			case ErrCouldNotRuleOut:
				e.Suffix = candidates
			default:
				e.Candidates = candidates
			}
			return nil
		}
	}

	return fmt.Errorf("raire: could not parse error payload %s", data)
}
