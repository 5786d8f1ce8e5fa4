package raire

import (
	"errors"
	"math"
	"time"

	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/irv"
	"github.com/democracydevelopers/raire-go/nebcache"
	"github.com/democracydevelopers/raire-go/timeout"
	"github.com/democracydevelopers/raire-go/trim"
)

// Solve runs the full RAIRE pipeline against problem: validate input, find
// every possible IRV winner, search for the cheapest assertion set proving
// the announced winner, then order and trim it. It never panics; every
// failure mode is reported through Solution.Err.
func Solve(problem Problem) Solution {
	fail := func(err *Error) Solution {
		return Solution{Metadata: problem.Metadata, Err: err}
	}

	if problem.TimeLimitSeconds != nil && (*problem.TimeLimitSeconds <= 0 || math.IsNaN(*problem.TimeLimitSeconds)) {
		return fail(&Error{Err: ErrInvalidTimeout})
	}
	if problem.NumCandidates <= 0 {
		return fail(&Error{Err: ErrInvalidNumberOfCandidates})
	}

	store, err := ballot.NewStore(problem.Votes, problem.NumCandidates)
	if err != nil {
		return fail(&Error{Err: ErrInvalidNumberOfCandidates})
	}

	var durationLimit *time.Duration
	if problem.TimeLimitSeconds != nil {
		d := time.Duration(*problem.TimeLimitSeconds * float64(time.Second))
		durationLimit = &d
	}
	to := timeout.New(nil, durationLimit)

	electionResult, err := irv.RunElection(store, to)
	if err != nil {
		if errors.Is(err, irv.ErrTimeoutCheckingWinner) {
			return fail(&Error{Err: ErrTimeoutCheckingWinner})
		}
		return fail(&Error{Err: err})
	}
	timeToDetermineWinners := to.Snapshot()

	if len(electionResult.PossibleWinners) > 1 {
		return fail(newTiedWinners(electionResult.PossibleWinners))
	}
	winner := electionResult.PossibleWinners[0]
	if problem.Winner != nil && *problem.Winner != winner {
		return fail(newWrongWinner(electionResult.PossibleWinners))
	}

	nebCache := nebcache.New(store, problem.Audit.Metric)

	var floor float64
	if problem.DifficultyEstimate != nil {
		floor = *problem.DifficultyEstimate
	}

	assertions, bound, err := search(store, winner, problem.Audit.Metric, nebCache, electionResult.EliminationOrder, true, floor, to)
	if err != nil {
		var raireErr *Error
		if errors.As(err, &raireErr) {
			return fail(raireErr)
		}
		return fail(&Error{Err: err})
	}
	timeToFindAssertions := to.Snapshot().Sub(timeToDetermineWinners)

	trimAlgo := trim.MinimizeTree
	if problem.TrimAlgorithm != nil {
		trimAlgo = *problem.TrimAlgorithm
	}

	trimmed, trimErr := trim.OrderAndRemoveUnnecessary(assertions, winner, store.NumCandidates(), trimAlgo, to)
	warningTrimTimedOut := false
	switch {
	case trimErr == nil:
		// trimmed is the final assertion list.
	case errors.Is(trimErr, trim.ErrTimeout):
		warningTrimTimedOut = true
		trimmed = assertions
	case errors.Is(trimErr, trim.ErrRuledOutWinner):
		return fail(&Error{Err: ErrInternalErrorRuledOutWinner})
	case errors.Is(trimErr, trim.ErrDidntRuleOutLoser):
		return fail(&Error{Err: ErrInternalErrorDidntRuleOutLoser})
	default:
		return fail(&Error{Err: ErrInternalErrorTrimming})
	}
	timeToTrimAssertions := to.Snapshot().Sub(timeToDetermineWinners).Sub(timeToFindAssertions)

	return Solution{
		Metadata: problem.Metadata,
		Result: &Result{
			Assertions:             trimmed,
			Difficulty:             bound,
			Winner:                 winner,
			NumCandidates:          store.NumCandidates(),
			TimeToDetermineWinners: timeToDetermineWinners,
			TimeToFindAssertions:   timeToFindAssertions,
			TimeToTrimAssertions:   timeToTrimAssertions,
			WarningTrimTimedOut:    warningTrimTimedOut,
		},
	}
}
