package trim

import "errors"

// ErrTimeout is returned when the supplied timeout budget is exhausted while
// building a pruning tree or deciding which assertions it forces.
var ErrTimeout = errors.New("trim: timed out trimming assertions")

// ErrRuledOutWinner means the announced winner's own pruning tree came out
// invalid: every elimination order ending in the winner was contradicted,
// which can only happen if the assertion list itself is wrong.
var ErrRuledOutWinner = errors.New("trim: internal error - ruled out the winner")

// ErrDidntRuleOutLoser means some non-winner candidate's pruning tree came
// out valid: an elimination order ending in that candidate survived every
// assertion, so the assertion set does not actually prove the winner.
var ErrDidntRuleOutLoser = errors.New("trim: internal error - did not rule out a loser")
