package irv

import "errors"

// ErrTimeoutCheckingWinner is returned by RunElection when the supplied
// timeout budget is exhausted while still searching for possible winners.
var ErrTimeoutCheckingWinner = errors.New("irv: timeout checking winner")
