// Package irv finds every possible IRV winner from a starting set of
// continuing candidates, along with one example elimination order
// consistent with that outcome.
//
// Ties are possible: whenever two or more continuing candidates share the
// lowest tally, any of them could plausibly be excluded next, and the
// algorithm explores every such branch. Naively this is worst-case
// factorial in the candidate count; memoizing on the (sorted) set of
// continuing candidates reduces that to worst-case exponential, and a bulk
// elimination shortcut handles the common case of a few serious candidates
// and a long tail of no-hope ones in polynomial time.
package irv
