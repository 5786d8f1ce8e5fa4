// Package trim orders a RAIRE assertion list into a canonical order (NEBs
// first, then NENs over smaller continuing sets first; difficulty plays no
// part in the order), then optionally discards assertions that
// a tree of possible elimination-order suffixes shows are redundant.
//
// The tree descends one candidate elimination at a time; a branch is pruned
// the moment some assertion contradicts the elimination-order suffix built
// so far, and a tree is valid only if at least one leaf is never pruned.
// Every non-winner candidate's tree must come out invalid, or trimming has
// found a bug rather than a redundant assertion.
package trim
