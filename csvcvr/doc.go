// Package csvcvr reads a cast-vote-record CSV file into a raire.Problem.
//
// The format is one header row naming the candidates in index order, then
// one row per distinct ballot: a vote count followed by that ballot's
// ranked candidate names, most preferred first, trailing cells left blank
// for ballots with fewer preferences than the widest row.
//
//	Candidates,Alice,Bob,Carol,Dave
//	2,Alice,Bob,,
//	1,Bob,Alice,,
//	1,Carol,Alice,,
//	1,Dave,Alice,,
package csvcvr
