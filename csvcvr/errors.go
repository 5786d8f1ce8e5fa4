package csvcvr

import "errors"

var (
	ErrEmptyFile       = errors.New("csvcvr: file has no header row")
	ErrNoCandidates    = errors.New("csvcvr: header row names no candidates")
	ErrUnknownCandidate = errors.New("csvcvr: ballot names a candidate not in the header")
	ErrInvalidCount    = errors.New("csvcvr: ballot's vote count is not a positive integer")
)
