package raire

import (
	"encoding/json"
	"fmt"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
	"github.com/democracydevelopers/raire-go/trim"
)

// Problem is the wire-format audit request: a cast-vote record, the audit
// metric to score assertions with, and knobs controlling how hard the
// search works before giving up.
type Problem struct {
	Metadata json.RawMessage `json:"metadata,omitempty"`
	NumCandidates int `json:"num_candidates"`
	Votes []ballot.Vote `json:"votes"`
	// Winner, if given, is cross-checked against the IRV result: a mismatch
	// is reported as ErrWrongWinner rather than silently solved for the
	// winner the caller didn't expect.
	Winner *ballot.Candidate `json:"winner,omitempty"`
	Audit AuditDescriptor `json:"audit"`
	// TrimAlgorithm defaults to trim.MinimizeTree when omitted.
	TrimAlgorithm *trim.Algorithm `json:"trim_algorithm,omitempty"`
	// DifficultyEstimate, if given, seeds the search's lower bound so it
	// never bothers looking for assertions easier than this.
	DifficultyEstimate *audit.Difficulty `json:"difficulty_estimate,omitempty"`
	TimeLimitSeconds *float64 `json:"time_limit_seconds,omitempty"`
}

// AuditDescriptor is the JSON tagged union for audit.Metric: BRAVO, MACRO,
// OneOnMargin and OneOnMarginSq, discriminated by a "type" field. The
// legacy tags Margin and MarginSq are accepted on input as aliases for
// OneOnMargin and OneOnMarginSq, respectively, but are never produced.
type AuditDescriptor struct {
	Metric audit.Metric
}

type auditWire struct {
	Type                  string                  `json:"type"`
	Confidence            float64                 `json:"confidence,omitempty"`
	ErrorInflationFactor  float64                 `json:"error_inflation_factor,omitempty"`
	TotalAuditableBallots ballot.BallotPaperCount `json:"total_auditable_ballots"`
}

// MarshalJSON implements json.Marshaler.
func (d AuditDescriptor) MarshalJSON() ([]byte, error) {
	switch m := d.Metric.(type) {
	case audit.BRAVO:
		return json.Marshal(auditWire{Type: "BRAVO", Confidence: m.Confidence, TotalAuditableBallots: m.TotalAuditableBallots})
	case audit.MACRO:
		return json.Marshal(auditWire{Type: "MACRO", Confidence: m.Confidence, ErrorInflationFactor: m.ErrorInflationFactor, TotalAuditableBallots: m.TotalAuditableBallots})
	case audit.OneOverMargin:
		return json.Marshal(auditWire{Type: "OneOnMargin", TotalAuditableBallots: m.TotalAuditableBallots})
	case audit.OneOverMarginSquared:
		return json.Marshal(auditWire{Type: "OneOnMarginSq", TotalAuditableBallots: m.TotalAuditableBallots})
	default:
		return nil, fmt.Errorf("raire: unknown audit metric %T", d.Metric)
	}
}

// UnmarshalJSON implements json.Unmarshaler, accepting the legacy Margin and
// MarginSq aliases alongside the current tag names.
func (d *AuditDescriptor) UnmarshalJSON(data []byte) error {
	var w auditWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case "BRAVO":
		d.Metric = audit.BRAVO{Confidence: w.Confidence, TotalAuditableBallots: w.TotalAuditableBallots}
	case "MACRO":
		d.Metric = audit.MACRO{Confidence: w.Confidence, ErrorInflationFactor: w.ErrorInflationFactor, TotalAuditableBallots: w.TotalAuditableBallots}
	case "OneOnMargin", "Margin":
		d.Metric = audit.OneOverMargin{TotalAuditableBallots: w.TotalAuditableBallots}
	case "OneOnMarginSq", "MarginSq":
		d.Metric = audit.OneOverMarginSquared{TotalAuditableBallots: w.TotalAuditableBallots}
	default:
		return fmt.Errorf("raire: unknown audit type %q", w.Type)
	}
	return nil
}

// Result is the successful-solve payload: the trimmed assertion set proving
// the announced winner, together with the search's effort bound and phase
// timings.
type Result struct {
	Assertions              []assertion.AssertionAndDifficulty `json:"assertions"`
	Difficulty              audit.Difficulty                   `json:"difficulty"`
	Margin                  *float64                            `json:"margin,omitempty"`
	Winner                  ballot.Candidate                    `json:"winner"`
	NumCandidates           int                                 `json:"num_candidates"`
	TimeToDetermineWinners  timeout.TimeTaken                   `json:"time_to_determine_winners"`
	TimeToFindAssertions    timeout.TimeTaken                   `json:"time_to_find_assertions"`
	TimeToTrimAssertions    timeout.TimeTaken                   `json:"time_to_trim_assertions"`
	WarningTrimTimedOut     bool                                `json:"warning_trim_timed_out"`
}

// Solution is the wire-format audit response: the caller's metadata echoed
// back, and either a Result or an Error tagged as Ok/Err, matching the
// original's Result<RaireResult, RaireError> serialization.
type Solution struct {
	Metadata json.RawMessage
	Result   *Result
	Err      *Error
}

type solutionWire struct {
	Metadata json.RawMessage `json:"metadata,omitempty"`
	Solution map[string]json.RawMessage `json:"solution"`
}

// MarshalJSON implements json.Marshaler.
func (s Solution) MarshalJSON() ([]byte, error) {
	inner := map[string]interface{}{}
	if s.Err != nil {
		inner["Err"] = s.Err
	} else {
		inner["Ok"] = s.Result
	}
	return json.Marshal(struct {
		Metadata json.RawMessage        `json:"metadata,omitempty"`
		Solution map[string]interface{} `json:"solution"`
	}{s.Metadata, inner})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Solution) UnmarshalJSON(data []byte) error {
	var w solutionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Metadata = w.Metadata
	if ok, present := w.Solution["Ok"]; present {
		var r Result
		if err := json.Unmarshal(ok, &r); err != nil {
			return err
		}
		s.Result = &r
		return nil
	}
	if errData, present := w.Solution["Err"]; present {
		var e Error
		if err := json.Unmarshal(errData, &e); err != nil {
			return err
		}
		s.Err = &e
		return nil
	}
	return fmt.Errorf("raire: solution has neither Ok nor Err")
}
