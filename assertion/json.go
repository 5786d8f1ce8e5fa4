package assertion

import (
	"encoding/json"
	"fmt"

	"github.com/democracydevelopers/raire-go/ballot"
)

// wireAssertion is the on-the-wire shape shared by NEB and NEN: a "type"
// discriminator plus whichever of winner/loser/continuing that type uses.
type wireAssertion struct {
	Type       string            `json:"type"`
	Winner     ballot.Candidate  `json:"winner"`
	Loser      ballot.Candidate  `json:"loser"`
	Continuing []ballot.Candidate `json:"continuing,omitempty"`
}

// MarshalJSON implements json.Marshaler, tagging the assertion with its
// shape name the way the original's internally-tagged enum does.
func (a NEB) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAssertion{Type: "NEB", Winner: a.WinnerCandidate, Loser: a.LoserCandidate})
}

// MarshalJSON implements json.Marshaler.
func (a NEN) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAssertion{Type: "NEN", Winner: a.WinnerCandidate, Loser: a.LoserCandidate, Continuing: a.Continuing})
}

// UnmarshalAssertion decodes a tagged NEB or NEN from its wire form. It is a
// free function rather than a method because Assertion is an interface:
// there is no concrete value to unmarshal into until the tag is known.
func UnmarshalAssertion(data []byte) (Assertion, error) {
	var w wireAssertion
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	switch w.Type {
	case "NEB":
		return NEB{WinnerCandidate: w.Winner, LoserCandidate: w.Loser}, nil
	case "NEN":
		return NEN{WinnerCandidate: w.Winner, LoserCandidate: w.Loser, Continuing: w.Continuing}, nil
	default:
		return nil, fmt.Errorf("assertion: unknown assertion type %q", w.Type)
	}
}

// MarshalJSON implements json.Marshaler for AssertionAndDifficulty.
func (ad AssertionAndDifficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Assertion  Assertion `json:"assertion"`
		Difficulty float64   `json:"difficulty"`
	}{ad.Assertion, ad.Difficulty})
}

// UnmarshalJSON implements json.Unmarshaler for AssertionAndDifficulty.
func (ad *AssertionAndDifficulty) UnmarshalJSON(data []byte) error {
	var raw struct {
		Assertion  json.RawMessage `json:"assertion"`
		Difficulty float64         `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a, err := UnmarshalAssertion(raw.Assertion)
	if err != nil {
		return err
	}
	ad.Assertion = a
	ad.Difficulty = raw.Difficulty
	return nil
}
