package league

// Sentinel values for the second team of a scheduled slot. The fetch layer
// assigns these when a roster has no opponent or when a pairing has not been
// decided yet; matches carrying either are excluded from all statistics.
const (
	TeamBye      = "BYE"
	TeamUnplayed = "UNPLAYED"
)

// Outcome identifies the winner of a matchup.
type Outcome int

const (
	// OutcomeUndecided covers byes and unplayed/incomplete matchups.
	OutcomeUndecided Outcome = iota
	OutcomeTeam1
	OutcomeTeam2
	OutcomeTie
)

// MarshalJSON emits the outcome's string form so rendering never depends on
// the internal ordering of the variants.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

func (o Outcome) String() string {
	switch o {
	case OutcomeTeam1:
		return "team_1"
	case OutcomeTeam2:
		return "team_2"
	case OutcomeTie:
		return "tie"
	default:
		return "undecided"
	}
}

// Matchup is a single head-to-head result for one week. Slot is set only on
// elimination-round matchups; the same slot recurring across weeks marks a
// multi-week series.
type Matchup struct {
	Week   int     `json:"week"`
	Team1  string  `json:"team_1"`
	Score1 float64 `json:"score_1"`
	Team2  string  `json:"team_2"`
	Score2 float64 `json:"score_2"`
	Slot   string  `json:"slot,omitempty"`
}

// IsBye reports whether the matchup is a bye-week placeholder.
func (m Matchup) IsBye() bool {
	return m.Team2 == TeamBye
}

// IsIncomplete reports whether the matchup has not been played or scored.
func (m Matchup) IsIncomplete() bool {
	return m.Team2 == TeamUnplayed
}

// IsDecided reports whether the matchup contributes to standings and
// head-to-head records: two real teams with unequal scores.
func (m Matchup) IsDecided() bool {
	return !m.IsBye() && !m.IsIncomplete() && m.Score1 != m.Score2
}

// Winner determines the matchup outcome.
func (m Matchup) Winner() Outcome {
	if m.IsBye() || m.IsIncomplete() {
		return OutcomeUndecided
	}
	switch {
	case m.Score1 > m.Score2:
		return OutcomeTeam1
	case m.Score2 > m.Score1:
		return OutcomeTeam2
	default:
		return OutcomeTie
	}
}
