package league

import "sort"

// BracketMatchup is one displayable elimination matchup, possibly aggregated
// from a multi-week series sharing a slot name.
type BracketMatchup struct {
	Label       string  `json:"label"`
	Team1       string  `json:"team_1"`
	Score1      float64 `json:"score_1"`
	Team2       string  `json:"team_2"`
	Score2      float64 `json:"score_2"`
	Winner      Outcome `json:"winner"`
	Weeks       []int   `json:"weeks,omitempty"`
	IsMultiWeek bool    `json:"is_multi_week"`
}

// BracketRound is one titled column of the bracket.
type BracketRound struct {
	Title    string           `json:"title"`
	Matchups []BracketMatchup `json:"matchups"`
}

// Bracket is the full round-by-round structure handed to rendering.
type Bracket struct {
	Name   string         `json:"name"`
	Rounds []BracketRound `json:"rounds"`
}

// placeholderTeam is rendered for slots with no recorded matchup yet.
const placeholderTeam = "TBD"

// bracketSlot binds a slot key, as tagged on elimination matchups, to its
// display label.
type bracketSlot struct {
	key   string
	label string
}

type bracketRoundSpec struct {
	title string
	slots []bracketSlot
}

// Bracket topologies are fixed: the round structure and slot names are known
// at design time, so each bracket is a hand-specified slot table rather than
// anything inferred from the data.
var championshipTopology = []bracketRoundSpec{
	{title: "Semifinals", slots: []bracketSlot{
		{key: "semifinal_1", label: "1 vs 4"},
		{key: "semifinal_2", label: "2 vs 3"},
	}},
	{title: "Finals", slots: []bracketSlot{
		{key: "championship", label: "Championship"},
		{key: "third_place", label: "Third Place Game"},
	}},
}

// The six-team consolation bracket opens with the bottom four seeds and
// re-pairs by seed in round two: the 5 seed draws the lower-seeded opening
// winner, the 6 seed the higher-seeded one.
var consolationTopology = []bracketRoundSpec{
	{title: "Round 1", slots: []bracketSlot{
		{key: "consolation_r1_1", label: "7 vs 10"},
		{key: "consolation_r1_2", label: "8 vs 9"},
	}},
	{title: "Round 2", slots: []bracketSlot{
		{key: "consolation_r2_1", label: "5 Seed Game"},
		{key: "consolation_r2_2", label: "6 Seed Game"},
	}},
	{title: "Placement", slots: []bracketSlot{
		{key: "fifth_place", label: "5th Place Game"},
		{key: "seventh_place", label: "7th Place Game"},
	}},
}

// GroupBySlot indexes elimination matchups by their slot name. Matchups
// without a slot are ignored.
func GroupBySlot(matchups []Matchup) map[string][]Matchup {
	bySlot := make(map[string][]Matchup)
	for _, m := range matchups {
		if m.Slot == "" {
			continue
		}
		bySlot[m.Slot] = append(bySlot[m.Slot], m)
	}
	return bySlot
}

// CombineSeries collapses the matchups sharing one slot into a single
// displayable matchup. A single match passes through unchanged; multiple
// matches form a multi-week series whose scores are summed across weeks, with
// the combined totals deciding the winner. An empty series yields a TBD
// placeholder.
func CombineSeries(matchups []Matchup) BracketMatchup {
	switch len(matchups) {
	case 0:
		return BracketMatchup{
			Team1:  placeholderTeam,
			Team2:  placeholderTeam,
			Winner: OutcomeUndecided,
		}
	case 1:
		m := matchups[0]
		return BracketMatchup{
			Team1:  m.Team1,
			Score1: m.Score1,
			Team2:  m.Team2,
			Score2: m.Score2,
			Winner: m.Winner(),
		}
	}

	ordered := make([]Matchup, len(matchups))
	copy(ordered, matchups)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Week < ordered[j].Week })

	combined := BracketMatchup{
		Team1:       ordered[0].Team1,
		Team2:       ordered[0].Team2,
		IsMultiWeek: true,
	}
	for _, m := range ordered {
		combined.Score1 += m.Score1
		combined.Score2 += m.Score2
		combined.Weeks = append(combined.Weeks, m.Week)
	}

	switch {
	case combined.Score1 > combined.Score2:
		combined.Winner = OutcomeTeam1
	case combined.Score2 > combined.Score1:
		combined.Winner = OutcomeTeam2
	default:
		combined.Winner = OutcomeTie
	}

	return combined
}

func buildBracket(name string, topology []bracketRoundSpec, bySlot map[string][]Matchup) Bracket {
	bracket := Bracket{Name: name}
	for _, roundSpec := range topology {
		round := BracketRound{Title: roundSpec.title}
		for _, slot := range roundSpec.slots {
			matchup := CombineSeries(bySlot[slot.key])
			matchup.Label = slot.label
			round.Matchups = append(round.Matchups, matchup)
		}
		bracket.Rounds = append(bracket.Rounds, round)
	}
	return bracket
}

// BuildChampionshipBracket assembles the four-team title bracket from
// slot-tagged elimination matchups. Missing slots render as TBD.
func BuildChampionshipBracket(bySlot map[string][]Matchup) Bracket {
	return buildBracket("Championship", championshipTopology, bySlot)
}

// BuildConsolationBracket assembles the six-team consolation bracket.
func BuildConsolationBracket(bySlot map[string][]Matchup) Bracket {
	return buildBracket("Consolation", consolationTopology, bySlot)
}
