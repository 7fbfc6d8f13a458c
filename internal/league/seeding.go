package league

import "sort"

// SeedType classifies how a team earned its postseason position.
type SeedType string

const (
	SeedDivisionWinner SeedType = "division_winner"
	SeedWildcard       SeedType = "wildcard"
	SeedConsolation    SeedType = "consolation"
)

// SeedAssignment places one team in the postseason field.
type SeedAssignment struct {
	Team          string   `json:"team"`
	Seed          int      `json:"seed"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	PointsFor     float64  `json:"points_for"`
	PointsAgainst float64  `json:"points_against"`
	Division      string   `json:"division"`
	SeedType      SeedType `json:"seed_type"`
}

// wildcardSlots is the number of at-large playoff berths behind the division
// winners.
const wildcardSlots = 2

// ComputeSeeding derives playoff and consolation seed lists from regular
// season matchups and a team-to-division assignment. Division leaders take
// the top seeds (tiebroken among themselves), the best two remaining teams
// across divisions take the wildcard seeds, and everyone else is seeded into
// the consolation bracket in sorted order.
//
// A nil or empty division assignment means seeding is not configured for the
// season; both lists come back empty rather than failing.
func ComputeSeeding(regularSeason []Matchup, divisions map[string]string) (playoff, consolation []SeedAssignment) {
	if len(divisions) == 0 {
		return nil, nil
	}

	standings := ComputeStandings(regularSeason)
	h2h := BuildHeadToHead(regularSeason)

	byDivision := make(map[string][]TeamRecord)
	var divisionNames []string
	for _, rec := range standings {
		division, ok := divisions[rec.Team]
		if !ok {
			continue
		}
		if _, seen := byDivision[division]; !seen {
			divisionNames = append(divisionNames, division)
		}
		byDivision[division] = append(byDivision[division], rec)
	}
	sort.Strings(divisionNames)

	var leaders []TeamRecord
	var remaining []TeamRecord
	for _, name := range divisionNames {
		ordered := SortStandings(byDivision[name], h2h)
		leaders = append(leaders, ordered[0])
		remaining = append(remaining, ordered[1:]...)
	}
	if len(leaders) == 0 {
		return nil, nil
	}

	// A cross-division tie between leaders is resolved with the same rules as
	// any tied group.
	leaders = SortStandings(leaders, h2h)
	remaining = SortStandings(remaining, h2h)

	seed := 1
	assign := func(rec TeamRecord, seedType SeedType) SeedAssignment {
		a := SeedAssignment{
			Team:          rec.Team,
			Seed:          seed,
			Wins:          rec.Wins,
			Losses:        rec.Losses,
			PointsFor:     rec.PointsFor,
			PointsAgainst: rec.PointsAgainst,
			Division:      divisions[rec.Team],
			SeedType:      seedType,
		}
		seed++
		return a
	}

	for _, rec := range leaders {
		playoff = append(playoff, assign(rec, SeedDivisionWinner))
	}
	for i, rec := range remaining {
		if i < wildcardSlots {
			playoff = append(playoff, assign(rec, SeedWildcard))
		} else {
			consolation = append(consolation, assign(rec, SeedConsolation))
		}
	}

	return playoff, consolation
}
