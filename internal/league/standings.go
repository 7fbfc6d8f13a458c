package league

import "sort"

// TeamRecord is a team's accumulated regular standings line. Points are
// accumulated only over non-bye, non-incomplete matchups.
type TeamRecord struct {
	Team          string  `json:"team"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// WinPercentage returns wins/(wins+losses), or 0 for a team with no decided
// games.
func (r TeamRecord) WinPercentage() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

// ComputeStandings accumulates win/loss/points records from a season's
// matchups. Byes and incomplete matchups are skipped; a tie awards points but
// neither a win nor a loss. The result is sorted by wins descending with
// alphabetical order within equal win counts. Tiebreak resolution is a
// separate pass (see SortStandings).
func ComputeStandings(matchups []Matchup) []TeamRecord {
	records := make(map[string]*TeamRecord)

	ensure := func(team string) *TeamRecord {
		if r, ok := records[team]; ok {
			return r
		}
		r := &TeamRecord{Team: team}
		records[team] = r
		return r
	}

	for _, m := range matchups {
		if m.IsBye() || m.IsIncomplete() {
			continue
		}

		r1 := ensure(m.Team1)
		r2 := ensure(m.Team2)

		r1.PointsFor += m.Score1
		r1.PointsAgainst += m.Score2
		r2.PointsFor += m.Score2
		r2.PointsAgainst += m.Score1

		switch m.Winner() {
		case OutcomeTeam1:
			r1.Wins++
			r2.Losses++
		case OutcomeTeam2:
			r2.Wins++
			r1.Losses++
		}
	}

	standings := make([]TeamRecord, 0, len(records))
	for _, r := range records {
		standings = append(standings, *r)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Team < standings[j].Team
	})

	return standings
}
