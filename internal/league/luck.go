package league

import (
	"fmt"
	"sort"
)

// LuckRecord compares a team's actual weekly result against the record it
// would have posted had it played every other team that week. A same-score
// pairing counts as a loss on the true side for both teams, matching the
// league's published tables.
type LuckRecord struct {
	Team         string `json:"team"`
	Week         int    `json:"week"`
	ActualWins   int    `json:"actual_wins"`
	ActualLosses int    `json:"actual_losses"`
	TrueWins     int    `json:"true_wins"`
	TrueLosses   int    `json:"true_losses"`
	// Rank is the dense rank of the team's score among all scores that week:
	// equal scores share a rank and the next distinct score takes the next
	// sequential rank.
	Rank int `json:"rank"`
}

// WinPercentage is the team's actual win rate for the record's scope.
func (l LuckRecord) WinPercentage() float64 {
	total := l.ActualWins + l.ActualLosses
	if total == 0 {
		return 0
	}
	return float64(l.ActualWins) / float64(total)
}

// TruePercentage is the win rate against the full weekly field.
func (l LuckRecord) TruePercentage() float64 {
	total := l.TrueWins + l.TrueLosses
	if total == 0 {
		return 0
	}
	return float64(l.TrueWins) / float64(total)
}

// Luck is actual win rate minus true win rate; positive means favorable
// scheduling.
func (l LuckRecord) Luck() float64 {
	return l.WinPercentage() - l.TruePercentage()
}

// WeeklyLuck computes per-team, per-week luck records over every week with at
// least one decided or tied matchup. Output is ordered by week, then team.
func WeeklyLuck(matchups []Matchup) []LuckRecord {
	byWeek := make(map[int][]Matchup)
	var weeks []int
	for _, m := range matchups {
		if m.IsBye() || m.IsIncomplete() {
			continue
		}
		if _, ok := byWeek[m.Week]; !ok {
			weeks = append(weeks, m.Week)
		}
		byWeek[m.Week] = append(byWeek[m.Week], m)
	}
	sort.Ints(weeks)

	var records []LuckRecord
	for _, week := range weeks {
		weekMatchups := byWeek[week]

		scores := make(map[string]float64)
		for _, m := range weekMatchups {
			scores[m.Team1] = m.Score1
			scores[m.Team2] = m.Score2
		}

		teams := make([]string, 0, len(scores))
		for team := range scores {
			teams = append(teams, team)
		}
		sort.Strings(teams)

		ranks := denseRank(scores)

		for _, team := range teams {
			rec := LuckRecord{Team: team, Week: week, Rank: ranks[team]}

			for _, m := range weekMatchups {
				switch team {
				case m.Team1:
					if m.Score1 > m.Score2 {
						rec.ActualWins++
					} else {
						rec.ActualLosses++
					}
				case m.Team2:
					if m.Score2 > m.Score1 {
						rec.ActualWins++
					} else {
						rec.ActualLosses++
					}
				}
			}

			for _, other := range teams {
				if other == team {
					continue
				}
				if scores[team] > scores[other] {
					rec.TrueWins++
				} else {
					rec.TrueLosses++
				}
			}

			records = append(records, rec)
		}
	}

	return records
}

// denseRank assigns descending dense ranks to the week's scores: the highest
// distinct score is rank 1 and equal scores share a rank with no gaps.
func denseRank(scores map[string]float64) map[string]int {
	distinct := make([]float64, 0, len(scores))
	seen := make(map[float64]bool)
	for _, s := range scores {
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, s := range distinct {
		rankOf[s] = i + 1
	}

	ranks := make(map[string]int, len(scores))
	for team, s := range scores {
		ranks[team] = rankOf[s]
	}
	return ranks
}

// LuckTrendRow is one formatted line of the cumulative luck table: season-to-
// date percentages through the row's week alongside that week's own numbers.
type LuckTrendRow struct {
	Team          string `json:"team"`
	Week          int    `json:"week"`
	WinPct        string `json:"win_pct"`
	TruePct       string `json:"true_pct"`
	DeltaTrue     string `json:"delta_true"`
	Luck          string `json:"luck"`
	DeltaLuck     string `json:"delta_luck"`
	Trend         string `json:"trend"`
	WeeklyWinPct  string `json:"weekly_win_pct"`
	WeeklyTruePct string `json:"weekly_true_pct"`
	WeeklyLuck    string `json:"weekly_luck"`
}

const trendThreshold = 0.01

// CumulativeLuck accumulates weekly luck records per team across the season
// and emits a flat table sorted by team, then week. Trend reflects the change
// in cumulative luck versus the previous week: "up" above +0.01, "down" below
// -0.01, "stable" in between.
func CumulativeLuck(matchups []Matchup) []LuckTrendRow {
	weekly := WeeklyLuck(matchups)

	byTeamWeek := make(map[string]map[int]LuckRecord)
	weekSet := make(map[int]bool)
	var teams []string
	for _, rec := range weekly {
		if byTeamWeek[rec.Team] == nil {
			byTeamWeek[rec.Team] = make(map[int]LuckRecord)
			teams = append(teams, rec.Team)
		}
		byTeamWeek[rec.Team][rec.Week] = rec
		weekSet[rec.Week] = true
	}
	sort.Strings(teams)

	weeks := make([]int, 0, len(weekSet))
	for week := range weekSet {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	var rows []LuckTrendRow
	for _, team := range teams {
		var cumWins, cumLosses, cumTrueWins, cumTrueLosses int
		prevLuck := 0.0

		for _, week := range weeks {
			rec, ok := byTeamWeek[team][week]
			if !ok {
				continue
			}

			cumWins += rec.ActualWins
			cumLosses += rec.ActualLosses
			cumTrueWins += rec.TrueWins
			cumTrueLosses += rec.TrueLosses

			winPct := ratio(cumWins, cumLosses)
			truePct := ratio(cumTrueWins, cumTrueLosses)
			luck := winPct - truePct
			deltaLuck := luck - prevLuck

			deltaTrue := truePct
			if week > weeks[0] {
				deltaTrue = truePct - rec.TruePercentage()
			}

			trend := "stable"
			if deltaLuck > trendThreshold {
				trend = "up"
			} else if deltaLuck < -trendThreshold {
				trend = "down"
			}

			rows = append(rows, LuckTrendRow{
				Team:          team,
				Week:          week,
				WinPct:        formatPct(winPct),
				TruePct:       formatPct(truePct),
				DeltaTrue:     formatPct(deltaTrue),
				Luck:          formatPct(luck),
				DeltaLuck:     formatPct(deltaLuck),
				Trend:         trend,
				WeeklyWinPct:  formatPct(rec.WinPercentage()),
				WeeklyTruePct: formatPct(rec.TruePercentage()),
				WeeklyLuck:    formatPct(rec.Luck()),
			})

			prevLuck = luck
		}
	}

	return rows
}

func ratio(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
