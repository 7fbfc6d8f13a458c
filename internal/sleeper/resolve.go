package sleeper

import (
	"fmt"
	"sort"

	"github.com/fantasylab/league-stats-mcp-server/internal/league"
)

// TeamNames maps roster IDs to display names. The owner's custom team name
// wins when set, then the owner's display name. Rosters with no resolvable
// owner fall back to a numbered placeholder.
func TeamNames(rosters []Roster, users []User) map[int]string {
	byUserID := make(map[string]User, len(users))
	for _, u := range users {
		byUserID[u.UserID] = u
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		name := fmt.Sprintf("Team %d", r.RosterID)
		if u, ok := byUserID[r.OwnerID]; ok {
			if u.Metadata.TeamName != "" {
				name = u.Metadata.TeamName
			} else if u.DisplayName != "" {
				name = u.DisplayName
			}
		}
		names[r.RosterID] = name
	}
	return names
}

// ResolveWeekMatchups pairs the per-roster rows the Sleeper API returns for a
// week into named match records. Rosters that share a matchup ID played each
// other; a roster with no partner gets a bye. A pairing where neither side
// has scored yet is recorded as unplayed so downstream stats skip it.
func ResolveWeekMatchups(week int, matchups []Matchup, names map[int]string) []league.Matchup {
	byMatchupID := make(map[int][]Matchup)
	var byes []Matchup
	for _, m := range matchups {
		if m.MatchupID == 0 {
			byes = append(byes, m)
			continue
		}
		byMatchupID[m.MatchupID] = append(byMatchupID[m.MatchupID], m)
	}

	matchupIDs := make([]int, 0, len(byMatchupID))
	for id := range byMatchupID {
		matchupIDs = append(matchupIDs, id)
	}
	sort.Ints(matchupIDs)

	var resolved []league.Matchup
	for _, id := range matchupIDs {
		pair := byMatchupID[id]
		sort.Slice(pair, func(i, j int) bool { return pair[i].RosterID < pair[j].RosterID })

		if len(pair) != 2 {
			// A matchup ID with a single roster is a scheduling bye.
			for _, m := range pair {
				byes = append(byes, m)
			}
			continue
		}

		a, b := pair[0], pair[1]
		if a.Points == 0 && b.Points == 0 {
			resolved = append(resolved, league.Matchup{
				Week:  week,
				Team1: teamName(names, a.RosterID),
				Team2: league.TeamUnplayed,
			})
			continue
		}

		resolved = append(resolved, league.Matchup{
			Week:   week,
			Team1:  teamName(names, a.RosterID),
			Score1: a.Points,
			Team2:  teamName(names, b.RosterID),
			Score2: b.Points,
		})
	}

	sort.Slice(byes, func(i, j int) bool { return byes[i].RosterID < byes[j].RosterID })
	for _, m := range byes {
		resolved = append(resolved, league.Matchup{
			Week:   week,
			Team1:  teamName(names, m.RosterID),
			Score1: m.Points,
			Team2:  league.TeamBye,
		})
	}

	return resolved
}

func teamName(names map[int]string, rosterID int) string {
	if name, ok := names[rosterID]; ok {
		return name
	}
	return fmt.Sprintf("Team %d", rosterID)
}
