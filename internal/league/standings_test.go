package league

import "testing"

func TestComputeStandings_Accumulation(t *testing.T) {
	matchups := []Matchup{
		{Week: 1, Team1: "Alpha", Score1: 100, Team2: "Bravo", Score2: 90},
		{Week: 1, Team1: "Charlie", Score1: 80, Team2: "Delta", Score2: 95},
		{Week: 2, Team1: "Alpha", Score1: 110, Team2: "Charlie", Score2: 85},
		{Week: 2, Team1: "Bravo", Score1: 70, Team2: "Delta", Score2: 75},
	}

	standings := ComputeStandings(matchups)

	if len(standings) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(standings))
	}

	records := make(map[string]TeamRecord)
	for _, r := range standings {
		records[r.Team] = r
	}

	alpha := records["Alpha"]
	if alpha.Wins != 2 || alpha.Losses != 0 {
		t.Errorf("Alpha W/L: want 2/0, got %d/%d", alpha.Wins, alpha.Losses)
	}
	if alpha.PointsFor != 210 || alpha.PointsAgainst != 175 {
		t.Errorf("Alpha PF/PA: want 210/175, got %.1f/%.1f", alpha.PointsFor, alpha.PointsAgainst)
	}

	// Wins and losses across the league both equal the decided match count.
	totalWins, totalLosses := 0, 0
	for _, r := range standings {
		totalWins += r.Wins
		totalLosses += r.Losses
	}
	if totalWins != 4 || totalLosses != 4 {
		t.Errorf("league totals: want 4 wins and 4 losses, got %d/%d", totalWins, totalLosses)
	}

	// Sorted by wins descending.
	for i := 1; i < len(standings); i++ {
		if standings[i].Wins > standings[i-1].Wins {
			t.Errorf("standings not sorted by wins: %v before %v", standings[i-1], standings[i])
		}
	}
}

func TestComputeStandings_SkipsByesAndIncomplete(t *testing.T) {
	matchups := []Matchup{
		{Week: 1, Team1: "Alpha", Score1: 100, Team2: TeamBye},
		{Week: 1, Team1: "Bravo", Score1: 0, Team2: TeamUnplayed},
		{Week: 2, Team1: "Alpha", Score1: 90, Team2: "Bravo", Score2: 80},
	}

	standings := ComputeStandings(matchups)

	if len(standings) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(standings))
	}
	for _, r := range standings {
		if r.Wins+r.Losses != 1 {
			t.Errorf("%s games: want 1 decided game, got %d", r.Team, r.Wins+r.Losses)
		}
	}

	records := make(map[string]TeamRecord)
	for _, r := range standings {
		records[r.Team] = r
	}
	if records["Alpha"].PointsFor != 90 {
		t.Errorf("Alpha PF should exclude bye week: want 90, got %.1f", records["Alpha"].PointsFor)
	}
}

func TestComputeStandings_TieAwardsNeither(t *testing.T) {
	matchups := []Matchup{
		{Week: 1, Team1: "Alpha", Score1: 100, Team2: "Bravo", Score2: 100},
	}

	standings := ComputeStandings(matchups)

	for _, r := range standings {
		if r.Wins != 0 || r.Losses != 0 {
			t.Errorf("%s: tie should award neither win nor loss, got %d/%d", r.Team, r.Wins, r.Losses)
		}
		if r.PointsFor != 100 || r.PointsAgainst != 100 {
			t.Errorf("%s: tie should still accumulate points, got %.1f/%.1f", r.Team, r.PointsFor, r.PointsAgainst)
		}
		if r.WinPercentage() != 0 {
			t.Errorf("%s: win percentage with no decided games should be 0, got %f", r.Team, r.WinPercentage())
		}
	}
}
