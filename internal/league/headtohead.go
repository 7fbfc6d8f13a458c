package league

// h2hCell holds one directed pairwise record.
type h2hCell struct {
	wins   int
	losses int
}

// HeadToHead holds pairwise win/loss counts between every pair of teams,
// stored as a flat table over a dense team index so lookups on the tiebreak
// path avoid repeated string hashing.
type HeadToHead struct {
	teams []string
	index map[string]int
	cells []h2hCell
}

// BuildHeadToHead populates pairwise records from decided matchups only; a
// tie contributes to neither side. Every decided matchup contributes exactly
// one win and one loss across the two directed entries.
func BuildHeadToHead(matchups []Matchup) *HeadToHead {
	h := &HeadToHead{index: make(map[string]int)}

	for _, m := range matchups {
		if m.IsBye() || m.IsIncomplete() {
			continue
		}
		h.intern(m.Team1)
		h.intern(m.Team2)
	}

	n := len(h.teams)
	h.cells = make([]h2hCell, n*n)

	for _, m := range matchups {
		if !m.IsDecided() {
			continue
		}
		i, j := h.index[m.Team1], h.index[m.Team2]
		if m.Winner() == OutcomeTeam1 {
			h.cells[i*n+j].wins++
			h.cells[j*n+i].losses++
		} else {
			h.cells[j*n+i].wins++
			h.cells[i*n+j].losses++
		}
	}

	return h
}

func (h *HeadToHead) intern(team string) int {
	if idx, ok := h.index[team]; ok {
		return idx
	}
	idx := len(h.teams)
	h.teams = append(h.teams, team)
	h.index[team] = idx
	return idx
}

// Record returns team's wins and losses against opponent. Unknown teams have
// an empty record.
func (h *HeadToHead) Record(team, opponent string) (wins, losses int) {
	i, ok1 := h.index[team]
	j, ok2 := h.index[opponent]
	if !ok1 || !ok2 || i == j {
		return 0, 0
	}
	cell := h.cells[i*len(h.teams)+j]
	return cell.wins, cell.losses
}

// RecordWithin returns team's combined record against every opponent in the
// given group, excluding itself. Used for restricted sweep detection among
// tied teams.
func (h *HeadToHead) RecordWithin(team string, group []string) (wins, losses int) {
	for _, opponent := range group {
		if opponent == team {
			continue
		}
		w, l := h.Record(team, opponent)
		wins += w
		losses += l
	}
	return wins, losses
}
