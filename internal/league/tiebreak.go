package league

import "sort"

// SortStandings orders a full set of team records: teams are partitioned into
// groups sharing the same win count, groups are processed from the highest
// win count down, and applyTiebreak resolves the order within each group.
func SortStandings(teams []TeamRecord, h2h *HeadToHead) []TeamRecord {
	byWins := make(map[int][]TeamRecord)
	var winCounts []int
	for _, t := range teams {
		if _, ok := byWins[t.Wins]; !ok {
			winCounts = append(winCounts, t.Wins)
		}
		byWins[t.Wins] = append(byWins[t.Wins], t)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(winCounts)))

	sorted := make([]TeamRecord, 0, len(teams))
	for _, wins := range winCounts {
		sorted = append(sorted, applyTiebreak(byWins[wins], h2h)...)
	}
	return sorted
}

// applyTiebreak orders a group of teams holding an identical win count.
//
// Two teams: head-to-head decides only when one side won at least once and
// the other never did; otherwise points for (descending) then points against
// (ascending). If all three criteria tie the incoming order is kept.
//
// Three or more: each team's head-to-head record restricted to the group
// decides via a sweep, meaning zero restricted losses and at least one
// restricted win. Exactly one sweeper ranks first and the remainder re-enters the same
// algorithm; zero or multiple sweepers (a cycle, or teams that never met)
// abandon head-to-head for the whole group in favor of points.
func applyTiebreak(group []TeamRecord, h2h *HeadToHead) []TeamRecord {
	if len(group) <= 1 {
		return group
	}

	if len(group) == 2 {
		a, b := group[0], group[1]
		winsA, _ := h2h.Record(a.Team, b.Team)
		winsB, _ := h2h.Record(b.Team, a.Team)
		switch {
		case winsA > 0 && winsB == 0:
			return []TeamRecord{a, b}
		case winsB > 0 && winsA == 0:
			return []TeamRecord{b, a}
		}
		return sortByPoints(group)
	}

	names := make([]string, len(group))
	for i, t := range group {
		names[i] = t.Team
	}

	var sweepers []int
	for i, t := range group {
		wins, losses := h2h.RecordWithin(t.Team, names)
		if losses == 0 && wins > 0 {
			sweepers = append(sweepers, i)
		}
	}

	if len(sweepers) != 1 {
		// Nobody swept, or several did (only possible when some pairs never
		// played): no head-to-head ordering exists for the group.
		return sortByPoints(group)
	}

	sweeper := group[sweepers[0]]
	rest := make([]TeamRecord, 0, len(group)-1)
	for i, t := range group {
		if i != sweepers[0] {
			rest = append(rest, t)
		}
	}
	return append([]TeamRecord{sweeper}, applyTiebreak(rest, h2h)...)
}

// sortByPoints orders by points for descending, then points against
// ascending. Ties beyond that keep their incoming order.
func sortByPoints(group []TeamRecord) []TeamRecord {
	sorted := make([]TeamRecord, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PointsFor != sorted[j].PointsFor {
			return sorted[i].PointsFor > sorted[j].PointsFor
		}
		return sorted[i].PointsAgainst < sorted[j].PointsAgainst
	})
	return sorted
}
