// Stage 8: finance update. Cap usage is recomputed from the now-final
// contract set for the given year; the engine reports space, it never
// enforces compliance, so negative space is a valid result.

package league

func updateFinances(state *LeagueState, forYear int) *LeagueState {
	next := state.shallowCopy()
	next.Teams = cloneTeams(state.Teams)

	used := make(map[TeamID]int64, len(next.Teams))
	for _, cid := range next.ContractIDs() {
		c := next.Contracts[cid]
		used[c.TeamID] += c.CapHitForYear(forYear)
	}
	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		t.Finances.CapLimit = next.Config.SalaryCap
		t.Finances.CapUsed = used[tid]
		t.Finances.CapSpace = next.Config.SalaryCap - used[tid] - t.Finances.DeadCap
	}
	return next
}

// CapUsage reports one team's current cap usage for a year straight
// from the contract set, bypassing the cached finances.
func CapUsage(state *LeagueState, id TeamID, year int) int64 {
	var sum int64
	for _, cid := range state.ContractIDs() {
		c := state.Contracts[cid]
		if c.TeamID == id {
			sum += c.CapHitForYear(year)
		}
	}
	return sum
}
