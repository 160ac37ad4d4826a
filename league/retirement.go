// Stage 2: retirement. The per-player probability rises sharply with
// age and falls with remaining role value. A retiring player is removed
// atomically: from the player map, the contract map, and every roster,
// so no dangling reference survives the stage.

package league

// retirementProbability returns the chance the player hangs it up this
// offseason.
func retirementProbability(p *Player) float64 {
	var base float64
	switch {
	case p.Age < 30:
		base = 0.004
	case p.Age < 35:
		base = 0.05 * float64(p.Age-29)
	default:
		base = 0.25 + 0.12*float64(p.Age-34)
	}
	// Remaining role value keeps good players around longer.
	value := float64(p.Overall-60) * 0.004
	if value > 0 {
		base -= value
	}
	if base < 0 {
		base = 0
	}
	if base > 0.95 {
		base = 0.95
	}
	return base
}

func applyRetirements(state *LeagueState, prng *PartitionedRNG) (*LeagueState, []PlayerID) {
	rng := prng.ForSubsystem(SubsystemRetirement)

	var retiring []PlayerID
	for _, id := range state.PlayerIDs() {
		if rng.Float64() < retirementProbability(state.Players[id]) {
			retiring = append(retiring, id)
		}
	}
	if len(retiring) == 0 {
		return state, nil
	}
	return removePlayers(state, retiring), retiring
}

// removePlayers strips the given players from every structure that can
// reference them. Ids not present are skipped.
func removePlayers(state *LeagueState, ids []PlayerID) *LeagueState {
	gone := make(map[PlayerID]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}

	next := state.shallowCopy()
	next.Players = clonePlayers(state.Players)
	next.Contracts = cloneContracts(state.Contracts)
	next.Teams = cloneTeams(state.Teams)

	for _, id := range ids {
		delete(next.Players, id)
	}
	for _, cid := range next.ContractIDs() {
		if gone[next.Contracts[cid].PlayerID] {
			delete(next.Contracts, cid)
		}
	}
	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		kept := t.Roster[:0]
		for _, pid := range t.Roster {
			if !gone[pid] {
				kept = append(kept, pid)
			}
		}
		t.Roster = kept
	}
	kept := next.FreeAgents[:0:0]
	for _, pid := range next.FreeAgents {
		if !gone[pid] {
			kept = append(kept, pid)
		}
	}
	next.FreeAgents = kept
	return next
}
