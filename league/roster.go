// Stage 7: roster maintenance. Every team is trimmed to the active
// roster ceiling, cutting lowest-value players first (their remaining
// guarantees land in dead cap), then short rosters are topped up from
// whatever is left of the free-agent pool. The post-stage invariant is
// hard: no roster exceeds the ceiling.

package league

import (
	"sort"
)

func maintainRosters(state *LeagueState, gens Generators, prng *PartitionedRNG) (*LeagueState, []PlayerID) {
	rng := prng.ForSubsystem(SubsystemFreeAgency)

	next := state.shallowCopy()
	next.Players = clonePlayers(state.Players)
	next.Contracts = cloneContracts(state.Contracts)
	next.Teams = cloneTeams(state.Teams)

	var released []PlayerID
	limit := next.Config.RosterLimit

	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		for len(t.Roster) > limit {
			cut := lowestValuePlayer(next, t)
			if cut == "" {
				break
			}
			releasePlayer(next, t, cut)
			released = append(released, cut)
		}
	}

	// Fill round-robin so the leftover pool doesn't all land on one team.
	pool := append([]PlayerID(nil), next.FreeAgents...)
	sortByOverall(next, pool)
	for len(pool) > 0 {
		progressed := false
		for _, tid := range next.TeamIDs() {
			if len(pool) == 0 {
				break
			}
			t := next.Teams[tid]
			if len(t.Roster) >= limit {
				continue
			}
			pid := pool[0]
			pool = pool[1:]
			p, ok := next.Players[pid]
			if !ok {
				continue
			}
			contract := gens.Contracts.FreeAgentContract(p, tid, next.Year+1, rng)
			p.TeamID = tid
			p.ContractID = contract.ID
			next.Contracts[contract.ID] = contract
			t.Roster = append(t.Roster, pid)
			progressed = true
		}
		if !progressed {
			break
		}
	}
	next.FreeAgents = pool

	return next, released
}

// lowestValuePlayer picks the cut candidate: worst rating, oldest
// breaking ties. Empty when the roster has no resolvable players.
func lowestValuePlayer(state *LeagueState, t *Team) PlayerID {
	var worst PlayerID
	worstScore := 1 << 30
	for _, pid := range t.Roster {
		p, ok := state.Players[pid]
		if !ok {
			// Dangling reference: cut it first.
			return pid
		}
		score := p.Overall*10 - p.Age
		if score < worstScore || (score == worstScore && pid < worst) {
			worst = pid
			worstScore = score
		}
	}
	return worst
}

// releasePlayer drops the player to the free-agent pool and voids the
// contract, charging unpaid guarantees to dead cap.
func releasePlayer(state *LeagueState, t *Team, pid PlayerID) {
	t.Roster = removeID(t.Roster, pid)
	p, ok := state.Players[pid]
	if !ok {
		return
	}
	if c, ok := state.Contracts[p.ContractID]; ok {
		t.Finances.DeadCap += c.Guaranteed
		delete(state.Contracts, p.ContractID)
	}
	p.ContractID = ""
	p.TeamID = ""
	state.FreeAgents = append(state.FreeAgents, pid)
}

func sortByOverall(state *LeagueState, ids []PlayerID) {
	sort.Slice(ids, func(i, j int) bool {
		pi, iok := state.Players[ids[i]]
		pj, jok := state.Players[ids[j]]
		if iok != jok {
			return iok
		}
		if !iok {
			return ids[i] < ids[j]
		}
		if pi.Overall != pj.Overall {
			return pi.Overall > pj.Overall
		}
		return ids[i] < ids[j]
	})
}
