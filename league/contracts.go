// Stage 3: contract expiration. Every surviving contract burns one
// year; contracts at zero become void, the player's contract reference
// clears, and the player hits the open market.

package league

func expireContracts(state *LeagueState) (*LeagueState, []ContractID, []PlayerID) {
	next := state.shallowCopy()
	next.Contracts = cloneContracts(state.Contracts)
	next.Players = clonePlayers(state.Players)
	next.Teams = cloneTeams(state.Teams)

	var expired []ContractID
	var newFA []PlayerID

	for _, cid := range next.ContractIDs() {
		c := next.Contracts[cid]
		c.YearsRemaining--
		if c.YearsRemaining > 0 {
			continue
		}
		expired = append(expired, cid)
		delete(next.Contracts, cid)

		p, ok := next.Players[c.PlayerID]
		if !ok {
			// Already removed by an earlier stage; nothing to release.
			continue
		}
		p.ContractID = ""
		if p.TeamID != "" {
			if t, ok := next.Teams[p.TeamID]; ok {
				t.Roster = removeID(t.Roster, p.ID)
			}
			p.TeamID = ""
		}
		newFA = append(newFA, p.ID)
	}

	next.FreeAgents = append(append([]PlayerID(nil), next.FreeAgents...), newFA...)
	return next, expired, newFA
}

func removeID(ids []PlayerID, id PlayerID) []PlayerID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
