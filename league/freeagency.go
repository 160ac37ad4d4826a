// Stage 6: AI free agency. Expired-contract players and UDFAs are
// distributed to teams through simulated bidding: every team with an
// open roster slot scores each agent and the high bid signs the player
// to concrete contract terms. Low-value agents can go unsigned and
// remain in the pool for roster maintenance.

package league

import (
	"math/rand"
	"sort"
)

func runFreeAgency(state *LeagueState, gens Generators, prng *PartitionedRNG) (*LeagueState, []Signing) {
	rng := prng.ForSubsystem(SubsystemFreeAgency)

	if len(state.FreeAgents) == 0 {
		return state, nil
	}

	next := state.shallowCopy()
	next.Players = clonePlayers(state.Players)
	next.Contracts = cloneContracts(state.Contracts)
	next.Teams = cloneTeams(state.Teams)

	// Best agents come off the board first.
	pool := append([]PlayerID(nil), next.FreeAgents...)
	sort.Slice(pool, func(i, j int) bool {
		pi, iok := next.Players[pool[i]]
		pj, jok := next.Players[pool[j]]
		if iok != jok {
			return iok
		}
		if !iok {
			return pool[i] < pool[j]
		}
		if pi.Overall != pj.Overall {
			return pi.Overall > pj.Overall
		}
		return pool[i] < pool[j]
	})

	teamIDs := next.TeamIDs()
	var signings []Signing
	var unsigned []PlayerID

	for _, pid := range pool {
		p, ok := next.Players[pid]
		if !ok {
			continue
		}

		winner := bestBid(next, teamIDs, p, rng)
		if winner == "" {
			unsigned = append(unsigned, pid)
			continue
		}

		team := next.Teams[winner]
		contract := gens.Contracts.FreeAgentContract(p, winner, state.Year+1, rng)
		p.TeamID = winner
		p.ContractID = contract.ID
		next.Contracts[contract.ID] = contract
		team.Roster = append(team.Roster, pid)

		perYear := int64(0)
		if len(contract.CapHits) > 0 {
			perYear = contract.CapHits[0]
		}
		signings = append(signings, Signing{
			Player:   pid,
			Team:     winner,
			Contract: contract.ID,
			Years:    contract.YearsRemaining,
			PerYear:  perYear,
		})
	}

	next.FreeAgents = unsigned
	return next, signings
}

// bestBid scores every team with an open slot and returns the winner,
// or empty when no team bids. Bids weigh cap room, roster shortage, and
// noise; marginal players draw thinner markets.
func bestBid(state *LeagueState, teamIDs []TeamID, p *Player, rng *rand.Rand) TeamID {
	var winner TeamID
	best := 0.0
	for _, tid := range teamIDs {
		t := state.Teams[tid]
		if len(t.Roster) >= state.Config.RosterLimit {
			continue
		}
		interest := float64(p.Overall-45) / 10.0
		if interest <= 0 {
			continue
		}
		bid := interest +
			float64(t.Finances.CapSpace)/100_000_000.0 +
			float64(state.Config.RosterLimit-len(t.Roster))/10.0 +
			rng.Float64()*2.0
		if bid > best {
			best = bid
			winner = tid
		}
	}
	return winner
}
