// Stage 5: the AI draft. Each team selects from the year's class across
// the configured rounds in draft order; selections become rostered
// players on rookie-scale contracts and the unselected remainder feeds
// free agency as UDFA candidates.

package league

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

func runDraft(state *LeagueState, order []TeamID, gens Generators, prng *PartitionedRNG) (*LeagueState, []DraftSelection, int) {
	rng := prng.ForSubsystem(SubsystemDraft)

	if len(state.DraftClass) == 0 || len(order) == 0 {
		return state, nil, 0
	}

	next := state.shallowCopy()
	next.Players = clonePlayers(state.Players)
	next.Contracts = cloneContracts(state.Contracts)
	next.Teams = cloneTeams(state.Teams)

	board := append([]Prospect(nil), state.DraftClass...)
	sort.Slice(board, func(i, j int) bool {
		if board[i].Potential != board[j].Potential {
			return board[i].Potential > board[j].Potential
		}
		if board[i].Overall != board[j].Overall {
			return board[i].Overall > board[j].Overall
		}
		return board[i].ID < board[j].ID
	})

	picks := BuildDraftPicks(order, state.Year, state.Config.DraftRounds)
	var selections []DraftSelection
	var usedPicks []DraftPick

	for _, pick := range picks {
		if len(board) == 0 {
			break
		}
		team, ok := next.Teams[pick.OwningTeam]
		if !ok {
			continue
		}

		idx := pickIndex(board, rng)
		prospect := board[idx]
		board = append(board[:idx], board[idx+1:]...)

		player := &Player{
			ID:        prospect.ID,
			Name:      prospect.Name,
			Position:  prospect.Position,
			Age:       prospect.Age,
			Overall:   prospect.Overall,
			Potential: prospect.Potential,
			TeamID:    team.ID,
			Injury:    Healthy,
		}
		contract := gens.Contracts.RookieContract(player, team.ID, state.Year+1, pick.Overall)
		player.ContractID = contract.ID

		next.Players[player.ID] = player
		next.Contracts[contract.ID] = contract
		team.Roster = append(team.Roster, player.ID)

		pick.PlayerID = player.ID
		usedPicks = append(usedPicks, pick)
		selections = append(selections, DraftSelection{Pick: pick, Player: player.ID})
	}

	// Unselected class members hit the market as UDFA candidates.
	undrafted := 0
	fa := append([]PlayerID(nil), next.FreeAgents...)
	for _, prospect := range board {
		player := &Player{
			ID:        prospect.ID,
			Name:      prospect.Name,
			Position:  prospect.Position,
			Age:       prospect.Age,
			Overall:   prospect.Overall,
			Potential: prospect.Potential,
			Injury:    Healthy,
		}
		next.Players[player.ID] = player
		fa = append(fa, player.ID)
		undrafted++
	}
	next.FreeAgents = fa
	next.DraftClass = nil
	next.Picks = usedPicks

	logrus.Debugf("draft %d: %d selections, %d UDFAs", state.Year, len(selections), undrafted)
	return next, selections, undrafted
}

// pickIndex chooses which board slot a team takes: usually the top
// prospect, occasionally a small reach further down.
func pickIndex(board []Prospect, rng *rand.Rand) int {
	window := 3
	if len(board) < window {
		window = len(board)
	}
	roll := rng.Float64()
	switch {
	case roll < 0.70 || window == 1:
		return 0
	case roll < 0.92 || window == 2:
		return 1
	default:
		return 2
	}
}
