// League bootstrap: builds the initial snapshot before any season is
// simulated. Rosters, contracts, and coaches come from the injected
// generators; the engine only arranges them.

package league

import "fmt"

// TeamMeta is the static identity of one franchise, supplied by league
// configuration.
type TeamMeta struct {
	ID         TeamID
	City       string
	Nickname   string
	Conference Conference
	Division   int
}

// NewLeague assembles a fresh league for the given calendar year. The
// meta list must describe the full league (one entry per team).
func NewLeague(cfg Config, meta []TeamMeta, year int, gens Generators, prng *PartitionedRNG) (*LeagueState, error) {
	if len(meta) != cfg.NumTeams {
		return nil, fmt.Errorf("league meta describes %d teams, config wants %d", len(meta), cfg.NumTeams)
	}
	rng := prng.ForSubsystem(SubsystemGen)

	state := &LeagueState{
		Year:      year,
		Config:    cfg,
		Teams:     make(map[TeamID]*Team, cfg.NumTeams),
		Players:   make(map[PlayerID]*Player),
		Contracts: make(map[ContractID]*Contract),
		Coaches:   make(map[CoachID]*Coach),
	}

	for _, m := range meta {
		if _, dup := state.Teams[m.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", m.ID)
		}
		team := &Team{
			ID:       m.ID,
			City:     m.City,
			Nickname: m.Nickname,
			Division: Division{Conference: m.Conference, Index: m.Division},
		}

		roster := gens.Roster.GenerateRoster(m.ID, rng)
		contracts := gens.Contracts.GenerateRosterContracts(roster, m.ID, year, rng)
		for _, p := range roster {
			p.TeamID = m.ID
			state.Players[p.ID] = p
			team.Roster = append(team.Roster, p.ID)
		}
		for _, c := range contracts {
			state.Contracts[c.ID] = c
			if p, ok := state.Players[c.PlayerID]; ok {
				p.ContractID = c.ID
			}
		}

		coach := gens.Coaches.GenerateCoach(rng)
		coach.TeamID = m.ID
		state.Coaches[coach.ID] = coach
		team.CoachID = coach.ID

		state.Teams[m.ID] = team
	}

	return updateFinances(state, year), nil
}
