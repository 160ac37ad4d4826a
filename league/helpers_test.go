package league

import (
	"fmt"
	"math/rand"
	"testing"
)

// testGenerator is a minimal deterministic implementation of the
// generation collaborators, enough to bootstrap and run full seasons.
type testGenerator struct {
	playerSeq   int
	coachSeq    int
	contractSeq int
	rosterSize  int
	classSize   int
}

func newTestGenerator() *testGenerator {
	return &testGenerator{rosterSize: 53, classSize: 250}
}

func (g *testGenerator) GenerateRoster(teamID TeamID, rng *rand.Rand) []*Player {
	roster := make([]*Player, 0, g.rosterSize)
	for i := 0; i < g.rosterSize; i++ {
		g.playerSeq++
		roster = append(roster, &Player{
			ID:        PlayerID(fmt.Sprintf("tp%06d", g.playerSeq)),
			Name:      fmt.Sprintf("Player %d", g.playerSeq),
			Position:  Positions[i%len(Positions)],
			Age:       RookieMinimumAge + rng.Intn(12),
			Overall:   50 + rng.Intn(40),
			Potential: 90,
			Injury:    Healthy,
		})
	}
	return roster
}

func (g *testGenerator) GenerateDraftClass(year int, rng *rand.Rand) []Prospect {
	class := make([]Prospect, 0, g.classSize)
	for i := 0; i < g.classSize; i++ {
		g.playerSeq++
		ovr := 45 + rng.Intn(35)
		class = append(class, Prospect{
			ID:        PlayerID(fmt.Sprintf("tp%06d", g.playerSeq)),
			Name:      fmt.Sprintf("Prospect %d", g.playerSeq),
			Position:  Positions[i%len(Positions)],
			Age:       RookieMinimumAge + rng.Intn(3),
			Overall:   ovr,
			Potential: ovr + rng.Intn(15),
		})
	}
	return class
}

func (g *testGenerator) GenerateRosterContracts(roster []*Player, teamID TeamID, year int, rng *rand.Rand) []*Contract {
	out := make([]*Contract, 0, len(roster))
	for _, p := range roster {
		yearsLeft := 1 + rng.Intn(4)
		out = append(out, g.contract(p.ID, teamID, year, yearsLeft, 2_000_000))
	}
	return out
}

func (g *testGenerator) RookieContract(p *Player, teamID TeamID, year, overallPick int) *Contract {
	return g.contract(p.ID, teamID, year, 4, 1_000_000)
}

func (g *testGenerator) FreeAgentContract(p *Player, teamID TeamID, year int, rng *rand.Rand) *Contract {
	return g.contract(p.ID, teamID, year, 1+rng.Intn(2), 1_500_000)
}

func (g *testGenerator) contract(pid PlayerID, teamID TeamID, year, years int, perYear int64) *Contract {
	g.contractSeq++
	hits := make([]int64, years)
	for i := range hits {
		hits[i] = perYear
	}
	return &Contract{
		ID:             ContractID(fmt.Sprintf("tk%06d", g.contractSeq)),
		PlayerID:       pid,
		TeamID:         teamID,
		SignedYear:     year,
		YearsRemaining: years,
		CapHits:        hits,
		Guaranteed:     perYear,
	}
}

func (g *testGenerator) GenerateCoach(rng *rand.Rand) *Coach {
	g.coachSeq++
	return &Coach{
		ID:     CoachID(fmt.Sprintf("tc%04d", g.coachSeq)),
		Name:   fmt.Sprintf("Coach %d", g.coachSeq),
		Rating: 50 + rng.Intn(45),
		Age:    40 + rng.Intn(20),
	}
}

func testGenerators(g *testGenerator) Generators {
	return Generators{Roster: g, DraftClass: g, Contracts: g, Coaches: g}
}

// testMeta builds the standard 32-team layout with synthetic ids.
func testMeta() []TeamMeta {
	var meta []TeamMeta
	seq := 0
	for _, conf := range Conferences {
		for div := 0; div < 4; div++ {
			for k := 0; k < 4; k++ {
				seq++
				meta = append(meta, TeamMeta{
					ID:         TeamID(fmt.Sprintf("T%02d", seq)),
					City:       fmt.Sprintf("City %d", seq),
					Nickname:   fmt.Sprintf("Club %d", seq),
					Conference: conf,
					Division:   div,
				})
			}
		}
	}
	return meta
}

// newTestLeague bootstraps a full 32-team league for the given seed.
func newTestLeague(t *testing.T, seed int64, year int) (*LeagueState, Generators, *PartitionedRNG) {
	t.Helper()
	gen := newTestGenerator()
	gens := testGenerators(gen)
	prng := NewPartitionedRNG(NewSimulationKey(seed))
	state, err := NewLeague(DefaultConfig(), testMeta(), year, gens, prng)
	if err != nil {
		t.Fatalf("NewLeague: %v", err)
	}
	return state, gens, prng
}

// playSeason generates and simulates one regular season, returning the
// state with a completed schedule.
func playSeason(t *testing.T, state *LeagueState, prng *PartitionedRNG) *LeagueState {
	t.Helper()
	state = resetCurrentRecords(state)
	state.Schedule = GenerateSchedule(state, nil, prng.ForSubsystem(SubsystemSchedule))
	return simulateRegularSeason(state, prng)
}
