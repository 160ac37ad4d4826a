// Package gen is the default implementation of the engine's generation
// collaborators: rosters, draft classes, contracts, and coaches. The
// engine treats these as black boxes; anything producing structurally
// valid output (unique ids, known positions, legal ages) can replace
// this package.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/j-r-j/Gm-sim-sub016/league"
)

// rosterPlan is the position distribution of a generated 53-man roster.
var rosterPlan = []struct {
	pos   league.Position
	count int
}{
	{league.PosQB, 3},
	{league.PosRB, 4},
	{league.PosWR, 7},
	{league.PosTE, 3},
	{league.PosOL, 9},
	{league.PosDL, 8},
	{league.PosLB, 7},
	{league.PosCB, 6},
	{league.PosS, 4},
	{league.PosK, 1},
	{league.PosP, 1},
}

// classSize is the number of prospects in one draft class: seven rounds
// of selections plus a UDFA tail.
const classSize = 260

// Generator implements league.RosterGenerator, DraftClassGenerator,
// ContractGenerator, and CoachGenerator with counter-based ids, so a
// fixed call order yields a fixed entity stream.
//
// Not safe for concurrent use.
type Generator struct {
	playerSeq   int
	coachSeq    int
	contractSeq int
}

// New returns a fresh Generator with its id counters at zero.
func New() *Generator {
	return &Generator{}
}

func (g *Generator) nextPlayerID() league.PlayerID {
	g.playerSeq++
	return league.PlayerID(fmt.Sprintf("p%06d", g.playerSeq))
}

func (g *Generator) nextCoachID() league.CoachID {
	g.coachSeq++
	return league.CoachID(fmt.Sprintf("c%04d", g.coachSeq))
}

func (g *Generator) nextContractID() league.ContractID {
	g.contractSeq++
	return league.ContractID(fmt.Sprintf("k%06d", g.contractSeq))
}

// GeneratePlayer produces one veteran at the given position.
func (g *Generator) GeneratePlayer(pos league.Position, rng *rand.Rand) *league.Player {
	overall := clamp(int(rng.NormFloat64()*8+68), 45, 92)
	age := league.RookieMinimumAge + rng.Intn(13)
	return &league.Player{
		ID:        g.nextPlayerID(),
		Name:      randomName(rng),
		Position:  pos,
		Age:       age,
		Experience: maxInt(0, age-league.RookieMinimumAge-rng.Intn(2)),
		Overall:   overall,
		Potential: clamp(overall+rng.Intn(12), overall, 99),
		Injury:    league.Healthy,
	}
}

// GenerateRoster produces a full roster following the position plan.
func (g *Generator) GenerateRoster(teamID league.TeamID, rng *rand.Rand) []*league.Player {
	var roster []*league.Player
	for _, slot := range rosterPlan {
		for i := 0; i < slot.count; i++ {
			roster = append(roster, g.GeneratePlayer(slot.pos, rng))
		}
	}
	return roster
}

// GenerateDraftClass produces one year's prospect class. Ratings skew
// low with a thin elite tier, mirroring a real class shape.
func (g *Generator) GenerateDraftClass(year int, rng *rand.Rand) []league.Prospect {
	class := make([]league.Prospect, 0, classSize)
	for i := 0; i < classSize; i++ {
		overall := clamp(int(rng.NormFloat64()*7+58), 40, 82)
		class = append(class, league.Prospect{
			ID:        g.nextPlayerID(),
			Name:      randomName(rng),
			Position:  league.Positions[rng.Intn(len(league.Positions))],
			Age:       league.RookieMinimumAge + rng.Intn(3),
			Overall:   overall,
			Potential: clamp(overall+4+rng.Intn(18), overall, 97),
		})
	}
	return class
}

// GenerateRosterContracts signs a bootstrap roster to staggered deals
// so expirations spread across the first few simulated offseasons.
func (g *Generator) GenerateRosterContracts(roster []*league.Player, teamID league.TeamID, year int, rng *rand.Rand) []*league.Contract {
	contracts := make([]*league.Contract, 0, len(roster))
	for _, p := range roster {
		years := 1 + rng.Intn(4)
		perYear := veteranSalary(p.Overall)
		hits := make([]int64, years)
		for i := range hits {
			hits[i] = perYear
		}
		contracts = append(contracts, &league.Contract{
			ID:             g.nextContractID(),
			PlayerID:       p.ID,
			TeamID:         teamID,
			SignedYear:     year,
			YearsRemaining: years,
			CapHits:        hits,
			Guaranteed:     perYear * int64(years) / 2,
		})
	}
	return contracts
}

// RookieContract is the four-year rookie-scale deal for a draftee;
// value slides with the overall pick number.
func (g *Generator) RookieContract(p *league.Player, teamID league.TeamID, year, overallPick int) *league.Contract {
	perYear := int64(8_500_000) - int64(overallPick-1)*34_000
	if perYear < 850_000 {
		perYear = 850_000
	}
	hits := []int64{perYear, perYear, perYear, perYear}
	return &league.Contract{
		ID:             g.nextContractID(),
		PlayerID:       p.ID,
		TeamID:         teamID,
		SignedYear:     year,
		YearsRemaining: len(hits),
		CapHits:        hits,
		Guaranteed:     perYear * 2,
	}
}

// FreeAgentContract produces market terms for a free-agent signing.
func (g *Generator) FreeAgentContract(p *league.Player, teamID league.TeamID, year int, rng *rand.Rand) *league.Contract {
	years := 1 + rng.Intn(3)
	perYear := veteranSalary(p.Overall)
	hits := make([]int64, years)
	for i := range hits {
		hits[i] = perYear
	}
	return &league.Contract{
		ID:             g.nextContractID(),
		PlayerID:       p.ID,
		TeamID:         teamID,
		SignedYear:     year,
		YearsRemaining: years,
		CapHits:        hits,
		Guaranteed:     perYear * int64(years) / 3,
	}
}

// GenerateCoach produces a replacement head coach.
func (g *Generator) GenerateCoach(rng *rand.Rand) *league.Coach {
	return &league.Coach{
		ID:     g.nextCoachID(),
		Name:   randomName(rng),
		Rating: 55 + rng.Intn(36),
		Age:    38 + rng.Intn(28),
	}
}

// veteranSalary maps a composite rating to a per-year cap hit in the
// engine's opaque currency units.
func veteranSalary(overall int) int64 {
	base := int64(900_000)
	over := overall - 45
	if over < 0 {
		over = 0
	}
	return base + int64(over*over)*9_000
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
