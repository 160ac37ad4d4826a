// Black-box generation contracts. The engine only requires structurally
// valid output: unique ids, known positions, ages at or above the rookie
// minimum. The default in-repo implementations live in league/gen.

package league

import "math/rand"

// RosterGenerator produces a team's initial roster.
type RosterGenerator interface {
	GenerateRoster(teamID TeamID, rng *rand.Rand) []*Player
}

// DraftClassGenerator produces one year's prospect class.
type DraftClassGenerator interface {
	GenerateDraftClass(year int, rng *rand.Rand) []Prospect
}

// ContractGenerator produces contracts for a roster, plus the contract
// terms for draftees and free-agent signings. Cap figures are opaque
// integer currency units to the engine.
type ContractGenerator interface {
	GenerateRosterContracts(roster []*Player, teamID TeamID, year int, rng *rand.Rand) []*Contract
	RookieContract(p *Player, teamID TeamID, year, overallPick int) *Contract
	FreeAgentContract(p *Player, teamID TeamID, year int, rng *rand.Rand) *Contract
}

// CoachGenerator produces replacement head coaches.
type CoachGenerator interface {
	GenerateCoach(rng *rand.Rand) *Coach
}

// Generators bundles the collaborator set the engine consumes.
type Generators struct {
	Roster     RosterGenerator
	DraftClass DraftClassGenerator
	Contracts  ContractGenerator
	Coaches    CoachGenerator
}
