// The offseason pipeline: eight stages applied in a fixed order, each a
// pure transformation from one snapshot to the next. The order is load
// bearing (contracts expire before the draft signs new ones; coaches
// change before draft evaluation) and matches the league calendar:
// progression, retirement, contract expiration, coaching changes, draft,
// free agency, roster maintenance, finance update. Stages tolerate
// partially-inconsistent intermediate state: a missing id is skipped,
// never a panic, and an empty stage result never blocks later stages.

package league

import (
	"github.com/sirupsen/logrus"
)

// CoachingChange records one staff turnover with explicit before/after ids.
type CoachingChange struct {
	Team     TeamID
	OldCoach CoachID
	NewCoach CoachID
}

// DraftSelection records one used draft pick.
type DraftSelection struct {
	Pick   DraftPick
	Player PlayerID
}

// Signing records one free-agency signing.
type Signing struct {
	Player   PlayerID
	Team     TeamID
	Contract ContractID
	Years    int
	PerYear  int64
}

// OffseasonResult aggregates what the eight stages did.
type OffseasonResult struct {
	Retirements     []PlayerID
	ExpiredContracts []ContractID
	NewFreeAgents   []PlayerID
	CoachingChanges []CoachingChange
	Selections      []DraftSelection
	UndraftedCount  int
	Signings        []Signing
	Releases        []PlayerID
}

// RunOffseason applies the eight stages in order and returns the new
// snapshot plus the stage results. draftOrder is the completed order
// from ComputeDraftOrder; standings drive coaching-change odds.
func RunOffseason(state *LeagueState, draftOrder []TeamID, st *Standings, gens Generators, rng *PartitionedRNG) (*LeagueState, *OffseasonResult) {
	res := &OffseasonResult{}

	state = applyProgression(state, rng)

	state, res.Retirements = applyRetirements(state, rng)
	logrus.Debugf("offseason %d: %d retirements", state.Year, len(res.Retirements))

	state, res.ExpiredContracts, res.NewFreeAgents = expireContracts(state)
	logrus.Debugf("offseason %d: %d contracts expired", state.Year, len(res.ExpiredContracts))

	state, res.CoachingChanges = applyCoachingChanges(state, st, gens, rng)

	state, res.Selections, res.UndraftedCount = runDraft(state, draftOrder, gens, rng)

	state, res.Signings = runFreeAgency(state, gens, rng)

	state, res.Releases = maintainRosters(state, gens, rng)

	state = updateFinances(state, state.Year+1)

	return state, res
}
