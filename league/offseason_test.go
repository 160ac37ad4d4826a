package league

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProgression_AgesEveryone(t *testing.T) {
	state, _, prng := newTestLeague(t, 1, 2000)

	before := make(map[PlayerID]int)
	for id, p := range state.Players {
		before[id] = p.Age
	}

	next := applyProgression(state, prng)
	for id, p := range next.Players {
		assert.Equal(t, before[id]+1, p.Age, "player %s", id)
		assert.GreaterOrEqual(t, p.Overall, 20)
		assert.LessOrEqual(t, p.Overall, 99)
	}
	// Input snapshot untouched.
	for id, p := range state.Players {
		assert.Equal(t, before[id], p.Age, "input snapshot mutated for %s", id)
	}
}

func TestRetirementProbability_RisesWithAge(t *testing.T) {
	young := &Player{Age: 24, Overall: 70}
	mid := &Player{Age: 32, Overall: 70}
	old := &Player{Age: 38, Overall: 70}
	assert.Less(t, retirementProbability(young), retirementProbability(mid))
	assert.Less(t, retirementProbability(mid), retirementProbability(old))

	// Role value keeps stars around.
	star := &Player{Age: 33, Overall: 95}
	journeyman := &Player{Age: 33, Overall: 55}
	assert.Less(t, retirementProbability(star), retirementProbability(journeyman))
}

func TestApplyRetirements_NoDanglingReferences(t *testing.T) {
	state, _, prng := newTestLeague(t, 3, 2000)

	// Age the league hard so retirements are plentiful.
	for _, p := range state.Players {
		p.Age = 36
	}

	next, retired := applyRetirements(state, prng)
	require.NotEmpty(t, retired, "an all-36 league must lose someone")

	for _, id := range retired {
		_, inPlayers := next.Players[id]
		assert.False(t, inPlayers, "retired %s still in player map", id)
		for _, tid := range next.TeamIDs() {
			assert.False(t, next.Teams[tid].HasPlayer(id), "retired %s still on %s", id, tid)
		}
		for _, cid := range next.ContractIDs() {
			assert.NotEqual(t, id, next.Contracts[cid].PlayerID, "retired %s still under contract", id)
		}
	}
}

func TestApplyRetirements_EmptyResultDoesNotBlock(t *testing.T) {
	state, _, prng := newTestLeague(t, 5, 2000)
	for _, p := range state.Players {
		p.Age = 22
		p.Overall = 90
	}
	next, retired := applyRetirements(state, prng)
	assert.Empty(t, retired)
	assert.Same(t, state, next, "no-op stage returns its input snapshot")
}

func TestExpireContracts_ReportsFreeAgents(t *testing.T) {
	state, _, _ := newTestLeague(t, 7, 2000)

	// Force a known subset to expire.
	forced := 0
	for _, cid := range state.ContractIDs() {
		if forced == 10 {
			break
		}
		state.Contracts[cid].YearsRemaining = 1
		forced++
	}

	next, expired, freeAgents := expireContracts(state)
	assert.GreaterOrEqual(t, len(expired), 10)
	assert.Equal(t, len(expired), len(freeAgents))

	for _, pid := range freeAgents {
		p := next.Players[pid]
		require.NotNil(t, p)
		assert.Empty(t, p.ContractID)
		assert.Empty(t, p.TeamID)
		assert.Contains(t, next.FreeAgents, pid)
	}
}

func TestExpireContracts_ToleratesMissingPlayer(t *testing.T) {
	state, _, _ := newTestLeague(t, 9, 2000)

	// Simulate an earlier stage having removed a player but not its
	// contract: the stage must skip it, not panic.
	var victim PlayerID
	for _, cid := range state.ContractIDs() {
		c := state.Contracts[cid]
		c.YearsRemaining = 1
		victim = c.PlayerID
		break
	}
	delete(state.Players, victim)

	next, _, freeAgents := expireContracts(state)
	assert.NotContains(t, freeAgents, victim)
	assert.NotContains(t, next.FreeAgents, victim)
}

func TestFiringProbability_Monotone(t *testing.T) {
	bad := firingProbability(2.0 / 17.0)
	good := firingProbability(12.0 / 17.0)
	assert.Greater(t, bad, good)
	assert.Greater(t, bad, 0.5)
	assert.Less(t, good, 0.1)
}

func TestApplyCoachingChanges_RecordsBeforeAndAfter(t *testing.T) {
	state, gens, prng := newTestLeague(t, 11, 2000)

	// Give every team a terrible season so changes are abundant.
	for _, tid := range state.TeamIDs() {
		state.Teams[tid].CurrentRecord = Record{Wins: 2, Losses: 15}
	}

	next, changes := applyCoachingChanges(state, nil, gens, prng)
	require.NotEmpty(t, changes)
	for _, ch := range changes {
		assert.NotEmpty(t, ch.OldCoach)
		assert.NotEmpty(t, ch.NewCoach)
		assert.NotEqual(t, ch.OldCoach, ch.NewCoach)
		assert.Equal(t, ch.NewCoach, next.Teams[ch.Team].CoachID)
		_, oldExists := next.Coaches[ch.OldCoach]
		assert.False(t, oldExists, "fired coach %s still on staff", ch.OldCoach)
		assert.Equal(t, ch.Team, next.Coaches[ch.NewCoach].TeamID)
	}
}

func TestCoachingChange_LosingTeamsFireMore(t *testing.T) {
	// A 2-15 team must see materially more turnover than a 12-5 team
	// across repeated trials.
	const trials = 400
	badFired, goodFired := 0, 0
	for i := 0; i < trials; i++ {
		state, gens, prng := newTestLeague(t, int64(i), 2000)
		ids := state.TeamIDs()
		bad, good := ids[0], ids[1]
		state.Teams[bad].CurrentRecord = Record{Wins: 2, Losses: 15}
		state.Teams[good].CurrentRecord = Record{Wins: 12, Losses: 5}
		for _, tid := range ids[2:] {
			state.Teams[tid].CurrentRecord = Record{Wins: 8, Losses: 9}
		}

		_, changes := applyCoachingChanges(state, nil, gens, prng)
		for _, ch := range changes {
			if ch.Team == bad {
				badFired++
			}
			if ch.Team == good {
				goodFired++
			}
		}
	}
	assert.Greater(t, badFired, goodFired*3,
		"2-15 fired %d times vs 12-5 fired %d times over %d trials", badFired, goodFired, trials)
}

func TestRunDraft_SelectionsAndUDFAs(t *testing.T) {
	state, gens, prng := newTestLeague(t, 13, 2000)
	state = playSeason(t, state, prng)
	st := ComputeStandings(state.Schedule.Games, state.Teams)
	field := PlayoffField(st, state.Teams, state.Config)
	bracket := RunPlayoffs(state, field, prng.ForSubsystem(SubsystemPlayoffs))
	order := ComputeDraftOrder(st, bracket, state.Teams)

	state.DraftClass = gens.DraftClass.GenerateDraftClass(2001, prng.ForSubsystem(SubsystemGen))
	classSize := len(state.DraftClass)

	next, selections, udfa := runDraft(state, order, gens, prng)

	require.Len(t, selections, 224, "seven rounds of 32")
	assert.Equal(t, classSize-224, udfa)
	assert.Empty(t, next.DraftClass)

	for i, sel := range selections {
		assert.Equal(t, i+1, sel.Pick.Overall)
		p := next.Players[sel.Player]
		require.NotNil(t, p, "selection %d", i)
		assert.Equal(t, sel.Pick.OwningTeam, p.TeamID)
		require.NotEmpty(t, p.ContractID, "draftee %s unsigned", sel.Player)
		c := next.Contracts[p.ContractID]
		require.NotNil(t, c)
		assert.Equal(t, 4, c.YearsRemaining, "rookie deals run four years")
	}

	// First overall pick goes to the first slot in the order.
	assert.Equal(t, order[0], selections[0].Pick.OwningTeam)
}

func TestRunDraft_EmptyClassIsNoOp(t *testing.T) {
	state, gens, prng := newTestLeague(t, 15, 2000)
	state.DraftClass = nil
	next, selections, udfa := runDraft(state, state.TeamIDs(), gens, prng)
	assert.Same(t, state, next)
	assert.Empty(t, selections)
	assert.Zero(t, udfa)
}

func TestRunFreeAgency_SignsIntoOpenSlots(t *testing.T) {
	state, gens, prng := newTestLeague(t, 17, 2000)

	// Open roster space and seed a market.
	ids := state.TeamIDs()
	for _, tid := range ids[:8] {
		team := state.Teams[tid]
		cut := team.Roster[:10]
		team.Roster = append([]PlayerID(nil), team.Roster[10:]...)
		for _, pid := range cut {
			p := state.Players[pid]
			delete(state.Contracts, p.ContractID)
			p.ContractID = ""
			p.TeamID = ""
			state.FreeAgents = append(state.FreeAgents, pid)
		}
	}

	next, signings := runFreeAgency(state, gens, prng)
	require.NotEmpty(t, signings)
	for _, s := range signings {
		p := next.Players[s.Player]
		require.NotNil(t, p)
		assert.Equal(t, s.Team, p.TeamID)
		assert.Equal(t, s.Contract, p.ContractID)
		assert.True(t, next.Teams[s.Team].HasPlayer(s.Player))
		assert.Positive(t, s.PerYear)
		assert.Positive(t, s.Years)
		assert.NotContains(t, next.FreeAgents, s.Player)
	}
}

func TestMaintainRosters_CeilingHolds(t *testing.T) {
	tests := []struct {
		name    string
		resize  func(state *LeagueState)
	}{
		{"oversized rosters", func(state *LeagueState) {
			// Stuff extra unsigned players onto every roster.
			for i, tid := range state.TeamIDs() {
				team := state.Teams[tid]
				for j := 0; j < 12; j++ {
					pid := PlayerID(fmt.Sprintf("extra-%d-%d", i, j))
					state.Players[pid] = &Player{ID: pid, Position: PosWR, Age: 24, Overall: 40 + j, TeamID: tid}
					team.Roster = append(team.Roster, pid)
				}
			}
		}},
		{"undersized rosters with a pool", func(state *LeagueState) {
			for _, tid := range state.TeamIDs()[:4] {
				team := state.Teams[tid]
				cut := team.Roster[40:]
				team.Roster = team.Roster[:40]
				for _, pid := range cut {
					p := state.Players[pid]
					delete(state.Contracts, p.ContractID)
					p.ContractID = ""
					p.TeamID = ""
					state.FreeAgents = append(state.FreeAgents, pid)
				}
			}
		}},
		{"dangling roster ids", func(state *LeagueState) {
			tid := state.TeamIDs()[0]
			team := state.Teams[tid]
			for j := 0; j < 5; j++ {
				team.Roster = append(team.Roster, PlayerID(fmt.Sprintf("ghost-%d", j)))
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, gens, prng := newTestLeague(t, 19, 2000)
			tt.resize(state)

			next, _ := maintainRosters(state, gens, prng)
			for _, tid := range next.TeamIDs() {
				assert.LessOrEqual(t, len(next.Teams[tid].Roster), next.Config.RosterLimit,
					"team %s over the ceiling", tid)
			}
		})
	}
}

func TestUpdateFinances_MatchesContractSums(t *testing.T) {
	state, _, _ := newTestLeague(t, 23, 2000)
	next := updateFinances(state, 2000)

	for _, tid := range next.TeamIDs() {
		f := next.Teams[tid].Finances
		assert.Equal(t, CapUsage(next, tid, 2000), f.CapUsed, "team %s", tid)
		assert.Equal(t, next.Config.SalaryCap, f.CapLimit)
		assert.Equal(t, f.CapLimit-f.CapUsed-f.DeadCap, f.CapSpace)
	}
}

func TestRunOffseason_FullPipeline(t *testing.T) {
	state, gens, prng := newTestLeague(t, 29, 2000)
	state = playSeason(t, state, prng)
	st := ComputeStandings(state.Schedule.Games, state.Teams)
	field := PlayoffField(st, state.Teams, state.Config)
	bracket := RunPlayoffs(state, field, prng.ForSubsystem(SubsystemPlayoffs))
	order := ComputeDraftOrder(st, bracket, state.Teams)
	state.DraftClass = gens.DraftClass.GenerateDraftClass(2001, prng.ForSubsystem(SubsystemGen))

	next, res := RunOffseason(state, order, st, gens, prng)

	assert.NotEmpty(t, res.Selections)
	for _, tid := range next.TeamIDs() {
		assert.LessOrEqual(t, len(next.Teams[tid].Roster), next.Config.RosterLimit)
	}

	// Finances are staged for the upcoming year.
	next.Year++
	require.NoError(t, CheckInvariants(next))
}
