package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStrength_Bounds(t *testing.T) {
	state, _, _ := newTestLeague(t, 4, 2000)
	for _, id := range state.TeamIDs() {
		s := ComputeStrength(state, id)
		assert.GreaterOrEqual(t, s.Offense, minStrength)
		assert.LessOrEqual(t, s.Offense, maxStrength)
		assert.GreaterOrEqual(t, s.Defense, minStrength)
		assert.LessOrEqual(t, s.Defense, maxStrength)
	}
}

func TestComputeStrength_UnknownTeamFloors(t *testing.T) {
	state, _, _ := newTestLeague(t, 4, 2000)
	s := ComputeStrength(state, "nope")
	assert.Equal(t, minStrength, s.Offense)
	assert.Equal(t, minStrength, s.Defense)
}

func TestSimulateGame_ScoresNonNegative(t *testing.T) {
	state, _, prng := newTestLeague(t, 17, 2000)
	rng := prng.ForSubsystem(SubsystemGames)
	ids := state.TeamIDs()
	for i := 0; i < 500; i++ {
		res := SimulateGame(state, ids[i%32], ids[(i+1)%32], rng)
		assert.GreaterOrEqual(t, res.HomeScore, 0)
		assert.GreaterOrEqual(t, res.AwayScore, 0)
	}
}

func TestSimulateGame_LongRunScoringBand(t *testing.T) {
	state, _, prng := newTestLeague(t, 23, 2000)
	rng := prng.ForSubsystem(SubsystemGames)
	ids := state.TeamIDs()

	total, n := 0, 0
	for i := 0; i < 2000; i++ {
		res := SimulateGame(state, ids[i%32], ids[(i*7+3)%32], rng)
		if res.Home == res.Away {
			continue
		}
		total += res.HomeScore + res.AwayScore
		n += 2
	}
	avg := float64(total) / float64(n)
	assert.Greater(t, avg, 10.0, "per-team average too low: %.1f", avg)
	assert.Less(t, avg, 40.0, "per-team average too high: %.1f", avg)
}

func TestSimulateGame_WinnerMatchesScores(t *testing.T) {
	state, _, prng := newTestLeague(t, 31, 2000)
	rng := prng.ForSubsystem(SubsystemGames)
	ids := state.TeamIDs()
	for i := 0; i < 300; i++ {
		res := SimulateGame(state, ids[i%32], ids[(i+5)%32], rng)
		switch {
		case res.HomeScore > res.AwayScore:
			assert.Equal(t, res.Home, res.Winner)
		case res.AwayScore > res.HomeScore:
			assert.Equal(t, res.Away, res.Winner)
		default:
			assert.Empty(t, res.Winner)
		}
	}
}

func TestSimulatePlayoffGame_NeverTies(t *testing.T) {
	state, _, prng := newTestLeague(t, 37, 2000)
	rng := prng.ForSubsystem(SubsystemPlayoffs)
	ids := state.TeamIDs()
	for i := 0; i < 1000; i++ {
		res := SimulatePlayoffGame(state, ids[i%32], ids[(i+9)%32], rng)
		require.NotEqual(t, res.HomeScore, res.AwayScore, "iteration %d tied", i)
		require.NotEmpty(t, res.Winner)
	}
}

func TestSimulateGame_DeterministicWithSeed(t *testing.T) {
	s1, _, p1 := newTestLeague(t, 42, 2000)
	s2, _, p2 := newTestLeague(t, 42, 2000)
	r1 := p1.ForSubsystem(SubsystemGames)
	r2 := p2.ForSubsystem(SubsystemGames)

	ids := s1.TeamIDs()
	for i := 0; i < 100; i++ {
		a := SimulateGame(s1, ids[i%32], ids[(i+3)%32], r1)
		b := SimulateGame(s2, ids[i%32], ids[(i+3)%32], r2)
		assert.Equal(t, a, b, "game %d diverged", i)
	}
}

func TestSimulateGame_BoxScorePopulated(t *testing.T) {
	state, _, prng := newTestLeague(t, 3, 2000)
	rng := prng.ForSubsystem(SubsystemGames)
	ids := state.TeamIDs()
	res := SimulateGame(state, ids[0], ids[1], rng)

	assert.Greater(t, res.Box.HomeYards, 0)
	assert.Greater(t, res.Box.AwayYards, 0)
	assert.NotEmpty(t, res.Box.StandoutHome)
	assert.NotEmpty(t, res.Box.StandoutAway)
}
