package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-r-j/Gm-sim-sub016/league"
)

func knownPositions() map[league.Position]bool {
	known := make(map[league.Position]bool, len(league.Positions))
	for _, p := range league.Positions {
		known[p] = true
	}
	return known
}

func TestGenerateRoster_Structure(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(1))
	roster := g.GenerateRoster("BOS01", rng)

	require.Len(t, roster, 53)

	known := knownPositions()
	seen := make(map[league.PlayerID]bool)
	for _, p := range roster {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, known[p.Position], "unknown position %q", p.Position)
		assert.GreaterOrEqual(t, p.Age, league.RookieMinimumAge)
		assert.NotEmpty(t, p.Name)
		assert.LessOrEqual(t, p.Overall, p.Potential)
	}

	// Three quarterbacks and one each of the specialist slots.
	byPos := make(map[league.Position]int)
	for _, p := range roster {
		byPos[p.Position]++
	}
	assert.Equal(t, 3, byPos[league.PosQB])
	assert.Equal(t, 1, byPos[league.PosK])
	assert.Equal(t, 1, byPos[league.PosP])
}

func TestGenerateDraftClass_Structure(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(2))
	class := g.GenerateDraftClass(2026, rng)

	// Seven rounds of 32 plus an undrafted tail.
	require.Greater(t, len(class), 7*32)

	known := knownPositions()
	seen := make(map[league.PlayerID]bool)
	for _, pr := range class {
		assert.False(t, seen[pr.ID], "duplicate id %s", pr.ID)
		seen[pr.ID] = true
		assert.True(t, known[pr.Position], "unknown position %q", pr.Position)
		assert.GreaterOrEqual(t, pr.Age, league.RookieMinimumAge)
		assert.LessOrEqual(t, pr.Age, league.RookieMinimumAge+2)
		assert.LessOrEqual(t, pr.Overall, pr.Potential)
	}
}

func TestIDsUniqueAcrossKinds(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(3))

	roster := g.GenerateRoster("SEA17", rng)
	class := g.GenerateDraftClass(2026, rng)

	seen := make(map[league.PlayerID]bool)
	for _, p := range roster {
		seen[p.ID] = true
	}
	for _, pr := range class {
		assert.False(t, seen[pr.ID], "class reuses roster id %s", pr.ID)
	}
}

func TestGenerateRosterContracts(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(4))
	roster := g.GenerateRoster("DAL14", rng)
	contracts := g.GenerateRosterContracts(roster, "DAL14", 2026, rng)

	require.Len(t, contracts, len(roster))
	seen := make(map[league.ContractID]bool)
	for i, c := range contracts {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
		assert.Equal(t, roster[i].ID, c.PlayerID)
		assert.Equal(t, league.TeamID("DAL14"), c.TeamID)
		assert.Equal(t, 2026, c.SignedYear)
		require.Len(t, c.CapHits, c.YearsRemaining)
		assert.GreaterOrEqual(t, c.YearsRemaining, 1)
		assert.LessOrEqual(t, c.YearsRemaining, 4)
		assert.Positive(t, c.CapHits[0])
	}
}

func TestRookieContract_SlidesWithPick(t *testing.T) {
	g := New()
	p := &league.Player{ID: "p000001", Position: league.PosQB}

	first := g.RookieContract(p, "BOS01", 2026, 1)
	last := g.RookieContract(p, "BOS01", 2026, 224)

	assert.Equal(t, 4, first.YearsRemaining)
	assert.Equal(t, 4, last.YearsRemaining)
	assert.Greater(t, first.CapHits[0], last.CapHits[0])
	assert.GreaterOrEqual(t, last.CapHits[0], int64(850_000))
}

func TestVeteranSalary_Monotone(t *testing.T) {
	prev := int64(0)
	for overall := 40; overall <= 99; overall++ {
		s := veteranSalary(overall)
		assert.GreaterOrEqual(t, s, prev, "overall %d", overall)
		prev = s
	}
	assert.GreaterOrEqual(t, veteranSalary(40), int64(900_000))
}

func TestGenerateCoach(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(5))
	a := g.GenerateCoach(rng)
	b := g.GenerateCoach(rng)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.Name)
	assert.GreaterOrEqual(t, a.Rating, 55)
	assert.LessOrEqual(t, a.Rating, 90)
}

func TestDefaultLeague_Layout(t *testing.T) {
	meta := DefaultLeague()
	require.Len(t, meta, 32)

	ids := make(map[league.TeamID]bool)
	perDivision := make(map[league.Division]int)
	for _, m := range meta {
		assert.False(t, ids[m.ID], "duplicate id %s", m.ID)
		ids[m.ID] = true
		assert.NotEmpty(t, m.City)
		assert.NotEmpty(t, m.Nickname)
		perDivision[league.Division{Conference: m.Conference, Index: m.Division}]++
	}
	require.Len(t, perDivision, 8)
	for div, n := range perDivision {
		assert.Equal(t, 4, n, "division %v", div)
	}
}
