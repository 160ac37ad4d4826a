// Quick game simulation: a non-play-by-play outcome model used for bulk
// historical seasons. Strengths come from aggregate roster ratings plus
// a coaching modifier; scores come from the strength differential and
// injected noise, tuned so long-run per-team averages sit in the 10-40
// point band.

package league

import (
	"math"
	"math/rand"
	"sort"
)

// Strength bounds for either side of the ball.
const (
	minStrength = 20.0
	maxStrength = 95.0
)

// BoxScore carries the derived game data downstream consumers (injury
// and news generation) read. It is intentionally coarse.
type BoxScore struct {
	HomeYards     int
	AwayYards     int
	HomeTurnovers int
	AwayTurnovers int
	StandoutHome  PlayerID
	StandoutAway  PlayerID
}

// GameResult is the outcome of one quick-simulated game. Winner is empty
// on a regular-season tie; playoff games never tie.
type GameResult struct {
	Home      TeamID
	Away      TeamID
	HomeScore int
	AwayScore int
	Winner    TeamID
	Box       BoxScore
}

// TeamStrength is the bounded offense/defense pair the score model runs on.
type TeamStrength struct {
	Offense float64
	Defense float64
}

// ComputeStrength derives a team's bounded offense/defense strengths
// from its current roster and head coach. Injured players are skipped.
func ComputeStrength(state *LeagueState, id TeamID) TeamStrength {
	t, ok := state.Teams[id]
	if !ok {
		return TeamStrength{Offense: minStrength, Defense: minStrength}
	}
	var off, def []int
	for _, pid := range t.Roster {
		p, ok := state.Players[pid]
		if !ok || p.Injury == Injured {
			continue
		}
		if p.Position.Offensive() {
			off = append(off, p.Overall)
		} else {
			def = append(def, p.Overall)
		}
	}
	mod := 0.0
	if c, ok := state.Coaches[t.CoachID]; ok {
		mod = float64(c.Rating-75) / 5.0
	}
	return TeamStrength{
		Offense: clampStrength(topMean(off, 22) + mod),
		Defense: clampStrength(topMean(def, 22) + mod),
	}
}

// topMean averages the best n ratings, the whole slice when shorter.
// An empty slice yields the floor so skeleton rosters still play.
func topMean(ratings []int, n int) float64 {
	if len(ratings) == 0 {
		return minStrength
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ratings)))
	if len(ratings) > n {
		ratings = ratings[:n]
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

func clampStrength(v float64) float64 {
	return math.Max(minStrength, math.Min(maxStrength, v))
}

// SimulateGame produces a regular-season result. Ties are possible but
// rare; the playoff variant below never returns one.
func SimulateGame(state *LeagueState, home, away TeamID, rng *rand.Rand) GameResult {
	hs := ComputeStrength(state, home)
	as := ComputeStrength(state, away)

	const (
		baseScore = 21.0
		homeField = 1.5
		diffGain  = 0.35
		noiseStd  = 7.5
	)

	homePts := baseScore + homeField + diffGain*(hs.Offense-as.Defense) + rng.NormFloat64()*noiseStd
	awayPts := baseScore + diffGain*(as.Offense-hs.Defense) + rng.NormFloat64()*noiseStd

	res := GameResult{
		Home:      home,
		Away:      away,
		HomeScore: int(math.Max(0, math.Round(homePts))),
		AwayScore: int(math.Max(0, math.Round(awayPts))),
	}
	switch {
	case res.HomeScore > res.AwayScore:
		res.Winner = home
	case res.AwayScore > res.HomeScore:
		res.Winner = away
	}
	res.Box = deriveBoxScore(state, res, rng)
	return res
}

// SimulatePlayoffGame is the no-tie variant: a tied roll is re-resolved
// by nudging one side three points, the side chosen by one extra draw.
func SimulatePlayoffGame(state *LeagueState, home, away TeamID, rng *rand.Rand) GameResult {
	res := SimulateGame(state, home, away, rng)
	if res.Winner != "" {
		return res
	}
	if rng.Float64() < 0.55 {
		res.HomeScore += 3
		res.Winner = home
	} else {
		res.AwayScore += 3
		res.Winner = away
	}
	return res
}

// deriveBoxScore fabricates the coarse stats downstream injury/news
// consumers expect: yardage loosely tracks points, turnovers loosely
// track losing.
func deriveBoxScore(state *LeagueState, res GameResult, rng *rand.Rand) BoxScore {
	box := BoxScore{
		HomeYards:     160 + res.HomeScore*9 + rng.Intn(80),
		AwayYards:     160 + res.AwayScore*9 + rng.Intn(80),
		HomeTurnovers: rng.Intn(3),
		AwayTurnovers: rng.Intn(3),
	}
	if res.Winner == res.Away {
		box.HomeTurnovers++
	} else if res.Winner == res.Home {
		box.AwayTurnovers++
	}
	box.StandoutHome = bestSkillPlayer(state, res.Home)
	box.StandoutAway = bestSkillPlayer(state, res.Away)
	return box
}

// bestSkillPlayer picks the highest-rated healthy offensive player as
// the box score's standout. Empty when the roster has none.
func bestSkillPlayer(state *LeagueState, id TeamID) PlayerID {
	t, ok := state.Teams[id]
	if !ok {
		return ""
	}
	var best PlayerID
	bestOvr := -1
	for _, pid := range t.Roster {
		p, ok := state.Players[pid]
		if !ok || p.Injury == Injured || !p.Position.Offensive() {
			continue
		}
		if p.Overall > bestOvr || (p.Overall == bestOvr && pid < best) {
			best = pid
			bestOvr = p.Overall
		}
	}
	return best
}
