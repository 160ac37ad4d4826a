// Postseason bracket as an explicit state machine. Each Advance call is
// one round transition: it refuses to move while the current round has
// an unresolved matchup, and the divisional round uses reseeding (the
// bye seed plus the wild-card winners re-sorted by original seed, best
// remaining against worst remaining) rather than a fixed bracket.

package league

import (
	"math/rand"
	"sort"
)

// PlayoffRound enumerates the bracket states.
type PlayoffRound string

const (
	RoundSeeded     PlayoffRound = "seeded"
	RoundWildCard   PlayoffRound = "wildcard"
	RoundDivisional PlayoffRound = "divisional"
	RoundConference PlayoffRound = "conference-championship"
	RoundSuperBowl  PlayoffRound = "super-bowl"
	RoundComplete   PlayoffRound = "complete"
)

// roundRank orders rounds for elimination comparisons; higher survives longer.
var roundRank = map[PlayoffRound]int{
	RoundWildCard:   1,
	RoundDivisional: 2,
	RoundConference: 3,
	RoundSuperBowl:  4,
}

// PlayoffMatchup is one postseason game. Conference is empty for the
// Super Bowl.
type PlayoffMatchup struct {
	Round      PlayoffRound
	Conference Conference
	HomeSeed   int
	AwaySeed   int
	Home       TeamID
	Away       TeamID
	HomeScore  int
	AwayScore  int
	Winner     TeamID
}

// PlayoffBracket is the whole postseason state. Values are treated as
// immutable: Advance returns a new bracket.
type PlayoffBracket struct {
	Year  int
	Round PlayoffRound

	// Seeds holds each conference's field in seed order (index 0 = 1 seed).
	Seeds map[Conference][]TeamID

	Matchups   []*PlayoffMatchup
	Eliminated map[TeamID]PlayoffRound

	Champion TeamID
	RunnerUp TeamID
}

// NewPlayoffBracket seats the field produced by PlayoffField.
func NewPlayoffBracket(year int, field map[Conference][]TeamID) *PlayoffBracket {
	seeds := make(map[Conference][]TeamID, len(field))
	for conf, ids := range field {
		seeds[conf] = append([]TeamID(nil), ids...)
	}
	return &PlayoffBracket{
		Year:       year,
		Round:      RoundSeeded,
		Seeds:      seeds,
		Eliminated: make(map[TeamID]PlayoffRound),
	}
}

// SeedOf returns a team's original seed (1-based), 0 if not in the field.
func (b *PlayoffBracket) SeedOf(id TeamID) int {
	for _, ids := range b.Seeds {
		for i, t := range ids {
			if t == id {
				return i + 1
			}
		}
	}
	return 0
}

// Participants returns every playoff team, conferences in canonical
// order, seeds best-first within each.
func (b *PlayoffBracket) Participants() []TeamID {
	var out []TeamID
	for _, conf := range Conferences {
		out = append(out, b.Seeds[conf]...)
	}
	return out
}

// roundComplete reports whether every matchup of the given round has a
// recorded winner.
func (b *PlayoffBracket) roundComplete(round PlayoffRound) bool {
	for _, m := range b.Matchups {
		if m.Round == round && m.Winner == "" {
			return false
		}
	}
	return true
}

// roundWinners returns the winners of a round for one conference,
// re-sorted by original seed. This is the reseeding rule.
func (b *PlayoffBracket) roundWinners(round PlayoffRound, conf Conference) []TeamID {
	var out []TeamID
	for _, m := range b.Matchups {
		if m.Round == round && m.Conference == conf && m.Winner != "" {
			out = append(out, m.Winner)
		}
	}
	sort.Slice(out, func(i, j int) bool { return b.SeedOf(out[i]) < b.SeedOf(out[j]) })
	return out
}

func (b *PlayoffBracket) clone() *PlayoffBracket {
	next := *b
	next.Seeds = make(map[Conference][]TeamID, len(b.Seeds))
	for conf, ids := range b.Seeds {
		next.Seeds[conf] = append([]TeamID(nil), ids...)
	}
	next.Matchups = make([]*PlayoffMatchup, len(b.Matchups))
	for i, m := range b.Matchups {
		cp := *m
		next.Matchups[i] = &cp
	}
	next.Eliminated = make(map[TeamID]PlayoffRound, len(b.Eliminated))
	for id, r := range b.Eliminated {
		next.Eliminated[id] = r
	}
	return &next
}

// resolve simulates one matchup with the no-tie variant and records the
// loser's elimination round.
func (b *PlayoffBracket) resolve(m *PlayoffMatchup, state *LeagueState, rng *rand.Rand) {
	res := SimulatePlayoffGame(state, m.Home, m.Away, rng)
	m.HomeScore = res.HomeScore
	m.AwayScore = res.AwayScore
	m.Winner = res.Winner
	loser := m.Home
	if res.Winner == m.Home {
		loser = m.Away
	}
	b.Eliminated[loser] = m.Round
}

// Advance performs one round transition and returns the new bracket.
// Calling Advance on a complete bracket, or while the current round
// still has an unresolved matchup, returns the receiver unchanged.
func (b *PlayoffBracket) Advance(state *LeagueState, rng *rand.Rand) *PlayoffBracket {
	if b.Round == RoundComplete || !b.roundComplete(b.Round) {
		return b
	}
	next := b.clone()
	switch b.Round {
	case RoundSeeded:
		// 2v7, 3v6, 4v5; the 1 seed rests.
		for _, conf := range Conferences {
			seeds := next.Seeds[conf]
			pairs := [][2]int{{2, 7}, {3, 6}, {4, 5}}
			for _, p := range pairs {
				if p[1] > len(seeds) {
					continue
				}
				m := &PlayoffMatchup{
					Round: RoundWildCard, Conference: conf,
					HomeSeed: p[0], AwaySeed: p[1],
					Home: seeds[p[0]-1], Away: seeds[p[1]-1],
				}
				next.resolve(m, state, rng)
				next.Matchups = append(next.Matchups, m)
			}
		}
		next.Round = RoundWildCard
	case RoundWildCard:
		// Reseed: 1 seed plus wild-card winners, best vs worst.
		for _, conf := range Conferences {
			remaining := append([]TeamID{next.Seeds[conf][0]}, next.roundWinners(RoundWildCard, conf)...)
			sort.Slice(remaining, func(i, j int) bool {
				return next.SeedOf(remaining[i]) < next.SeedOf(remaining[j])
			})
			for i := 0; i < len(remaining)/2; i++ {
				home, away := remaining[i], remaining[len(remaining)-1-i]
				m := &PlayoffMatchup{
					Round: RoundDivisional, Conference: conf,
					HomeSeed: next.SeedOf(home), AwaySeed: next.SeedOf(away),
					Home: home, Away: away,
				}
				next.resolve(m, state, rng)
				next.Matchups = append(next.Matchups, m)
			}
		}
		next.Round = RoundDivisional
	case RoundDivisional:
		for _, conf := range Conferences {
			winners := next.roundWinners(RoundDivisional, conf)
			if len(winners) < 2 {
				continue
			}
			m := &PlayoffMatchup{
				Round: RoundConference, Conference: conf,
				HomeSeed: next.SeedOf(winners[0]), AwaySeed: next.SeedOf(winners[1]),
				Home: winners[0], Away: winners[1],
			}
			next.resolve(m, state, rng)
			next.Matchups = append(next.Matchups, m)
		}
		next.Round = RoundConference
	case RoundConference:
		var champs []TeamID
		for _, conf := range Conferences {
			champs = append(champs, next.roundWinners(RoundConference, conf)...)
		}
		if len(champs) == 2 {
			// Home designation alternates by year; it carries no
			// competitive meaning.
			home, away := champs[0], champs[1]
			if next.Year%2 == 1 {
				home, away = away, home
			}
			m := &PlayoffMatchup{
				Round:    RoundSuperBowl,
				HomeSeed: next.SeedOf(home), AwaySeed: next.SeedOf(away),
				Home: home, Away: away,
			}
			next.resolve(m, state, rng)
			next.Matchups = append(next.Matchups, m)
			next.Champion = m.Winner
			next.RunnerUp = m.Home
			if m.Winner == m.Home {
				next.RunnerUp = m.Away
			}
		}
		next.Round = RoundSuperBowl
	case RoundSuperBowl:
		next.Round = RoundComplete
	}
	return next
}

// RunPlayoffs seats the field and advances the bracket to completion.
func RunPlayoffs(state *LeagueState, field map[Conference][]TeamID, rng *rand.Rand) *PlayoffBracket {
	b := NewPlayoffBracket(state.Year, field)
	for b.Round != RoundComplete {
		b = b.Advance(state, rng)
	}
	return b
}
