// Regular-season schedule generation.
//
// The primary path builds the full 272-game matchup plan (divisional
// home-and-away, rotating division pairings, prior-year same-rank games)
// and then searches for an 18-week assignment giving every team 17 games
// and exactly one bye. The search is a randomized greedy with a one-move
// repair step and bounded retries; when it exhausts its retries the
// generator falls back to a round-robin construction that guarantees the
// 17-games-plus-one-bye invariant by construction. The fallback is
// mandatory: schedule generation never fails.

package league

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// ScheduledGame is one regular-season game slot.
type ScheduledGame struct {
	Week      int // 1-based
	Home      TeamID
	Away      TeamID
	HomeScore int
	AwayScore int
	Completed bool
}

// Schedule is one season's full slate.
type Schedule struct {
	Year  int
	Weeks int
	Games []*ScheduledGame
}

// GamesForWeek returns the games slotted in the given week.
func (s *Schedule) GamesForWeek(week int) []*ScheduledGame {
	var out []*ScheduledGame
	for _, g := range s.Games {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// TeamGames returns every game involving the given team.
func (s *Schedule) TeamGames(id TeamID) []*ScheduledGame {
	var out []*ScheduledGame
	for _, g := range s.Games {
		if g.Home == id || g.Away == id {
			out = append(out, g)
		}
	}
	return out
}

// ByeWeek returns the single week the team does not play, or 0 if the
// team's slate is malformed.
func (s *Schedule) ByeWeek(id TeamID) int {
	busy := make(map[int]bool, s.Weeks)
	for _, g := range s.TeamGames(id) {
		busy[g.Week] = true
	}
	bye := 0
	for w := 1; w <= s.Weeks; w++ {
		if !busy[w] {
			if bye != 0 {
				return 0
			}
			bye = w
		}
	}
	return bye
}

// matchup is an unscheduled pairing with home designation decided.
type matchup struct {
	home TeamID
	away TeamID
}

// scheduleAttempts bounds the primary assignment search before the
// round-robin fallback takes over.
const scheduleAttempts = 40

// GenerateSchedule builds the season schedule. prior supplies last
// year's division finish order used for the same-rank matchups; nil
// (first simulated year) ranks divisions by team id.
func GenerateSchedule(state *LeagueState, prior *Standings, rng *rand.Rand) *Schedule {
	divOrder := divisionRanks(state, prior)
	plan := buildMatchupPlan(divOrder, state.Year)

	for attempt := 0; attempt < scheduleAttempts; attempt++ {
		games, ok := assignWeeks(plan, state.TeamIDs(), state.Config, rng)
		if ok {
			return &Schedule{Year: state.Year, Weeks: state.Config.ScheduleWeeks, Games: games}
		}
	}

	logrus.Warnf("schedule: primary assignment failed after %d attempts for year %d, using round-robin fallback", scheduleAttempts, state.Year)
	return fallbackSchedule(state.TeamIDs(), state.Year, state.Config, rng)
}

// divisionRanks produces each division's teams ordered by last season's
// finish (or by id when no standings exist yet).
func divisionRanks(state *LeagueState, prior *Standings) map[Division][]TeamID {
	if prior != nil {
		out := make(map[Division][]TeamID, len(prior.DivisionOrder))
		for div, ids := range prior.DivisionOrder {
			out[div] = append([]TeamID(nil), ids...)
		}
		return out
	}
	out := make(map[Division][]TeamID)
	for _, id := range state.TeamIDs() {
		t := state.Teams[id]
		out[t.Division] = append(out[t.Division], id)
	}
	return out
}

// buildMatchupPlan produces the 272 matchups for one season:
//   - 6 divisional games (home-and-away vs each division rival)
//   - 4 vs a rotating division in the same conference
//   - 4 vs a rotating division in the other conference
//   - 2 same-rank games vs the remaining same-conference divisions
//   - 1 same-rank game vs a second cross-conference division
func buildMatchupPlan(divOrder map[Division][]TeamID, year int) []matchup {
	var plan []matchup

	divs := make([]Division, 0, len(divOrder))
	for d := range divOrder {
		divs = append(divs, d)
	}
	sort.Slice(divs, func(i, j int) bool {
		if divs[i].Conference != divs[j].Conference {
			return divs[i].Conference < divs[j].Conference
		}
		return divs[i].Index < divs[j].Index
	})

	// Divisional: every pair home-and-away.
	for _, d := range divs {
		teams := divOrder[d]
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				plan = append(plan, matchup{home: teams[i], away: teams[j]})
				plan = append(plan, matchup{home: teams[j], away: teams[i]})
			}
		}
	}

	// Rotating same-conference division pairing. The three possible
	// perfect matchings of four divisions cycle with the year.
	intraPairings := [3][2][2]int{
		{{0, 1}, {2, 3}},
		{{0, 2}, {1, 3}},
		{{0, 3}, {1, 2}},
	}
	rot := ((year % 3) + 3) % 3
	for _, conf := range Conferences {
		for _, pair := range intraPairings[rot] {
			a := divOrder[Division{Conference: conf, Index: pair[0]}]
			b := divOrder[Division{Conference: conf, Index: pair[1]}]
			plan = append(plan, crossDivision(a, b)...)
		}
	}

	// Rotating cross-conference division pairing.
	for i := 0; i < 4; i++ {
		a := divOrder[Division{Conference: ConferenceAtlantic, Index: i}]
		b := divOrder[Division{Conference: ConferencePacific, Index: (i + year%4 + 4) % 4}]
		plan = append(plan, crossDivision(a, b)...)
	}

	// Same-rank games vs the two same-conference divisions not already
	// paired this year.
	for _, conf := range Conferences {
		partner := map[int]int{}
		for _, pair := range intraPairings[rot] {
			partner[pair[0]] = pair[1]
			partner[pair[1]] = pair[0]
		}
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if partner[i] == j {
					continue
				}
				a := divOrder[Division{Conference: conf, Index: i}]
				b := divOrder[Division{Conference: conf, Index: j}]
				for rank := 0; rank < len(a) && rank < len(b); rank++ {
					if (rank+year)%2 == 0 {
						plan = append(plan, matchup{home: a[rank], away: b[rank]})
					} else {
						plan = append(plan, matchup{home: b[rank], away: a[rank]})
					}
				}
			}
		}
	}

	// 17th game: cross-conference same-rank vs a division offset by one
	// from the full cross-conference pairing, so no opponent repeats.
	for i := 0; i < 4; i++ {
		a := divOrder[Division{Conference: ConferenceAtlantic, Index: i}]
		b := divOrder[Division{Conference: ConferencePacific, Index: (i + year%4 + 5) % 4}]
		for rank := 0; rank < len(a) && rank < len(b); rank++ {
			if year%2 == 0 {
				plan = append(plan, matchup{home: a[rank], away: b[rank]})
			} else {
				plan = append(plan, matchup{home: b[rank], away: a[rank]})
			}
		}
	}

	return plan
}

// crossDivision pairs every team of a with every team of b, splitting
// home games two apiece by rank parity.
func crossDivision(a, b []TeamID) []matchup {
	var out []matchup
	for i, ta := range a {
		for j, tb := range b {
			if (i+j)%2 == 0 {
				out = append(out, matchup{home: ta, away: tb})
			} else {
				out = append(out, matchup{home: tb, away: ta})
			}
		}
	}
	return out
}

// assignWeeks attempts one randomized greedy week assignment. Matchups
// are shuffled, then placed most-constrained-first into the week with
// the lightest load among weeks free for both teams. A matchup with no
// common free week triggers a single-move repair before the attempt is
// abandoned. Success additionally requires the bye distribution to stay
// under the configured per-week ceiling.
func assignWeeks(plan []matchup, teams []TeamID, cfg Config, rng *rand.Rand) ([]*ScheduledGame, bool) {
	weeks := cfg.ScheduleWeeks

	shuffled := append([]matchup(nil), plan...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	board := newWeekBoard(teams, weeks)

	for _, m := range shuffled {
		cands := board.freeWeeks(m)
		if len(cands) == 0 {
			// Repair: move one already-placed game out of a week that
			// would free this matchup.
			if !board.repairOneMove(m) {
				return nil, false
			}
			cands = board.freeWeeks(m)
			if len(cands) == 0 {
				return nil, false
			}
		}
		best := cands[0]
		for _, w := range cands[1:] {
			if board.load[w] < board.load[best] {
				best = w
			}
		}
		board.place(m, best)
	}

	// Bye balance: each team's one free week, counted per week.
	byes := make([]int, weeks+1)
	for _, t := range teams {
		for w := 1; w <= weeks; w++ {
			if !board.busy[t][w] {
				byes[w]++
			}
		}
	}
	for w := 1; w <= weeks; w++ {
		if byes[w] > cfg.MaxByesPerWeek {
			return nil, false
		}
	}

	games := make([]*ScheduledGame, 0, len(board.placed))
	for _, s := range board.placed {
		games = append(games, &ScheduledGame{Week: s.week, Home: s.m.home, Away: s.m.away})
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].Week != games[j].Week {
			return games[i].Week < games[j].Week
		}
		if games[i].Home != games[j].Home {
			return games[i].Home < games[j].Home
		}
		return games[i].Away < games[j].Away
	})
	return games, true
}

// weekSlot is one placed game inside an assignment attempt.
type weekSlot struct {
	m    matchup
	week int
}

// weekBoard tracks one in-progress assignment attempt: which team is
// busy in which week, per-week game load, and every placed game.
type weekBoard struct {
	weeks  int
	busy   map[TeamID]map[int]bool
	load   []int
	placed []weekSlot
}

func newWeekBoard(teams []TeamID, weeks int) *weekBoard {
	busy := make(map[TeamID]map[int]bool, len(teams))
	for _, t := range teams {
		busy[t] = make(map[int]bool, weeks)
	}
	return &weekBoard{weeks: weeks, busy: busy, load: make([]int, weeks+1)}
}

func (b *weekBoard) place(m matchup, w int) {
	b.busy[m.home][w] = true
	b.busy[m.away][w] = true
	b.load[w]++
	b.placed = append(b.placed, weekSlot{m: m, week: w})
}

func (b *weekBoard) unplace(idx int) weekSlot {
	s := b.placed[idx]
	b.busy[s.m.home][s.week] = false
	b.busy[s.m.away][s.week] = false
	b.load[s.week]--
	b.placed = append(b.placed[:idx], b.placed[idx+1:]...)
	return s
}

func (b *weekBoard) freeWeeks(m matchup) []int {
	var out []int
	for w := 1; w <= b.weeks; w++ {
		if !b.busy[m.home][w] && !b.busy[m.away][w] {
			out = append(out, w)
		}
	}
	return out
}

// repairOneMove tries to relocate a single placed game so that matchup m
// gains a common free week. Returns true if a move was made.
func (b *weekBoard) repairOneMove(m matchup) bool {
	for w := 1; w <= b.weeks; w++ {
		// Need exactly one of the two teams busy; move the blocking game.
		homeBusy := b.busy[m.home][w]
		awayBusy := b.busy[m.away][w]
		if homeBusy == awayBusy {
			continue
		}
		blocker := m.home
		if awayBusy {
			blocker = m.away
		}
		for idx, s := range b.placed {
			if s.week != w || (s.m.home != blocker && s.m.away != blocker) {
				continue
			}
			// Find another week free for both teams of the blocking game,
			// excluding w itself.
			for alt := 1; alt <= b.weeks; alt++ {
				if alt == w || b.busy[s.m.home][alt] || b.busy[s.m.away][alt] {
					continue
				}
				moved := b.unplace(idx)
				b.place(moved.m, alt)
				return true
			}
			break
		}
	}
	return false
}

// fallbackSchedule builds a structurally valid slate without the matchup
// plan: 16 league-wide round-robin weeks followed by two half-league
// weeks whose sitting half takes its bye. Every team gets exactly 17
// games and one bye by construction; divisional balance and bye spread
// are sacrificed.
func fallbackSchedule(teams []TeamID, year int, cfg Config, rng *rand.Rand) *Schedule {
	order := append([]TeamID(nil), teams...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	n := len(order)
	var games []*ScheduledGame

	// Circle method: order[0] fixed, the rest rotate. 16 of the n-1
	// possible rounds are used.
	rest := order[1:]
	for round := 0; round < cfg.ScheduleWeeks-2; round++ {
		week := round + 1
		opp := rest[round%(n-1)]
		games = append(games, orientGame(week, order[0], opp, round))
		for k := 1; k < n/2; k++ {
			a := rest[(round+k)%(n-1)]
			b := rest[(round-k+(n-1))%(n-1)]
			games = append(games, orientGame(week, a, b, round+k))
		}
	}

	// Final two weeks: each half plays internally while the other half
	// takes its bye.
	halves := [2][]TeamID{order[:n/2], order[n/2:]}
	for h, half := range halves {
		week := cfg.ScheduleWeeks - 1 + h
		for i := 0; i < len(half); i += 2 {
			games = append(games, orientGame(week, half[i], half[i+1], i+h))
		}
	}

	return &Schedule{Year: year, Weeks: cfg.ScheduleWeeks, Games: games}
}

func orientGame(week int, a, b TeamID, parity int) *ScheduledGame {
	if parity%2 == 0 {
		return &ScheduledGame{Week: week, Home: a, Away: b}
	}
	return &ScheduledGame{Week: week, Home: b, Away: a}
}

// ValidateSchedule checks the structural schedule invariants: every team
// plays the configured game count, never twice in a week, never against
// itself, and sits exactly one bye inside the window.
func ValidateSchedule(s *Schedule, teams []TeamID, cfg Config) error {
	perTeam := make(map[TeamID][]int, len(teams))
	for _, g := range s.Games {
		if g.Home == g.Away {
			return fmt.Errorf("week %d: %s scheduled against itself", g.Week, g.Home)
		}
		if g.Week < 1 || g.Week > cfg.ScheduleWeeks {
			return fmt.Errorf("game %s at %s outside week window: %d", g.Away, g.Home, g.Week)
		}
		perTeam[g.Home] = append(perTeam[g.Home], g.Week)
		perTeam[g.Away] = append(perTeam[g.Away], g.Week)
	}
	for _, t := range teams {
		wks := perTeam[t]
		if len(wks) != cfg.GamesPerTeam {
			return fmt.Errorf("team %s has %d games, want %d", t, len(wks), cfg.GamesPerTeam)
		}
		seen := make(map[int]bool, len(wks))
		for _, w := range wks {
			if seen[w] {
				return fmt.Errorf("team %s has two games in week %d", t, w)
			}
			seen[w] = true
		}
		if len(seen) != cfg.ScheduleWeeks-1 {
			return fmt.Errorf("team %s has %d busy weeks, want %d", t, len(seen), cfg.ScheduleWeeks-1)
		}
	}
	return nil
}
