// The multi-year orchestrator. One iteration is a full league year:
// reset records, generate the schedule, play the regular season, settle
// standings and the postseason, compute the draft order, run the eight
// offseason stages, then roll the calendar forward. The loop is
// synchronous and CPU-bound; the progress callback and the context
// check at each season/offseason boundary are the only suspension
// points.

package league

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Phase labels the two progress-callback boundaries inside a year.
type Phase string

const (
	PhaseSeason    Phase = "season"
	PhaseOffseason Phase = "offseason"
)

// ProgressFunc is invoked at the season and offseason boundary of every
// simulated year. It carries no cancellation; cancel via the context.
type ProgressFunc func(yearIndex, totalYears int, phase Phase)

// HistoryOptions configures a SimulateHistory run.
type HistoryOptions struct {
	StartYear  int // real calendar year play begins; the pre-sim ends here
	Generators Generators
	RNG        *PartitionedRNG
	Progress   ProgressFunc // optional
}

// SimulateHistory advances the league `years` full cycles and hands
// back a ready-to-play state for opts.StartYear. The returned state
// satisfies the structural invariants; a cancelled context returns the
// error with no partial state.
func SimulateHistory(ctx context.Context, state *LeagueState, years int, opts HistoryOptions) (*HistoryResult, error) {
	started := time.Now()
	result := &HistoryResult{}
	progress := opts.Progress
	if progress == nil {
		progress = func(int, int, Phase) {}
	}

	var prior *Standings
	for y := 0; y < years; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state = resetCurrentRecords(state)
		state.Schedule = GenerateSchedule(state, prior, opts.RNG.ForSubsystem(SubsystemSchedule))
		state = simulateRegularSeason(state, opts.RNG)
		progress(y, years, PhaseSeason)

		st := ComputeStandings(state.Schedule.Games, state.Teams)
		field := PlayoffField(st, state.Teams, state.Config)
		state = applySeeds(state, field)
		bracket := RunPlayoffs(state, field, opts.RNG.ForSubsystem(SubsystemPlayoffs))

		order := ComputeDraftOrder(st, bracket, state.Teams)
		state = withDraftClass(state, opts.Generators, opts.RNG)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress(y, years, PhaseOffseason)

		var off *OffseasonResult
		state, off = RunOffseason(state, order, st, opts.Generators, opts.RNG)

		result.Counters.Retirements += len(off.Retirements)
		result.Counters.DraftPicks += len(off.Selections)
		result.Counters.Signings += len(off.Signings)
		result.Counters.CoachingChanges += len(off.CoachingChanges)

		state = foldRecords(state)
		state.Summaries = append(state.Summaries, SeasonSummary{
			Year:       state.Year,
			Champion:   bracket.Champion,
			RunnerUp:   bracket.RunnerUp,
			DraftOrder: order,
		})
		state.Year++
		prior = st

		logrus.Debugf("year %d complete: champion %s", state.Year-1, bracket.Champion)
	}

	// Hand-off: pin the calendar to the real start year and stage a
	// clean slate for the user's first season.
	state = resetCurrentRecords(state)
	state.Year = opts.StartYear
	state.Schedule = GenerateSchedule(state, prior, opts.RNG.ForSubsystem(SubsystemSchedule))
	state = withDraftClass(state, opts.Generators, opts.RNG)
	if prior != nil {
		// The upcoming draft's slots are projected from the last
		// finished season; the reconcile step alone yields the complete
		// worst-first order.
		projected := reconcileDraftOrder(nil, prior, state.Teams)
		state.Picks = BuildDraftPicks(projected, state.Year, state.Config.DraftRounds)
	}
	state = updateFinances(state, state.Year)

	result.Final = state
	result.Summaries = state.Summaries
	result.Elapsed = time.Since(started)
	return result, nil
}

// simulateRegularSeason plays every scheduled game in week order and
// folds the outcomes into each team's current record.
func simulateRegularSeason(state *LeagueState, prng *PartitionedRNG) *LeagueState {
	rng := prng.ForSubsystem(SubsystemGames)

	next := state.shallowCopy()
	next.Teams = cloneTeams(state.Teams)
	sched := *state.Schedule
	sched.Games = make([]*ScheduledGame, len(state.Schedule.Games))
	for i, g := range state.Schedule.Games {
		cp := *g
		sched.Games[i] = &cp
	}
	next.Schedule = &sched

	for week := 1; week <= sched.Weeks; week++ {
		for _, g := range sched.Games {
			if g.Week != week || g.Completed {
				continue
			}
			res := SimulateGame(next, g.Home, g.Away, rng)
			g.HomeScore = res.HomeScore
			g.AwayScore = res.AwayScore
			g.Completed = true

			if home, ok := next.Teams[g.Home]; ok {
				home.CurrentRecord = home.CurrentRecord.Add(gameRecord(g.HomeScore, g.AwayScore))
			}
			if away, ok := next.Teams[g.Away]; ok {
				away.CurrentRecord = away.CurrentRecord.Add(gameRecord(g.AwayScore, g.HomeScore))
			}
		}
	}
	return next
}

// resetCurrentRecords clears every team's in-season record and playoff
// seed for a fresh year.
func resetCurrentRecords(state *LeagueState) *LeagueState {
	next := state.shallowCopy()
	next.Teams = cloneTeams(state.Teams)
	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		t.CurrentRecord = Record{}
		t.PlayoffSeed = 0
	}
	return next
}

// foldRecords rolls the completed season into each team's all-time
// ledger.
func foldRecords(state *LeagueState) *LeagueState {
	next := state.shallowCopy()
	next.Teams = cloneTeams(state.Teams)
	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		t.AllTimeRecord = t.AllTimeRecord.Add(t.CurrentRecord)
	}
	return next
}

// applySeeds stamps the playoff seed onto the field's teams.
func applySeeds(state *LeagueState, field map[Conference][]TeamID) *LeagueState {
	next := state.shallowCopy()
	next.Teams = cloneTeams(state.Teams)
	for _, ids := range field {
		for i, id := range ids {
			if t, ok := next.Teams[id]; ok {
				t.PlayoffSeed = i + 1
			}
		}
	}
	return next
}

// withDraftClass attaches a freshly generated prospect class for the
// upcoming draft.
func withDraftClass(state *LeagueState, gens Generators, prng *PartitionedRNG) *LeagueState {
	next := state.shallowCopy()
	next.DraftClass = gens.DraftClass.GenerateDraftClass(next.Year+1, prng.ForSubsystem(SubsystemGen))
	return next
}
