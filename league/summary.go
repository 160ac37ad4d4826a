// Season summaries and the aggregate counters reported after a
// multi-year run.

package league

import (
	"fmt"
	"time"
)

// SeasonSummary is the historical record of one completed league year.
type SeasonSummary struct {
	Year       int
	Champion   TeamID
	RunnerUp   TeamID
	DraftOrder []TeamID
}

// HistoryCounters aggregates offseason activity across a run.
type HistoryCounters struct {
	Retirements     int
	DraftPicks      int
	Signings        int
	CoachingChanges int
}

// HistoryResult is what SimulateHistory hands back: the ready-to-play
// state plus everything that happened getting there.
type HistoryResult struct {
	Final     *LeagueState
	Summaries []SeasonSummary
	Counters  HistoryCounters
	Elapsed   time.Duration
}

// Print displays the run report: champions by year and the aggregate
// counters.
func (r *HistoryResult) Print() {
	fmt.Println("=== League History ===")
	for _, s := range r.Summaries {
		name := string(s.Champion)
		if t, ok := r.Final.Teams[s.Champion]; ok {
			name = t.Name()
		}
		fmt.Printf("%d: %s over %s\n", s.Year, name, s.RunnerUp)
	}
	fmt.Printf("Seasons simulated    : %d\n", len(r.Summaries))
	fmt.Printf("Retirements          : %d\n", r.Counters.Retirements)
	fmt.Printf("Draft selections     : %d\n", r.Counters.DraftPicks)
	fmt.Printf("Free agent signings  : %d\n", r.Counters.Signings)
	fmt.Printf("Coaching changes     : %d\n", r.Counters.CoachingChanges)
	fmt.Printf("Wall time            : %s\n", r.Elapsed)
}
