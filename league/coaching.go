// Stage 4: coaching changes. Teams with poor records carry elevated
// firing odds; every change is reported with explicit before/after
// coach ids. Surviving coaches gain a year of tenure.

package league

// firingProbability maps a season win percentage to the chance the head
// coach is replaced.
func firingProbability(winPct float64) float64 {
	switch {
	case winPct < 0.30:
		return 0.65
	case winPct < 0.45:
		return 0.30
	case winPct < 0.55:
		return 0.10
	default:
		return 0.03
	}
}

func applyCoachingChanges(state *LeagueState, st *Standings, gens Generators, prng *PartitionedRNG) (*LeagueState, []CoachingChange) {
	rng := prng.ForSubsystem(SubsystemCoaching)

	next := state.shallowCopy()
	next.Coaches = cloneCoaches(state.Coaches)
	next.Teams = cloneTeams(state.Teams)

	var changes []CoachingChange
	for _, tid := range next.TeamIDs() {
		t := next.Teams[tid]
		winPct := t.CurrentRecord.WinPct()
		if st != nil {
			winPct = st.Line(tid).Overall.WinPct()
		}

		if rng.Float64() >= firingProbability(winPct) {
			if c, ok := next.Coaches[t.CoachID]; ok {
				c.Tenure++
				c.Age++
			}
			continue
		}

		old := t.CoachID
		delete(next.Coaches, old)

		replacement := gens.Coaches.GenerateCoach(rng)
		replacement.TeamID = tid
		replacement.Tenure = 0
		next.Coaches[replacement.ID] = replacement
		t.CoachID = replacement.ID

		changes = append(changes, CoachingChange{Team: tid, OldCoach: old, NewCoach: replacement.ID})
	}
	return next, changes
}
