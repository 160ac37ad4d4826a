// Stage 1: player progression. Every player ages one year and gains a
// season of experience; skill moves along an age curve — growth toward
// potential through the mid-20s, a plateau, then accelerating decline.

package league

// progression curve breakpoints
const (
	growthAgeMax  = 24
	plateauAgeMax = 28
	declineAgeMax = 31
)

func applyProgression(state *LeagueState, prng *PartitionedRNG) *LeagueState {
	rng := prng.ForSubsystem(SubsystemProgress)
	next := state.shallowCopy()
	next.Players = clonePlayers(state.Players)

	for _, id := range next.PlayerIDs() {
		p := next.Players[id]
		p.Age++
		p.Experience++

		var delta int
		switch {
		case p.Age <= growthAgeMax:
			delta = rng.Intn(4) // 0..3
			if p.Overall+delta > p.Potential {
				delta = p.Potential - p.Overall
			}
		case p.Age <= plateauAgeMax:
			delta = rng.Intn(3) - 1 // -1..1
		case p.Age <= declineAgeMax:
			delta = -rng.Intn(3) // -2..0
		default:
			delta = -1 - rng.Intn(3) // -3..-1
		}
		p.Overall = clampRating(p.Overall + delta)

		// Injuries do not carry across seasons.
		p.Injury = Healthy
	}
	return next
}

func clampRating(v int) int {
	if v < 20 {
		return 20
	}
	if v > 99 {
		return 99
	}
	return v
}
