// Draft order: worst pick position first. Non-playoff teams go by
// ascending win% (point differential breaking ties, worst first), then
// playoff teams by elimination round, the Super Bowl loser second to
// last and the champion last. The primary computation feeds a reconcile
// step that tops up any missing team by ascending win%, so the returned
// order always contains all 32 ids exactly once even on incomplete
// playoff data.

package league

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// ComputeDraftOrder returns the full draft order for the year after the
// given season. The result always has one entry per team.
func ComputeDraftOrder(st *Standings, bracket *PlayoffBracket, teams map[TeamID]*Team) []TeamID {
	primary := computeDraftOrderPrimary(st, bracket, teams)
	return reconcileDraftOrder(primary, st, teams)
}

// computeDraftOrderPrimary orders the teams the bracket accounts for. It
// may return fewer than 32 entries when playoff data is incomplete; the
// caller reconciles.
func computeDraftOrderPrimary(st *Standings, bracket *PlayoffBracket, teams map[TeamID]*Team) []TeamID {
	inPlayoffs := make(map[TeamID]bool)
	if bracket != nil {
		for _, id := range bracket.Participants() {
			inPlayoffs[id] = true
		}
	}

	var order []TeamID
	var nonPlayoff []TeamID
	for id := range teams {
		if !inPlayoffs[id] {
			nonPlayoff = append(nonPlayoff, id)
		}
	}
	sortWorstFirst(nonPlayoff, st)
	order = append(order, nonPlayoff...)

	if bracket == nil {
		return order
	}

	// Eliminated teams, earliest round first, worst record first within
	// a round.
	byRound := make(map[PlayoffRound][]TeamID)
	for id, round := range bracket.Eliminated {
		byRound[round] = append(byRound[round], id)
	}
	for _, round := range []PlayoffRound{RoundWildCard, RoundDivisional, RoundConference} {
		ids := byRound[round]
		sortWorstFirst(ids, st)
		order = append(order, ids...)
	}
	if bracket.RunnerUp != "" {
		order = append(order, bracket.RunnerUp)
	}
	if bracket.Champion != "" {
		order = append(order, bracket.Champion)
	}
	return order
}

// reconcileDraftOrder guarantees completeness: drops unknown or
// duplicate ids from the primary order, then appends any team the
// primary computation missed, by ascending win%.
func reconcileDraftOrder(primary []TeamID, st *Standings, teams map[TeamID]*Team) []TeamID {
	out := make([]TeamID, 0, len(teams))
	seen := make(map[TeamID]bool, len(teams))
	for _, id := range primary {
		if _, ok := teams[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	var missing []TeamID
	for id := range teams {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		logrus.Warnf("draft order: primary computation missed %d teams, topping up by record", len(missing))
		sortWorstFirst(missing, st)
		out = append(out, missing...)
	}
	return out
}

// sortWorstFirst orders ids ascending by win%, then ascending point
// differential, then id for determinism.
func sortWorstFirst(ids []TeamID, st *Standings) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := st.Line(ids[i]), st.Line(ids[j])
		if ap, bp := a.Overall.WinPct(), b.Overall.WinPct(); ap != bp {
			return ap < bp
		}
		if ad, bd := a.Overall.PointDiff(), b.Overall.PointDiff(); ad != bd {
			return ad < bd
		}
		return ids[i] < ids[j]
	})
}

// BuildDraftPicks expands a draft order into the year's pick list, every
// round in order, each team owning its original slot.
func BuildDraftPicks(order []TeamID, year, rounds int) []DraftPick {
	picks := make([]DraftPick, 0, len(order)*rounds)
	for round := 1; round <= rounds; round++ {
		for i, id := range order {
			picks = append(picks, DraftPick{
				Year:         year,
				Round:        round,
				Overall:      (round-1)*len(order) + i + 1,
				OwningTeam:   id,
				OriginalTeam: id,
			})
		}
	}
	return picks
}
