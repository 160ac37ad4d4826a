// Standings computation: a pure function of completed games. The
// tiebreak chain is overall win% -> divisional win% -> conference win%
// -> point differential; teams equal on all four stay adjacent and are
// ordered by id so the result is a deterministic total order.

package league

import (
	"sort"
)

// TeamLine is one team's standings line: its overall record plus the
// divisional and conference splits the tiebreakers read.
type TeamLine struct {
	Team       TeamID
	Overall    Record
	Divisional Record
	Conference Record
}

// Standings is the ordered result for one season's completed games.
type Standings struct {
	DivisionOrder   map[Division][]TeamID
	ConferenceOrder map[Conference][]TeamID
	Lines           map[TeamID]TeamLine
}

// Line returns the standings line for a team; the zero line when unknown.
func (s *Standings) Line(id TeamID) TeamLine {
	return s.Lines[id]
}

// ComputeStandings folds completed games into ordered division and
// conference tables. Incomplete games are ignored.
func ComputeStandings(games []*ScheduledGame, teams map[TeamID]*Team) *Standings {
	lines := make(map[TeamID]TeamLine, len(teams))
	for id := range teams {
		lines[id] = TeamLine{Team: id}
	}

	sameDivision := func(a, b TeamID) bool {
		ta, ok1 := teams[a]
		tb, ok2 := teams[b]
		return ok1 && ok2 && ta.Division == tb.Division
	}
	sameConference := func(a, b TeamID) bool {
		ta, ok1 := teams[a]
		tb, ok2 := teams[b]
		return ok1 && ok2 && ta.Division.Conference == tb.Division.Conference
	}

	for _, g := range games {
		if !g.Completed {
			continue
		}
		apply := func(id, opp TeamID, pf, pa int) {
			line, ok := lines[id]
			if !ok {
				return
			}
			delta := gameRecord(pf, pa)
			line.Overall = line.Overall.Add(delta)
			if sameDivision(id, opp) {
				line.Divisional = line.Divisional.Add(delta)
			}
			if sameConference(id, opp) {
				line.Conference = line.Conference.Add(delta)
			}
			lines[id] = line
		}
		apply(g.Home, g.Away, g.HomeScore, g.AwayScore)
		apply(g.Away, g.Home, g.AwayScore, g.HomeScore)
	}

	st := &Standings{
		DivisionOrder:   make(map[Division][]TeamID),
		ConferenceOrder: make(map[Conference][]TeamID),
		Lines:           lines,
	}

	byDivision := make(map[Division][]TeamID)
	byConference := make(map[Conference][]TeamID)
	for id, t := range teams {
		byDivision[t.Division] = append(byDivision[t.Division], id)
		byConference[t.Division.Conference] = append(byConference[t.Division.Conference], id)
	}
	for div, ids := range byDivision {
		st.DivisionOrder[div] = sortByTiebreak(ids, lines)
	}
	for conf, ids := range byConference {
		st.ConferenceOrder[conf] = sortByTiebreak(ids, lines)
	}
	return st
}

func gameRecord(pf, pa int) Record {
	r := Record{PointsFor: pf, PointsAgainst: pa}
	switch {
	case pf > pa:
		r.Wins = 1
	case pf < pa:
		r.Losses = 1
	default:
		r.Ties = 1
	}
	return r
}

// sortByTiebreak orders team ids best-first under the tiebreak chain.
func sortByTiebreak(ids []TeamID, lines map[TeamID]TeamLine) []TeamID {
	out := append([]TeamID(nil), ids...)
	sort.Slice(out, func(i, j int) bool {
		return tiebreakLess(lines[out[i]], lines[out[j]])
	})
	return out
}

// tiebreakLess reports whether a finishes ahead of b.
func tiebreakLess(a, b TeamLine) bool {
	if ap, bp := a.Overall.WinPct(), b.Overall.WinPct(); ap != bp {
		return ap > bp
	}
	if ap, bp := a.Divisional.WinPct(), b.Divisional.WinPct(); ap != bp {
		return ap > bp
	}
	if ap, bp := a.Conference.WinPct(), b.Conference.WinPct(); ap != bp {
		return ap > bp
	}
	if ad, bd := a.Overall.PointDiff(), b.Overall.PointDiff(); ad != bd {
		return ad > bd
	}
	// Fully equal: keep the order deterministic.
	return a.Team < b.Team
}

// PlayoffField returns each conference's playoff teams in seed order:
// division winners re-sorted among themselves take seeds 1..4 regardless
// of record against the wildcards; the next best conference records fill
// the wildcard seeds.
func PlayoffField(st *Standings, teams map[TeamID]*Team, cfg Config) map[Conference][]TeamID {
	field := make(map[Conference][]TeamID, len(Conferences))
	for _, conf := range Conferences {
		var winners []TeamID
		inField := make(map[TeamID]bool)
		for div, order := range st.DivisionOrder {
			if div.Conference != conf || len(order) == 0 {
				continue
			}
			winners = append(winners, order[0])
			inField[order[0]] = true
		}
		winners = sortByTiebreak(winners, st.Lines)

		var wildcards []TeamID
		for _, id := range st.ConferenceOrder[conf] {
			if len(wildcards) == cfg.WildcardsPerConference {
				break
			}
			if !inField[id] {
				wildcards = append(wildcards, id)
			}
		}
		field[conf] = append(winners, wildcards...)
	}
	return field
}
