// Defines the Team entity and its season/all-time record bookkeeping.
// Exactly 32 teams exist for the lifetime of a league; a Team value is
// never created or destroyed by any stage, only rewritten.

package league

import "fmt"

// Conference identifies one of the two league conferences.
type Conference string

const (
	ConferenceAtlantic Conference = "atlantic"
	ConferencePacific  Conference = "pacific"
)

// Conferences lists both conferences in canonical order.
var Conferences = []Conference{ConferenceAtlantic, ConferencePacific}

// Division identifies a four-team division inside a conference.
// Divisions are indexed 0..3 within their conference so scheduling
// rotations can be computed arithmetically.
type Division struct {
	Conference Conference
	Index      int
}

func (d Division) String() string {
	return fmt.Sprintf("%s-%d", d.Conference, d.Index)
}

// Record tracks wins, losses, ties, and points for one span of games.
type Record struct {
	Wins          int
	Losses        int
	Ties          int
	PointsFor     int
	PointsAgainst int
}

// Games returns the number of games reflected in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct returns the winning percentage with ties counted as half a win.
// A record with no games is 0.
func (r Record) WinPct() float64 {
	g := r.Games()
	if g == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(g)
}

// PointDiff returns points scored minus points allowed.
func (r Record) PointDiff() int {
	return r.PointsFor - r.PointsAgainst
}

// Add folds another record into this one and returns the sum.
func (r Record) Add(other Record) Record {
	return Record{
		Wins:          r.Wins + other.Wins,
		Losses:        r.Losses + other.Losses,
		Ties:          r.Ties + other.Ties,
		PointsFor:     r.PointsFor + other.PointsFor,
		PointsAgainst: r.PointsAgainst + other.PointsAgainst,
	}
}

func (r Record) String() string {
	if r.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Ties)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// TeamID uniquely identifies a team.
type TeamID string

// TeamFinances holds the cap arithmetic for one team for the upcoming year.
// Figures are opaque integer currency units; the engine reports space, it
// does not enforce compliance.
type TeamFinances struct {
	CapLimit int64
	CapUsed  int64
	CapSpace int64
	DeadCap  int64
}

// Team models one franchise. Roster holds player ids; the Player values
// themselves live in LeagueState.Players.
type Team struct {
	ID       TeamID
	City     string
	Nickname string
	Division Division

	Roster  []PlayerID
	CoachID CoachID

	CurrentRecord Record
	AllTimeRecord Record

	Finances    TeamFinances
	PlayoffSeed int // 0 when not in the current playoff field
}

// Name returns the team's display name.
func (t *Team) Name() string {
	return t.City + " " + t.Nickname
}

// HasPlayer reports whether the roster contains the given player id.
func (t *Team) HasPlayer(id PlayerID) bool {
	for _, pid := range t.Roster {
		if pid == id {
			return true
		}
	}
	return false
}
