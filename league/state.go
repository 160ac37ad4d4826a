// LeagueState is the single snapshot value threaded through every stage.
// Stages never mutate a snapshot they were handed: they clone the pieces
// they rewrite and return a new value. Map iteration order is random in
// Go, so anything consuming randomness walks ids in sorted order.

package league

import (
	"fmt"
	"sort"
)

// LeagueState is one immutable snapshot of the whole league.
type LeagueState struct {
	Year   int
	Config Config

	Teams     map[TeamID]*Team
	Players   map[PlayerID]*Player
	Contracts map[ContractID]*Contract
	Coaches   map[CoachID]*Coach

	FreeAgents []PlayerID // unsigned players available to free agency
	DraftClass []Prospect // current year's class, empty after the draft
	Picks      []DraftPick

	Schedule  *Schedule
	Summaries []SeasonSummary
}

// TeamIDs returns every team id in sorted order for deterministic iteration.
func (s *LeagueState) TeamIDs() []TeamID {
	ids := make([]TeamID, 0, len(s.Teams))
	for id := range s.Teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PlayerIDs returns every player id in sorted order.
func (s *LeagueState) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ContractIDs returns every contract id in sorted order.
func (s *LeagueState) ContractIDs() []ContractID {
	ids := make([]ContractID, 0, len(s.Contracts))
	for id := range s.Contracts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// shallowCopy duplicates the snapshot itself; the maps are shared until
// a stage replaces them via the clone helpers below.
func (s *LeagueState) shallowCopy() *LeagueState {
	next := *s
	return &next
}

// cloneTeams returns a deep copy of the team map.
func cloneTeams(teams map[TeamID]*Team) map[TeamID]*Team {
	out := make(map[TeamID]*Team, len(teams))
	for id, t := range teams {
		cp := *t
		cp.Roster = append([]PlayerID(nil), t.Roster...)
		out[id] = &cp
	}
	return out
}

// clonePlayers returns a deep copy of the player map.
func clonePlayers(players map[PlayerID]*Player) map[PlayerID]*Player {
	out := make(map[PlayerID]*Player, len(players))
	for id, p := range players {
		cp := *p
		out[id] = &cp
	}
	return out
}

// cloneContracts returns a deep copy of the contract map.
func cloneContracts(contracts map[ContractID]*Contract) map[ContractID]*Contract {
	out := make(map[ContractID]*Contract, len(contracts))
	for id, c := range contracts {
		cp := *c
		cp.CapHits = append([]int64(nil), c.CapHits...)
		out[id] = &cp
	}
	return out
}

// cloneCoaches returns a deep copy of the coach map.
func cloneCoaches(coaches map[CoachID]*Coach) map[CoachID]*Coach {
	out := make(map[CoachID]*Coach, len(coaches))
	for id, c := range coaches {
		cp := *c
		out[id] = &cp
	}
	return out
}

// CheckInvariants verifies the structural invariants that must hold at
// every stage boundary. A violation is a programmer error: callers in
// tests treat a non-nil return as fatal.
func CheckInvariants(s *LeagueState) error {
	if len(s.Teams) != s.Config.NumTeams {
		return fmt.Errorf("team count %d, want %d", len(s.Teams), s.Config.NumTeams)
	}
	for _, id := range s.TeamIDs() {
		t := s.Teams[id]
		if len(t.Roster) > s.Config.RosterLimit {
			return fmt.Errorf("team %s roster %d exceeds limit %d", id, len(t.Roster), s.Config.RosterLimit)
		}
		seen := make(map[PlayerID]bool, len(t.Roster))
		for _, pid := range t.Roster {
			if seen[pid] {
				return fmt.Errorf("team %s roster lists %s twice", id, pid)
			}
			seen[pid] = true
			p, ok := s.Players[pid]
			if !ok {
				return fmt.Errorf("team %s roster references missing player %s", id, pid)
			}
			if p.TeamID != id {
				return fmt.Errorf("player %s on roster of %s but TeamID is %q", pid, id, p.TeamID)
			}
		}
	}
	for _, cid := range s.ContractIDs() {
		c := s.Contracts[cid]
		if _, ok := s.Players[c.PlayerID]; !ok {
			return fmt.Errorf("contract %s references missing player %s", cid, c.PlayerID)
		}
	}
	// Cap usage must equal the sum of active contract hits for the year.
	for _, id := range s.TeamIDs() {
		var sum int64
		for _, cid := range s.ContractIDs() {
			c := s.Contracts[cid]
			if c.TeamID == id {
				sum += c.CapHitForYear(s.Year)
			}
		}
		if got := s.Teams[id].Finances.CapUsed; got != sum {
			return fmt.Errorf("team %s cap used %d, contracts sum to %d", id, got, sum)
		}
	}
	return nil
}
