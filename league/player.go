// Player, Coach, Contract, DraftPick, and Prospect entities. These are
// created and destroyed only inside the offseason stages; the in-season
// pipeline treats them as read-only.

package league

import "fmt"

// PlayerID uniquely identifies a player across the whole run.
type PlayerID string

// CoachID uniquely identifies a coach.
type CoachID string

// ContractID uniquely identifies a contract.
type ContractID string

// Position is the on-field position enum shared with the roster generator.
type Position string

const (
	PosQB Position = "QB"
	PosRB Position = "RB"
	PosWR Position = "WR"
	PosTE Position = "TE"
	PosOL Position = "OL"
	PosDL Position = "DL"
	PosLB Position = "LB"
	PosCB Position = "CB"
	PosS  Position = "S"
	PosK  Position = "K"
	PosP  Position = "P"
)

// Positions lists every known position in canonical order.
var Positions = []Position{PosQB, PosRB, PosWR, PosTE, PosOL, PosDL, PosLB, PosCB, PosS, PosK, PosP}

// OffensivePositions reports whether the position contributes to offensive strength.
func (p Position) Offensive() bool {
	switch p {
	case PosQB, PosRB, PosWR, PosTE, PosOL:
		return true
	}
	return false
}

// RookieMinimumAge is the youngest age the generator may produce.
const RookieMinimumAge = 21

// InjuryStatus is the coarse availability state carried on a player.
type InjuryStatus string

const (
	Healthy InjuryStatus = "healthy"
	Injured InjuryStatus = "injured"
)

// Player models one player. Overall is a 0-99 composite rating; the quick
// game model consumes only Overall, Position, and InjuryStatus.
type Player struct {
	ID         PlayerID
	Name       string
	Position   Position
	Age        int
	Experience int // completed pro seasons
	Overall    int
	Potential  int // rating ceiling used by progression

	TeamID     TeamID     // empty for free agents
	ContractID ContractID // empty when unsigned
	Injury     InjuryStatus
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s, ovr %d, age %d)", p.Name, p.Position, p.Overall, p.Age)
}

// Contract models a player contract. CapHits[i] is the charge in year
// (SignedYear + i); YearsRemaining counts down each offseason and the
// contract voids at zero.
type Contract struct {
	ID             ContractID
	PlayerID       PlayerID
	TeamID         TeamID
	SignedYear     int
	YearsRemaining int
	CapHits        []int64
	Guaranteed     int64
}

// CapHitForYear returns the contract's charge against the cap in the
// given calendar year, 0 if the year falls outside the contract.
func (c *Contract) CapHitForYear(year int) int64 {
	idx := year - c.SignedYear
	if idx < 0 || idx >= len(c.CapHits) {
		return 0
	}
	return c.CapHits[idx]
}

// Coach models a head coach. Rating feeds the quick game model as a
// small strength modifier; Tenure counts seasons with the current team.
type Coach struct {
	ID      CoachID
	Name    string
	Rating  int // 0-99
	Age     int
	Tenure  int
	TeamID  TeamID
	AllTime Record
}

// DraftPick is one selection slot in a draft. Overall is 1-based across
// the whole draft; OriginalTeam differs from OwningTeam after a trade.
type DraftPick struct {
	Year         int
	Round        int
	Overall      int
	OwningTeam   TeamID
	OriginalTeam TeamID
	TradeNote    string
	PlayerID     PlayerID // filled once the pick is used
}

// Prospect is a draft-class member produced by the class generator. The
// engine only requires unique ids, a known position, and a legal age.
type Prospect struct {
	ID        PlayerID
	Name      string
	Position  Position
	Age       int
	Overall   int
	Potential int
}
