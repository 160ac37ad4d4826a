package league

// Config groups the structural and tuning parameters of a league. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	NumTeams        int // league size, fixed at 32
	DivisionsPerCon int // divisions per conference
	TeamsPerDiv     int // teams per division

	ScheduleWeeks  int // regular-season window (weeks)
	GamesPerTeam   int // games each team plays
	MaxByesPerWeek int // bye-balance ceiling for the primary scheduler

	WildcardsPerConference int // playoff wildcards per conference
	DraftRounds            int
	RosterLimit            int // active-roster ceiling after maintenance
	SalaryCap              int64
}

// DefaultConfig returns the standard 32-team league layout.
func DefaultConfig() Config {
	return Config{
		NumTeams:               32,
		DivisionsPerCon:        4,
		TeamsPerDiv:            4,
		ScheduleWeeks:          18,
		GamesPerTeam:           17,
		MaxByesPerWeek:         6,
		WildcardsPerConference: 3,
		DraftRounds:            7,
		RosterLimit:            53,
		SalaryCap:              255_000_000,
	}
}

// PlayoffTeamsPerConference returns the playoff field size per conference:
// one division winner per division plus the configured wildcards.
func (c Config) PlayoffTeamsPerConference() int {
	return c.DivisionsPerCon + c.WildcardsPerConference
}
