package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/j-r-j/Gm-sim-sub016/league"
)

// Define structs for the league YAML
type LeagueFile struct {
	Teams  []TeamEntry `yaml:"teams"`
	Tuning Tuning      `yaml:"tuning"`
}

type TeamEntry struct {
	ID         string `yaml:"id"`
	City       string `yaml:"city"`
	Nickname   string `yaml:"nickname"`
	Conference string `yaml:"conference"`
	Division   int    `yaml:"division"`
}

type Tuning struct {
	MaxByesPerWeek int   `yaml:"max_byes_per_week"`
	RosterLimit    int   `yaml:"roster_limit"`
	SalaryCap      int64 `yaml:"salary_cap"`
	DraftRounds    int   `yaml:"draft_rounds"`
}

// LoadLeagueConfig reads a league YAML and returns the franchise list
// plus the base config with any tuning overrides applied. The file must
// describe the full league; a short list is a configuration error, not
// something the engine should paper over.
func LoadLeagueConfig(path string, base league.Config) ([]league.TeamMeta, league.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, base, fmt.Errorf("read league config: %w", err)
	}

	var lf LeagueFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, base, fmt.Errorf("parse league config: %w", err)
	}

	if len(lf.Teams) != base.NumTeams {
		return nil, base, fmt.Errorf("league config names %d teams, want %d", len(lf.Teams), base.NumTeams)
	}

	meta := make([]league.TeamMeta, 0, len(lf.Teams))
	for _, t := range lf.Teams {
		conf := league.Conference(t.Conference)
		if conf != league.ConferenceAtlantic && conf != league.ConferencePacific {
			return nil, base, fmt.Errorf("team %q: unknown conference %q", t.ID, t.Conference)
		}
		if t.Division < 0 || t.Division >= base.DivisionsPerCon {
			return nil, base, fmt.Errorf("team %q: division %d out of range", t.ID, t.Division)
		}
		meta = append(meta, league.TeamMeta{
			ID:         league.TeamID(t.ID),
			City:       t.City,
			Nickname:   t.Nickname,
			Conference: conf,
			Division:   t.Division,
		})
	}

	cfg := base
	if lf.Tuning.MaxByesPerWeek > 0 {
		cfg.MaxByesPerWeek = lf.Tuning.MaxByesPerWeek
	}
	if lf.Tuning.RosterLimit > 0 {
		cfg.RosterLimit = lf.Tuning.RosterLimit
	}
	if lf.Tuning.SalaryCap > 0 {
		cfg.SalaryCap = lf.Tuning.SalaryCap
	}
	if lf.Tuning.DraftRounds > 0 {
		cfg.DraftRounds = lf.Tuning.DraftRounds
	}
	return meta, cfg, nil
}
