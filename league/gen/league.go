package gen

import (
	"fmt"
	"strings"

	"github.com/j-r-j/Gm-sim-sub016/league"
)

// DefaultLeague returns the built-in 32-team layout: two conferences of
// four four-team divisions. Used whenever no league config file names
// the franchises.
func DefaultLeague() []league.TeamMeta {
	type div struct {
		conf  league.Conference
		index int
		teams [4][2]string // city, nickname
	}
	divs := []div{
		{league.ConferenceAtlantic, 0, [4][2]string{{"Boston", "Harbormen"}, {"Brooklyn", "Ironsides"}, {"Philadelphia", "Founders"}, {"Baltimore", "Privateers"}}},
		{league.ConferenceAtlantic, 1, [4][2]string{{"Columbus", "Aviators"}, {"Detroit", "Forgemen"}, {"Milwaukee", "Northmen"}, {"Indianapolis", "Pacesetters"}}},
		{league.ConferenceAtlantic, 2, [4][2]string{{"Atlanta", "Firebirds"}, {"Charlotte", "Stallions"}, {"Nashville", "Rhythm"}, {"Jacksonville", "Tides"}}},
		{league.ConferenceAtlantic, 3, [4][2]string{{"Houston", "Wranglers"}, {"Dallas", "Marshals"}, {"San Antonio", "Defenders"}, {"Oklahoma City", "Twisters"}}},
		{league.ConferencePacific, 0, [4][2]string{{"Seattle", "Cascades"}, {"Portland", "Lumberjacks"}, {"Vancouver", "Orcas"}, {"Boise", "Bighorns"}}},
		{league.ConferencePacific, 1, [4][2]string{{"San Francisco", "Prospectors"}, {"Oakland", "Growlers"}, {"Sacramento", "Monarchs"}, {"San Jose", "Redwoods"}}},
		{league.ConferencePacific, 2, [4][2]string{{"Los Angeles", "Stars"}, {"San Diego", "Mariners"}, {"Las Vegas", "Scorpions"}, {"Phoenix", "Dustdevils"}}},
		{league.ConferencePacific, 3, [4][2]string{{"Denver", "Summit"}, {"Salt Lake City", "Peaks"}, {"Kansas City", "Stockyarders"}, {"Minneapolis", "Glaciers"}}},
	}

	var meta []league.TeamMeta
	seq := 0
	for _, d := range divs {
		for _, t := range d.teams {
			seq++
			meta = append(meta, league.TeamMeta{
				ID:         league.TeamID(shortID(t[0], seq)),
				City:       t[0],
				Nickname:   t[1],
				Conference: d.conf,
				Division:   d.index,
			})
		}
	}
	return meta
}

// shortID derives a stable team id from the city and slot number.
func shortID(city string, seq int) string {
	prefix := strings.ToUpper(strings.ReplaceAll(city, " ", ""))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%02d", prefix, seq)
}
