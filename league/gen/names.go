package gen

import "math/rand"

var firstNames = []string{
	"Marcus", "Devin", "Jalen", "Tyler", "Brandon", "Caleb", "Darius", "Elijah",
	"Grant", "Hunter", "Isaiah", "Jordan", "Kendall", "Logan", "Malik", "Nathan",
	"Omar", "Preston", "Quentin", "Rashad", "Silas", "Trevon", "Victor", "Wyatt",
	"Xavier", "Zane", "Andre", "Blake", "Cole", "Dexter", "Emmett", "Felix",
}

var lastNames = []string{
	"Abernathy", "Barlow", "Callahan", "Delgado", "Ellison", "Fontaine", "Graves",
	"Holloway", "Irving", "Jennings", "Kessler", "Lockhart", "Mercer", "Naylor",
	"Okafor", "Pruitt", "Quimby", "Radcliffe", "Sandoval", "Thackeray", "Underwood",
	"Vance", "Whitfield", "Yarbrough", "Zimmerman", "Ashford", "Braddock", "Crowley",
	"Dunmore", "Eastman", "Falkner", "Goodwin",
}

// randomName draws a first/last combination. Collisions are fine; names
// carry no identity, ids do.
func randomName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}
