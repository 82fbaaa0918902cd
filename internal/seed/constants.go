package seed

// Fixture sizes.
const (
	playersPerTeam   = 11
	bowlersPerTeam   = 5
	oversPerInning   = 20
	ballsPerOver     = 6
	firstSeason      = 2017
	matchesPerSeason = 60
)

// noResultChance is the per-match probability (percent) of an abandoned
// match with no winner and a truncated first innings.
const noResultChance = 3

// teams that appear in the generated fixtures.
var teams = []string{
	"Mumbai Indians",
	"Chennai Super Kings",
	"Kolkata Knight Riders",
	"Royal Challengers Bangalore",
	"Rajasthan Royals",
	"Sunrisers Hyderabad",
	"Delhi Capitals",
	"Kings XI Punjab",
}

// initials and surnames combine into player names. The pools are sized so
// every generated player across all rosters gets a distinct full name.
var initials = []string{
	"A", "B", "C", "D", "G", "H", "J", "K", "M", "N", "P", "R", "S", "T", "V", "Y",
}

var surnames = []string{
	"Sharma", "Patel", "Singh", "Kumar", "Reddy", "Nair", "Iyer", "Menon",
	"Rao", "Joshi", "Chopra", "Mehta", "Verma", "Kapoor", "Malhotra", "Gill",
	"Dube", "Yadav", "Pandey", "Mishra", "Tiwari", "Chahal", "Saini", "Bedi",
	"Thakur", "Rawat", "Negi", "Bisht", "Khanna", "Sethi", "Anand", "Bajwa",
	"Dhillon", "Grewal", "Sandhu", "Brar", "Randhawa", "Chawla", "Bhatia",
	"Arora", "Suri", "Tandon", "Wadhwa", "Lamba",
}

// ballOutcome is one weighted entry in the per-ball outcome table.
type ballOutcome struct {
	runs   int
	wicket bool
	weight int
}

// ballOutcomes approximates a T20 scoring distribution. Weights sum to 100.
var ballOutcomes = []ballOutcome{
	{runs: 0, weight: 30},
	{runs: 1, weight: 34},
	{runs: 2, weight: 9},
	{runs: 3, weight: 1},
	{runs: 4, weight: 13},
	{runs: 6, weight: 8},
	{wicket: true, weight: 5},
}

// dismissal is one weighted dismissal kind.
type dismissal struct {
	kind   string
	weight int
}

// dismissals carries the season-like mix of dismissal kinds. "run out" is
// kept in the mix on purpose: the dashboard must never credit it to a
// bowler, so the generated data has to contain some.
var dismissals = []dismissal{
	{kind: "caught", weight: 58},
	{kind: "bowled", weight: 18},
	{kind: "lbw", weight: 8},
	{kind: "run out", weight: 7},
	{kind: "stumped", weight: 5},
	{kind: "caught and bowled", weight: 3},
	{kind: "hit wicket", weight: 1},
}
