package seed

import (
	"math/rand"
	"strconv"
)

// matchRow is one generated row of matches.csv.
type matchRow struct {
	ID     string
	Season int
	Team1  string
	Team2  string
	Winner string // empty for a no-result match
}

// deliveryRow is one generated row of deliveries.csv.
type deliveryRow struct {
	MatchID       string
	Inning        int
	Over          int
	Ball          int
	Batsman       string
	Bowler        string
	BatsmanRuns   int
	DismissalKind string // empty when no wicket fell
}

// generator simulates matches ball by ball from a seeded source, so the
// same seed always reproduces the same fixtures.
type generator struct {
	rng     *rand.Rand
	rosters map[string][]string
}

func newGenerator(seed int64) *generator {
	g := &generator{
		rng:     rand.New(rand.NewSource(seed)),
		rosters: make(map[string][]string, len(teams)),
	}
	for i, team := range teams {
		g.rosters[team] = roster(i)
	}
	return g
}

// roster builds the eleven player names for the team at index ti. Names are
// assigned from the initial/surname pools by a global player index, which
// keeps every full name unique across teams.
func roster(ti int) []string {
	players := make([]string, 0, playersPerTeam)
	for j := 0; j < playersPerTeam; j++ {
		idx := ti*playersPerTeam + j
		initial := initials[idx/len(surnames)%len(initials)]
		players = append(players, initial+" "+surnames[idx%len(surnames)])
	}
	return players
}

// generate simulates n matches and returns the match and delivery rows.
func (g *generator) generate(n int) ([]matchRow, []deliveryRow) {
	matches := make([]matchRow, 0, n)
	var deliveries []deliveryRow

	for i := 0; i < n; i++ {
		m, balls := g.playMatch(i)
		matches = append(matches, m)
		deliveries = append(deliveries, balls...)
	}
	return matches, deliveries
}

// playMatch simulates one full match: two innings unless the match is
// abandoned, in which case the first innings is cut short and no winner is
// recorded.
func (g *generator) playMatch(index int) (matchRow, []deliveryRow) {
	id := strconv.Itoa(index + 1)
	t1 := teams[g.rng.Intn(len(teams))]
	t2 := teams[g.rng.Intn(len(teams))]
	for t2 == t1 {
		t2 = teams[g.rng.Intn(len(teams))]
	}

	m := matchRow{
		ID:     id,
		Season: firstSeason + index/matchesPerSeason,
		Team1:  t1,
		Team2:  t2,
	}

	if g.rng.Intn(100) < noResultChance {
		// Rain: a partial first innings and no result.
		overs := 1 + g.rng.Intn(oversPerInning)
		_, balls := g.playInnings(id, 1, t1, t2, overs)
		return m, balls
	}

	score1, first := g.playInnings(id, 1, t1, t2, oversPerInning)
	score2, second := g.playInnings(id, 2, t2, t1, oversPerInning)

	switch {
	case score1 > score2:
		m.Winner = t1
	case score2 > score1:
		m.Winner = t2
	}
	return m, append(first, second...)
}

// playInnings simulates up to the given number of overs for the batting
// side, ending early when ten wickets fall. It returns the innings total
// and the delivery rows.
func (g *generator) playInnings(matchID string, inning int, batting, bowling string, overs int) (int, []deliveryRow) {
	batters := g.rosters[batting]
	bowlers := g.rosters[bowling][:bowlersPerTeam]

	striker, nonStriker, nextIn := 0, 1, 2
	total := 0
	var rows []deliveryRow

	for over := 0; over < overs; over++ {
		bowler := bowlers[over%len(bowlers)]
		for ball := 1; ball <= ballsPerOver; ball++ {
			runs, kind := g.nextBall()
			rows = append(rows, deliveryRow{
				MatchID:       matchID,
				Inning:        inning,
				Over:          over + 1,
				Ball:          ball,
				Batsman:       batters[striker],
				Bowler:        bowler,
				BatsmanRuns:   runs,
				DismissalKind: kind,
			})
			total += runs

			if kind != "" {
				if nextIn >= len(batters) {
					return total, rows // all out
				}
				striker = nextIn
				nextIn++
				continue
			}
			if runs%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
		}
		// Batsmen cross at the end of an over.
		striker, nonStriker = nonStriker, striker
	}
	return total, rows
}

// nextBall draws one outcome: either runs off the bat, or a wicket with a
// weighted dismissal kind and no runs.
func (g *generator) nextBall() (runs int, kind string) {
	pick := g.rng.Intn(100)
	for _, o := range ballOutcomes {
		if pick < o.weight {
			if o.wicket {
				return 0, g.nextDismissal()
			}
			return o.runs, ""
		}
		pick -= o.weight
	}
	return 0, ""
}

func (g *generator) nextDismissal() string {
	pick := g.rng.Intn(100)
	for _, d := range dismissals {
		if pick < d.weight {
			return d.kind
		}
		pick -= d.weight
	}
	return dismissals[0].kind
}
