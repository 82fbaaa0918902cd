package types

import "fmt"

// Kind identifies one of the dashboard rankings.
type Kind string

// Ranking kinds.
const (
	KindBatsmen Kind = "batsmen"
	KindBowlers Kind = "bowlers"
	KindTeams   Kind = "teams"
)

// Kinds lists every ranking kind in display order.
func Kinds() []Kind {
	return []Kind{KindBatsmen, KindBowlers, KindTeams}
}

// ParseKind resolves a URL slug to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindBatsmen, KindBowlers, KindTeams:
		return Kind(s), true
	}
	return "", false
}

// Bounds are the inclusive slider limits for a ranking's top-N control.
type Bounds struct {
	Min     int
	Max     int
	Default int
}

// Clamp forces n into the bounds.
func (b Bounds) Clamp(n int) int {
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

// Bounds returns the top-N control limits for the kind.
func (k Kind) Bounds() Bounds {
	if k == KindTeams {
		return Bounds{Min: 3, Max: 10, Default: 5}
	}
	return Bounds{Min: 5, Max: 20, Default: 10}
}

// Title is the chart heading for a top-n request of this kind.
func (k Kind) Title(n int) string {
	switch k {
	case KindBowlers:
		return fmt.Sprintf("Top %d Bowlers by Wickets Taken", n)
	case KindTeams:
		return fmt.Sprintf("Top %d Teams by Number of Wins", n)
	default:
		return fmt.Sprintf("Top %d Batsmen by Total Runs", n)
	}
}

// EntityLabel names the ranked entity, for table headings.
func (k Kind) EntityLabel() string {
	switch k {
	case KindBowlers:
		return "Bowler"
	case KindTeams:
		return "Team"
	default:
		return "Batsman"
	}
}

// MetricLabel names the ranked value, for table headings.
func (k Kind) MetricLabel() string {
	switch k {
	case KindBowlers:
		return "Wickets"
	case KindTeams:
		return "Wins"
	default:
		return "Runs"
	}
}
