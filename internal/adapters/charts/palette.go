package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	types "github.com/gullylabs/gully/internal/domain/types"
)

// Dashboard color scheme. The dark background and text shades match the
// site stylesheet; bar accents are fixed per ranking kind.
var (
	colorBackground = drawing.ColorFromHex("0E1117")
	colorText       = drawing.ColorFromHex("FAFAFA")
	colorAxis       = drawing.ColorFromHex("8A8D98")
	colorEdge       = drawing.ColorFromHex("FFFFFF")
)

var (
	accentBatsmen = []drawing.Color{drawing.ColorFromHex("FF4B4B")}
	accentBowlers = []drawing.Color{drawing.ColorFromHex("00FFFF")}
	accentTeams   = []drawing.Color{
		drawing.ColorFromHex("FFFF00"),
		drawing.ColorFromHex("FF4B4B"),
		drawing.ColorFromHex("0000FF"),
		drawing.ColorFromHex("7CFC00"),
		drawing.ColorFromHex("FFA500"),
	}
)

// BarSpec describes one rendered chart.
type BarSpec struct {
	Kind    types.Kind
	Title   string
	Accents []drawing.Color
}

// SpecFor builds the rendering spec for a ranking kind and requested size.
func SpecFor(kind types.Kind, n int) BarSpec {
	return BarSpec{Kind: kind, Title: kind.Title(n), Accents: accentsFor(kind)}
}

func accentsFor(kind types.Kind) []drawing.Color {
	switch kind {
	case types.KindBowlers:
		return accentBowlers
	case types.KindTeams:
		return accentTeams
	default:
		return accentBatsmen
	}
}
