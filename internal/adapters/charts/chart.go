// Package charts renders ranking bar charts as in-memory PNG images.
package charts

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	types "github.com/gullylabs/gully/internal/domain/types"
	"github.com/gullylabs/gully/pkg/logger"
	"github.com/gullylabs/gully/pkg/metrics"
)

// Default output geometry.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Fixed chart geometry and typography.
const (
	barSpacing     = 18
	maxBarWidth    = 80
	minBarWidth    = 10
	axisGutter     = 120 // horizontal padding plus the y-axis strip
	labelGap       = 5   // pixels between a bar top and its value label
	titleFontSize  = 16.0
	axisFontSize   = 11.0
	valueFontSize  = 10.0
	xLabelRotation = 45.0
	// Vertical headroom above the tallest bar so its value label fits.
	headroomRatio = 1.12
)

// Renderer renders rankings as bar charts.
type Renderer struct {
	width  int
	height int
	log    logger.Logger
}

// New creates a Renderer with configuration options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		log:    logger.Get().Named("charts"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bars renders rows as a bar chart PNG: one bar per row in row order, the
// row value drawn above each bar and the row name beneath it, rotated 45°.
// Zero rows produce a placeholder panel rather than an error, so an empty
// ranking still yields a valid image.
func (r *Renderer) Bars(ctx context.Context, rows []types.Row, spec BarSpec) ([]byte, error) {
	start := time.Now()

	if len(rows) == 0 {
		png, err := r.placeholder(spec.Title, "No data to display")
		if err != nil {
			metrics.RecordChartRenderError(string(spec.Kind))
			return nil, err
		}
		metrics.RecordChartRender(string(spec.Kind), time.Since(start))
		r.log.Debug(ctx, "rendered placeholder chart", logger.String("kind", string(spec.Kind)))
		return png, nil
	}

	maxValue := 0
	for _, row := range rows {
		if row.Value > maxValue {
			maxValue = row.Value
		}
	}
	ceiling := float64(maxValue) * headroomRatio
	if ceiling <= 0 {
		// All-zero values still need a non-degenerate axis.
		ceiling = 1
	}

	bars := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		bars = append(bars, chart.Value{
			Value: float64(row.Value),
			Label: row.Name,
			Style: chart.Style{
				FillColor:   spec.Accents[i%len(spec.Accents)],
				StrokeColor: colorEdge,
				StrokeWidth: 1,
			},
		})
	}

	barWidth := r.barWidth(len(rows))
	bc := chart.BarChart{
		Title: spec.Title,
		TitleStyle: chart.Style{
			FontColor: colorText,
			FontSize:  titleFontSize,
		},
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: colorBackground,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24},
		},
		Canvas: chart.Style{FillColor: colorBackground},
		XAxis: chart.Style{
			FontColor:           colorText,
			FontSize:            axisFontSize,
			StrokeColor:         colorAxis,
			TextRotationDegrees: xLabelRotation,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor:   colorText,
				FontSize:    axisFontSize,
				StrokeColor: colorAxis,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: ceiling},
		},
		Bars: bars,
	}
	bc.Elements = []chart.Renderable{valueLabels(rows, barWidth, barSpacing, ceiling)}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		metrics.RecordChartRenderError(string(spec.Kind))
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	took := time.Since(start)
	metrics.RecordChartRender(string(spec.Kind), took)
	r.log.Debug(ctx, "rendered chart",
		logger.String("kind", string(spec.Kind)),
		logger.Int("bars", len(rows)),
		logger.Duration("took", took),
	)
	return buf.Bytes(), nil
}

// barWidth spreads the bars across the drawable width within fixed limits.
// The library rescales when the result still overflows; valueLabels mirrors
// that rescale.
func (r *Renderer) barWidth(count int) int {
	usable := r.width - axisGutter
	w := usable/count - barSpacing
	if w > maxBarWidth {
		return maxBarWidth
	}
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}

// valueLabels draws each row's value centered above its bar. The geometry
// mirrors BarChart.drawBars: bars start at the canvas left edge, each bar
// sits inside half its spacing, and the configured width and spacing shrink
// proportionally when they overflow the canvas.
func valueLabels(rows []types.Row, barWidth, spacing int, ceiling float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		font := defaults.GetFont()
		if font == nil {
			font, _ = chart.GetDefaultFont()
		}
		r.SetFont(font)
		r.SetFontSize(valueFontSize)
		r.SetFontColor(colorText)

		width, space := scaledBarGeometry(canvasBox, barWidth, spacing, len(rows))
		xoffset := canvasBox.Left
		for _, row := range rows {
			text := strconv.Itoa(row.Value)
			measured := r.MeasureText(text)
			center := xoffset + space/2 + width/2
			top := canvasBox.Bottom - int(math.Ceil(float64(row.Value)/ceiling*float64(canvasBox.Height())))
			r.Text(text, center-measured.Width()/2, top-labelGap)
			xoffset += width + space
		}
	}
}

// scaledBarGeometry mirrors the library's bar sizing: when the configured
// geometry overflows the canvas, width and spacing shrink to share the
// canvas evenly while keeping their aspect ratio.
func scaledBarGeometry(canvasBox chart.Box, barWidth, spacing, count int) (int, int) {
	if count == 0 {
		return barWidth, spacing
	}
	total := count * (barWidth + spacing)
	if total <= canvasBox.Width() {
		return barWidth, spacing
	}
	aspect := float64(barWidth) / float64(barWidth+spacing)
	per := canvasBox.Width() / count
	w := int(math.Floor(float64(per) * aspect))
	return w, per - w
}
