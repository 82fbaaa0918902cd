package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBG     = color.RGBA{R: 0x0E, G: 0x11, B: 0x17, A: 0xFF}
	placeholderText   = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
	placeholderNotice = color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}
)

// placeholder renders a dark panel with the chart title and a centered
// notice. Used when a ranking has no rows: the dashboard still gets a valid
// PNG of the configured size.
func (r *Renderer) placeholder(title, notice string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, y, placeholderBG)
		}
	}

	face := basicfont.Face7x13
	centered := func(text string, baseline int, col color.RGBA) {
		d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
		w := d.MeasureString(text).Ceil()
		d.Dot = fixed.Point26_6{X: fixed.I((r.width - w) / 2), Y: fixed.I(baseline)}
		d.DrawString(text)
	}
	centered(title, r.height/2-10, placeholderText)
	centered(notice, r.height/2+12, placeholderNotice)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
