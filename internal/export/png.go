package export

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"github.com/fogleman/gg"

	"TacNotepad/internal/state"
)

// PNG rasterises paths at canvas size on a solid background.
func PNG(w io.Writer, paths []state.Path, canvas fyne.Size, background string) error {
	width, height := int(canvas.Width), int(canvas.Height)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %v", canvas)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(state.ParseColor(background))
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		dc.SetColor(state.ParseColor(path.Color))
		dc.SetLineWidth(float64(path.Width))
		dc.MoveTo(float64(path.Points[0].X), float64(path.Points[0].Y))
		for _, pt := range path.Points[1:] {
			dc.LineTo(float64(pt.X), float64(pt.Y))
		}
		dc.Stroke()
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
