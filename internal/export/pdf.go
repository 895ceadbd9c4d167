package export

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"github.com/jung-kurt/gofpdf"

	"TacNotepad/internal/state"
)

// A4 in millimetres, less a 10mm margin on each side.
const (
	pdfMargin = 10.0
	pdfWidth  = 210.0 - 2*pdfMargin
	pdfHeight = 297.0 - 2*pdfMargin
)

// PDF draws paths onto one A4 page. The canvas, grown to include any
// stroke drawn outside it, is scaled to fit inside the margins.
func PDF(w io.Writer, paths []state.Path, canvas fyne.Size) error {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %v", canvas)
	}
	region := state.AreaOf(canvas)
	if content, ok := state.Bounds(paths); ok {
		region = region.Union(content)
	}
	scale := min(pdfWidth/float64(region.Width), pdfHeight/float64(region.Height))
	offX := pdfMargin - float64(region.X)*scale
	offY := pdfMargin - float64(region.Y)*scale

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		r, g, b := rgb255(path.Color)
		p.SetDrawColor(r, g, b)
		p.SetLineWidth(float64(path.Width) * scale)
		for i := 1; i < len(path.Points); i++ {
			p.Line(
				offX+float64(path.Points[i-1].X)*scale, offY+float64(path.Points[i-1].Y)*scale,
				offX+float64(path.Points[i].X)*scale, offY+float64(path.Points[i].Y)*scale,
			)
		}
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func rgb255(hex string) (int, int, int) {
	r, g, b, _ := state.ParseColor(hex).RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
