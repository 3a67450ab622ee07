package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Export draws the outline to an image file. The format follows the
// extension (.png, .svg or .pdf); a name without one gets ".png". It
// returns the path written.
func Export(o Outline, title, filename string) (string, error) {
	if len(o.Rings) == 0 {
		return "", fmt.Errorf("outline of %s has no rings", o.Label)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	case "":
		filename += ".png"
	default:
		return "", fmt.Errorf("unsupported image format %q", filepath.Ext(filename))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (in)"
	p.Y.Label.Text = "y (in)"
	p.Add(plotter.NewGrid())

	rings := make([]plotter.XYer, len(o.Rings))
	for i, r := range o.Rings {
		xys := make(plotter.XYs, len(r))
		for j, pt := range r {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		rings[i] = xys
	}
	section, err := plotter.NewPolygon(rings...)
	if err != nil {
		return "", err
	}
	section.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	section.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	section.LineStyle.Width = vg.Points(1.5)
	p.Add(section)

	// Square axes so the section keeps its proportions.
	lo, hi := o.Bounds()
	span := math.Max(hi.X-lo.X, hi.Y-lo.Y) * 1.15
	cx, cy := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: cx, Y: lo.Y - span*0.05}},
		Labels: []string{fmt.Sprintf("A = %.3f in²", o.Area())},
	})
	if err != nil {
		return "", err
	}
	p.Add(label)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	size := 6 * vg.Inch
	if err := p.Save(size, size, filename); err != nil {
		return "", fmt.Errorf("failed to save diagram: %w", err)
	}
	return filename, nil
}
