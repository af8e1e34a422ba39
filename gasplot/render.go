package gasplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// NewPlot builds a line plot of the series with labeled axes.
func NewPlot(s *Series) (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i].X = float64(pt.Signatures)
		xys[i].Y = float64(pt.Gas)
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add(s.YLabel, line, points)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Render writes the chart of s to out. The image format follows the file
// extension (png, svg, pdf, ...); width and height are in inches.
func Render(s *Series, out string, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid chart size: %vx%v", width, height)
	}

	p, err := NewPlot(s)
	if err != nil {
		return err
	}

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, out); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", out, err)
	}

	return nil
}
