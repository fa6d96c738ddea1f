package analysis

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotSteps renders the steps-per-episode learning curve of a training run
// to a PNG at plotPath.
func PlotSteps(dataset *StepsDataSet, plotPath string) error {
	if dir := filepath.Dir(plotPath); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Steps per episode"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Steps"

	points := make(plotter.XYs, len(dataset.Steps))
	for i, v := range dataset.Steps {
		points[i] = plotter.XY{
			X: float64(dataset.Episodes[i]),
			Y: float64(v),
		}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("steps", line)

	return p.Save(8*vg.Inch, 8*vg.Inch, plotPath)
}
