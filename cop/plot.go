// Package cop renders the common operational picture: sensor positions and
// detected objects on the shared north-east plane.
package cop

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/LdDl/fusion-go/fusion"
)

// Axis ranges of the rendered picture, meters
const (
	eastMin  = -5.0
	eastMax  = 80.0
	northMin = -5.0
	northMax = 160.0
)

// Plotter writes numbered operational picture PNGs into a directory. It
// implements fusion.Visualizer, so a station renders one picture per
// executed tick.
type Plotter struct {
	outputDir string
	rendered  int
}

// NewPlotter creates a plotter writing into the given directory. The
// directory is created on the first render if it does not exist.
func NewPlotter(outputDir string) *Plotter {
	return &Plotter{
		outputDir: outputDir,
	}
}

// Render draws sensors (green triangles labeled by camera id) and objects
// (red circles labeled by class) and saves the picture as the next numbered
// PNG file.
func (p *Plotter) Render(sensors []fusion.Sensor[fusion.Frame], objects []fusion.IdentifiedObject) error {
	picture := plot.New()
	picture.Title.Text = "Operational picture"
	picture.X.Label.Text = "East [meters]"
	picture.Y.Label.Text = "North [meters]"
	picture.Add(plotter.NewGrid())

	sensorXYs := make(plotter.XYs, len(sensors))
	sensorLabels := make([]string, len(sensors))
	for i, sensor := range sensors {
		sensorXYs[i] = plotter.XY{X: sensor.Location().East, Y: sensor.Location().North}
		sensorLabels[i] = fmt.Sprintf("Camera %d", sensor.ID())
	}
	sensorScatter, err := plotter.NewScatter(sensorXYs)
	if err != nil {
		return errors.Wrap(err, "can't build sensors scatter")
	}
	sensorScatter.GlyphStyle.Color = color.RGBA{G: 160, A: 255}
	sensorScatter.GlyphStyle.Radius = vg.Points(5)
	sensorScatter.GlyphStyle.Shape = draw.PyramidGlyph{}
	picture.Add(sensorScatter)
	sensorNames, err := plotter.NewLabels(plotter.XYLabels{XYs: sensorXYs, Labels: sensorLabels})
	if err != nil {
		return errors.Wrap(err, "can't build sensors labels")
	}
	picture.Add(sensorNames)

	objectXYs := make(plotter.XYs, len(objects))
	objectLabels := make([]string, len(objects))
	for i, object := range objects {
		objectXYs[i] = plotter.XY{X: object.Location.East, Y: object.Location.North}
		objectLabels[i] = object.Class
	}
	objectScatter, err := plotter.NewScatter(objectXYs)
	if err != nil {
		return errors.Wrap(err, "can't build objects scatter")
	}
	objectScatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	objectScatter.GlyphStyle.Radius = vg.Points(4)
	objectScatter.GlyphStyle.Shape = draw.CircleGlyph{}
	picture.Add(objectScatter)
	objectNames, err := plotter.NewLabels(plotter.XYLabels{XYs: objectXYs, Labels: objectLabels})
	if err != nil {
		return errors.Wrap(err, "can't build objects labels")
	}
	picture.Add(objectNames)

	// Fixed ranges keep successive pictures comparable
	picture.X.Min, picture.X.Max = eastMin, eastMax
	picture.Y.Min, picture.Y.Max = northMin, northMax

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return errors.Wrapf(err, "can't create output directory '%s'", p.outputDir)
	}
	p.rendered++
	path := filepath.Join(p.outputDir, fmt.Sprintf("picture_%04d.png", p.rendered))
	if err := picture.Save(5*vg.Inch, 10*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "can't save operational picture '%s'", path)
	}
	return nil
}
