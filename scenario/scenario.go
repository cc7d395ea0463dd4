// Package scenario loads simulation scenarios: camera placements, the
// ground-truth objects every camera reports and the object size priors.
package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/LdDl/fusion-go/fusion"
)

// BBox is a bounding box in image pixel coordinates
type BBox struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Object is a single ground-truth detection reported by a camera
type Object struct {
	Class string `yaml:"class"`
	BBox  BBox   `yaml:"bbox"`
}

// Camera describes placement and optics of a single camera
type Camera struct {
	ID            int     `yaml:"id"`
	North         float64 `yaml:"north"`
	East          float64 `yaml:"east"`
	Bearing       float64 `yaml:"bearing"`
	ImageWidth    int     `yaml:"image_width"`
	ImageHeight   int     `yaml:"image_height"`
	FOVHorizontal float64 `yaml:"fov_horizontal"`
	FOVVertical   float64 `yaml:"fov_vertical"`
}

// Scenario is a complete simulation setup
type Scenario struct {
	Cameras []Camera           `yaml:"cameras"`
	Priors  map[string]float64 `yaml:"priors"`
	Objects map[int][]Object   `yaml:"objects"`
}

// Parse reads a scenario from YAML data and validates it
func Parse(data []byte) (*Scenario, error) {
	scenario := &Scenario{}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, errors.Wrap(err, "can't unmarshal scenario")
	}
	if err := scenario.validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

// Load reads a scenario from a YAML file and validates it
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read scenario file '%s'", path)
	}
	return Parse(data)
}

func (scenario *Scenario) validate() error {
	if len(scenario.Cameras) == 0 {
		return errors.New("scenario has no cameras")
	}
	seen := make(map[int]struct{}, len(scenario.Cameras))
	for _, camera := range scenario.Cameras {
		if _, ok := seen[camera.ID]; ok {
			return errors.Errorf("duplicated camera id %d", camera.ID)
		}
		seen[camera.ID] = struct{}{}
		if camera.ImageWidth <= 0 || camera.ImageHeight <= 0 {
			return errors.Errorf("camera %d has a non-positive image size %dx%d", camera.ID, camera.ImageWidth, camera.ImageHeight)
		}
		if camera.FOVHorizontal <= 0 || camera.FOVHorizontal >= 180 || camera.FOVVertical <= 0 || camera.FOVVertical >= 180 {
			return errors.Errorf("camera %d has a field of view outside (0, 180) degrees: %vx%v", camera.ID, camera.FOVHorizontal, camera.FOVVertical)
		}
	}
	for sensorID, objects := range scenario.Objects {
		if _, ok := seen[sensorID]; !ok {
			return errors.Errorf("objects are listed for unknown camera id %d", sensorID)
		}
		for _, object := range objects {
			if _, ok := scenario.Priors[object.Class]; !ok {
				return errors.Errorf("no size prior for class '%s' seen by camera %d", object.Class, sensorID)
			}
			if object.BBox.Width <= 0 || object.BBox.Height <= 0 {
				return errors.Errorf("camera %d reports '%s' with a non-positive bounding box %vx%v", sensorID, object.Class, object.BBox.Width, object.BBox.Height)
			}
		}
	}
	return nil
}

// Default returns the built-in demo scenario: two cameras watching the same
// tank and car from different positions.
func Default() *Scenario {
	return &Scenario{
		Cameras: []Camera{
			{ID: 1, North: 0.0, East: 0.0, Bearing: 26.6, ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5},
			{ID: 2, North: 0.0, East: 50.0, Bearing: 0.0, ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5},
		},
		Priors: map[string]float64{
			"tank": 7.0,
			"car":  3.5,
		},
		Objects: map[int][]Object{
			1: {
				{Class: "tank", BBox: BBox{X: 880, Y: 500, Width: 180, Height: 100}},
				{Class: "car", BBox: BBox{X: 800, Y: 500, Width: 60, Height: 100}},
			},
			2: {
				{Class: "car", BBox: BBox{X: 1200, Y: 500, Width: 70, Height: 100}},
				{Class: "tank", BBox: BBox{X: 860, Y: 500, Width: 180, Height: 100}},
			},
		},
	}
}

// Sensors builds mock cameras for every configured camera, in listing order
func (scenario *Scenario) Sensors() []fusion.Sensor[fusion.Frame] {
	sensors := make([]fusion.Sensor[fusion.Frame], 0, len(scenario.Cameras))
	for _, camera := range scenario.Cameras {
		config := fusion.CameraConfig{
			ImageWidth:    camera.ImageWidth,
			ImageHeight:   camera.ImageHeight,
			FOVHorizontal: camera.FOVHorizontal,
			FOVVertical:   camera.FOVVertical,
		}
		sensors = append(sensors, fusion.NewMockCamera(config, fusion.NewLocation(camera.North, camera.East), camera.Bearing, camera.ID))
	}
	return sensors
}

// GroundTruth converts the configured objects into recognition ground truth
func (scenario *Scenario) GroundTruth() map[int][]fusion.IdentifiedObject {
	groundTruth := make(map[int][]fusion.IdentifiedObject, len(scenario.Objects))
	for sensorID, objects := range scenario.Objects {
		converted := make([]fusion.IdentifiedObject, 0, len(objects))
		for _, object := range objects {
			converted = append(converted, fusion.IdentifiedObject{
				Class: object.Class,
				BBox:  fusion.NewRect(object.BBox.X, object.BBox.Y, object.BBox.Width, object.BBox.Height),
			})
		}
		groundTruth[sensorID] = converted
	}
	return groundTruth
}

// SizePriors converts the configured class width table
func (scenario *Scenario) SizePriors() fusion.SizePriors {
	priors := make(fusion.SizePriors, len(scenario.Priors))
	for class, width := range scenario.Priors {
		priors[class] = width
	}
	return priors
}
