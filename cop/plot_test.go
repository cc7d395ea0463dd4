package cop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/LdDl/fusion-go/fusion"
)

func testSensors() []fusion.Sensor[fusion.Frame] {
	config := fusion.CameraConfig{
		ImageWidth:    1920,
		ImageHeight:   1080,
		FOVHorizontal: 40.0,
		FOVVertical:   22.5,
	}
	return []fusion.Sensor[fusion.Frame]{
		fusion.NewMockCamera(config, fusion.NewLocation(0.0, 0.0), 26.6, 1),
		fusion.NewMockCamera(config, fusion.NewLocation(0.0, 50.0), 0.0, 2),
	}
}

func testObjects() []fusion.IdentifiedObject {
	return []fusion.IdentifiedObject{
		{
			ID:       uuid.New(),
			Class:    "tank",
			BBox:     fusion.NewRect(880.0, 500.0, 180.0, 100.0),
			Location: fusion.NewLocation(101.17, 48.91),
		},
		{
			ID:       uuid.New(),
			Class:    "car",
			BBox:     fusion.NewRect(800.0, 500.0, 60.0, 100.0),
			Location: fusion.NewLocation(141.74, 64.35),
		},
	}
}

func assertPicture(t *testing.T, dir, name string) {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		t.Errorf("Picture '%s' has not been saved: %v", name, err)
		return
	}
	if info.Size() == 0 {
		t.Errorf("Picture '%s' is empty", name)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	plotter := NewPlotter(dir)
	sensors := testSensors()
	objects := testObjects()

	err := plotter.Render(sensors, objects)
	if err != nil {
		t.Error(err)
		return
	}
	assertPicture(t, dir, "picture_0001.png")

	err = plotter.Render(sensors, objects)
	if err != nil {
		t.Error(err)
		return
	}
	assertPicture(t, dir, "picture_0002.png")
}

func TestRenderNoObjects(t *testing.T) {
	dir := t.TempDir()
	plotter := NewPlotter(dir)

	err := plotter.Render(testSensors(), []fusion.IdentifiedObject{})
	if err != nil {
		t.Error(err)
		return
	}
	assertPicture(t, dir, "picture_0001.png")
}

func TestRenderCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pictures")
	plotter := NewPlotter(dir)

	err := plotter.Render(testSensors(), []fusion.IdentifiedObject{})
	if err != nil {
		t.Error(err)
		return
	}
	assertPicture(t, dir, "picture_0001.png")
}
