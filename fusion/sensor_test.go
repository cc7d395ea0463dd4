package fusion

import (
	"testing"
)

func TestMockCamera(t *testing.T) {
	config := CameraConfig{ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5}
	camera := NewMockCamera(config, Location{North: 0.0, East: 50.0}, 26.6, 2)

	if camera.ID() != 2 {
		t.Errorf("Wrong identifier: %d, correct identifier: 2", camera.ID())
	}
	if camera.Bearing() != 26.6 {
		t.Errorf("Wrong bearing: %v, correct bearing: 26.6", camera.Bearing())
	}
	if camera.Location() != (Location{North: 0.0, East: 50.0}) {
		t.Errorf("Wrong location: %v, correct location: {0 50}", camera.Location())
	}

	frame, err := camera.NextTick()
	if err != nil {
		t.Error(err)
		return
	}
	if frame.ImageWidth() != 1920.0 || frame.ImageHeight() != 1080.0 {
		t.Errorf("Wrong frame size: %vx%v, correct size: 1920x1080", frame.ImageWidth(), frame.ImageHeight())
	}
	if frame.FOVHorizontal != 40.0 || frame.FOVVertical != 22.5 {
		t.Errorf("Wrong frame FOV: %vx%v, correct FOV: 40x22.5", frame.FOVHorizontal, frame.FOVVertical)
	}
}

func TestFrameWithoutImage(t *testing.T) {
	frame := Frame{FOVHorizontal: 40.0, FOVVertical: 22.5}
	if frame.ImageWidth() != 0 || frame.ImageHeight() != 0 {
		t.Errorf("Frame without an image must report zero size, got %vx%v", frame.ImageWidth(), frame.ImageHeight())
	}
}
