package fusion

import "image"

// Sensor is the interface for tick-driven sensors.
// R is the reading type the sensor produces (e.g. Frame for cameras).
type Sensor[R any] interface {
	// NextTick produces the sensor reading for the next simulation tick
	NextTick() (R, error)
	// Location returns the sensor position on the shared north-east plane
	Location() Location
	// Bearing returns the boresight direction in degrees, 0 pointing north,
	// 90 pointing east (clockwise)
	Bearing() float64
	// ID returns the sensor identifier, unique within a station
	ID() int
}

// Frame is a single camera reading: a framebuffer plus the field of view of
// the optics that produced it.
type Frame struct {
	Image image.Image
	// Horizontal field of view, degrees
	FOVHorizontal float64
	// Vertical field of view, degrees
	FOVVertical float64
}

// ImageWidth returns the framebuffer width in pixels (0 when there is no image)
func (frame Frame) ImageWidth() float64 {
	if frame.Image == nil {
		return 0
	}
	return float64(frame.Image.Bounds().Dx())
}

// ImageHeight returns the framebuffer height in pixels (0 when there is no image)
func (frame Frame) ImageHeight() float64 {
	if frame.Image == nil {
		return 0
	}
	return float64(frame.Image.Bounds().Dy())
}

// CameraConfig describes the framebuffer geometry and optics of a camera.
type CameraConfig struct {
	// Framebuffer width, pixels
	ImageWidth int
	// Framebuffer height, pixels
	ImageHeight int
	// Horizontal field of view, degrees
	FOVHorizontal float64
	// Vertical field of view, degrees
	FOVVertical float64
}

// MockCamera is a Sensor[Frame] producing blank frames of the configured
// size. Frame content carries no information since recognition works from
// externally supplied ground truth; only the framebuffer bounds and the
// field of view matter downstream.
type MockCamera struct {
	config   CameraConfig
	location Location
	bearing  float64
	id       int
}

// NewMockCamera creates a camera at the given position. Bearing is in
// degrees, 0 pointing north, 90 pointing east.
func NewMockCamera(config CameraConfig, location Location, bearing float64, id int) *MockCamera {
	return &MockCamera{
		config:   config,
		location: location,
		bearing:  bearing,
		id:       id,
	}
}

// NextTick manufactures the next blank frame
func (camera *MockCamera) NextTick() (Frame, error) {
	img := image.NewRGBA(image.Rect(0, 0, camera.config.ImageWidth, camera.config.ImageHeight))
	return Frame{
		Image:         img,
		FOVHorizontal: camera.config.FOVHorizontal,
		FOVVertical:   camera.config.FOVVertical,
	}, nil
}

// Location returns the camera position on the shared north-east plane
func (camera *MockCamera) Location() Location {
	return camera.location
}

// Bearing returns the camera boresight direction in degrees
func (camera *MockCamera) Bearing() float64 {
	return camera.bearing
}

// ID returns the camera identifier
func (camera *MockCamera) ID() int {
	return camera.id
}
