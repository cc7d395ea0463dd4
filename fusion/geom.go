package fusion

import (
	"math"
)

// Rectangle is an axis-aligned bounding box in pixel coordinates with the
// origin at the top-left corner of the image.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Location is a position on the shared flat north-east plane, in meters.
type Location struct {
	North float64
	East  float64
}

func NewLocation(north, east float64) Location {
	return Location{
		North: north,
		East:  east,
	}
}

func euclideanDistance(l1, l2 Location) float64 {
	return math.Sqrt(math.Pow(l1.North-l2.North, 2) + math.Pow(l1.East-l2.East, 2))
}

// midpoint returns the component-wise mean of two locations
func midpoint(l1, l2 Location) Location {
	return Location{
		North: (l1.North + l2.North) / 2.0,
		East:  (l1.East + l2.East) / 2.0,
	}
}

func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
