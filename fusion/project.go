package fusion

import "math"

// LocateDetection projects a detection seen at the given range onto the
// shared north-east plane. The bounding box center column is mapped to an
// angular offset from the sensor boresight (negative to the left, positive
// to the right), combined with the sensor bearing into an absolute bearing
// and converted from polar to planar coordinates relative to the sensor
// position. The frame must have a positive image width.
func LocateDetection(sensorLocation Location, sensorBearing float64, frame Frame, bbox Rectangle, rangeMeters float64) Location {
	centerX := bbox.X + bbox.Width/2.0
	relativeCenter := centerX / frame.ImageWidth()
	offset := relativeCenter*frame.FOVHorizontal - frame.FOVHorizontal/2.0
	bearing := degToRad(sensorBearing + offset)
	return Location{
		North: sensorLocation.North + rangeMeters*math.Cos(bearing),
		East:  sensorLocation.East + rangeMeters*math.Sin(bearing),
	}
}
