package fusion

import "github.com/google/uuid"

// IdentifiedObject is a single classified detection made by a sensor.
// Records travel by value: every pipeline stage returns fresh copies and
// never mutates its input, so a located record can be shared safely.
type IdentifiedObject struct {
	// Identifier of this detection record
	ID uuid.UUID
	// Class label assigned by object recognition
	Class string
	// Bounding box in the source image, pixels
	BBox Rectangle
	// Position on the shared north-east plane, filled by localisation
	Location Location
}
