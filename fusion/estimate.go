package fusion

import (
	"math"

	"github.com/pkg/errors"
)

// SizePriors maps object class labels to known real-world widths in meters.
type SizePriors map[string]float64

// DefaultSizePriors returns the built-in class width table
func DefaultSizePriors() SizePriors {
	return SizePriors{
		"tank": 7.0,
		"car":  3.5,
	}
}

// Width returns the real-world width prior for the given class label
func (priors SizePriors) Width(class string) (float64, error) {
	width, ok := priors[class]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownClass, "no width prior for class '%s'", class)
	}
	return width, nil
}

// DistanceEstimator computes the distance from the sensor to the detected
// object in meters. Implementations must not modify the object.
type DistanceEstimator func(object IdentifiedObject, frame Frame) (float64, error)

// NewPriorDistanceEstimator returns a pinhole-model estimator. The apparent
// angular width of the object is its bounding box share of the image scaled
// by the horizontal field of view; the distance is the range at which an
// object of the known real-world width subtends exactly that angle:
//
//	distance = width / (2 * tan(angular/2))
//
// The formula is undefined outside angular in (0, 180) degrees, so the
// bounding box width and the image width must be positive.
func NewPriorDistanceEstimator(priors SizePriors) DistanceEstimator {
	return func(object IdentifiedObject, frame Frame) (float64, error) {
		imageWidth := frame.ImageWidth()
		if imageWidth <= 0 {
			return 0, errors.Wrapf(ErrInvalidGeometry, "image width %v pixels", imageWidth)
		}
		if object.BBox.Width <= 0 {
			return 0, errors.Wrapf(ErrInvalidGeometry, "bounding box width %v pixels", object.BBox.Width)
		}
		angularWidth := object.BBox.Width / imageWidth * frame.FOVHorizontal
		if angularWidth <= 0.0 || angularWidth >= 180.0 {
			return 0, errors.Wrapf(ErrInvalidGeometry, "angular width %v degrees", angularWidth)
		}
		width, err := priors.Width(object.Class)
		if err != nil {
			return 0, err
		}
		return width / (2.0 * math.Tan(degToRad(angularWidth)/2.0)), nil
	}
}
