package fusion

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MockObjectRecognition stands in for a real detector: instead of analysing
// frame content it reports a fixed set of ground-truth detections per sensor
// and localises each of them with the injected distance estimator.
type MockObjectRecognition struct {
	groundTruth map[int][]IdentifiedObject
	estimate    DistanceEstimator
}

// NewMockObjectRecognition creates recognition over the given ground truth.
// groundTruth maps a sensor id to the detections that sensor reports on
// every tick; only Class and BBox of those records are read, ID and Location
// are assigned during localisation.
func NewMockObjectRecognition(groundTruth map[int][]IdentifiedObject, estimate DistanceEstimator) *MockObjectRecognition {
	return &MockObjectRecognition{
		groundTruth: groundTruth,
		estimate:    estimate,
	}
}

// IdentifyAndLocalise returns freshly localised detection records for the
// given sensor. A sensor without a ground-truth entry sees an empty scene.
// The stored ground truth is never modified.
func (recognition *MockObjectRecognition) IdentifyAndLocalise(frame Frame, sensor Sensor[Frame]) ([]IdentifiedObject, error) {
	truth := recognition.groundTruth[sensor.ID()]
	located := make([]IdentifiedObject, 0, len(truth))
	for _, object := range truth {
		distance, err := recognition.estimate(object, frame)
		if err != nil {
			return nil, errors.Wrapf(err, "can't estimate distance to '%s' seen by sensor %d", object.Class, sensor.ID())
		}
		object.ID = uuid.New()
		object.Location = LocateDetection(sensor.Location(), sensor.Bearing(), frame, object.BBox, distance)
		located = append(located, object)
	}
	return located, nil
}
