package fusion

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func TestIdentifyAndLocalise(t *testing.T) {
	camera := NewMockCamera(CameraConfig{ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5}, Location{}, 0.0, 1)
	// A 192 px car centered on the boresight subtends 4 degrees and sits
	// ~50.113 m straight north of the camera
	groundTruth := map[int][]IdentifiedObject{
		1: {{Class: "car", BBox: NewRect(864, 500, 192, 100)}},
	}
	recognition := NewMockObjectRecognition(groundTruth, NewPriorDistanceEstimator(DefaultSizePriors()))

	frame, err := camera.NextTick()
	if err != nil {
		t.Error(err)
		return
	}
	located, err := recognition.IdentifyAndLocalise(frame, camera)
	if err != nil {
		t.Error(err)
		return
	}
	correctNumOfObjects := 1
	if len(located) != correctNumOfObjects {
		t.Errorf("incorrect number of objects: %d, expected: %d", len(located), correctNumOfObjects)
		return
	}
	correctAnswer := Location{North: 50.11344, East: 0.0}
	answer := located[0].Location
	if math.Abs(answer.North-correctAnswer.North) > eps || math.Abs(answer.East-correctAnswer.East) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
	if located[0].Class != "car" {
		t.Errorf("Wrong class: %s, correct class: car", located[0].Class)
	}
	if located[0].ID == uuid.Nil {
		t.Errorf("Located object has no identifier assigned")
	}

	// The stored ground truth must stay untouched
	if groundTruth[1][0].ID != uuid.Nil || groundTruth[1][0].Location != (Location{}) {
		t.Errorf("Ground truth record was modified: %v", groundTruth[1][0])
	}
}

func TestIdentifyAndLocaliseUnknownSensor(t *testing.T) {
	camera := NewMockCamera(CameraConfig{ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5}, Location{}, 0.0, 7)
	recognition := NewMockObjectRecognition(map[int][]IdentifiedObject{}, NewPriorDistanceEstimator(DefaultSizePriors()))

	frame, err := camera.NextTick()
	if err != nil {
		t.Error(err)
		return
	}
	located, err := recognition.IdentifyAndLocalise(frame, camera)
	if err != nil {
		t.Error(err)
		return
	}
	if len(located) != 0 {
		t.Errorf("incorrect number of objects: %d, expected: 0", len(located))
	}
}

func TestIdentifyAndLocaliseBadPriors(t *testing.T) {
	camera := NewMockCamera(CameraConfig{ImageWidth: 1920, ImageHeight: 1080, FOVHorizontal: 40.0, FOVVertical: 22.5}, Location{}, 0.0, 1)
	groundTruth := map[int][]IdentifiedObject{
		1: {{Class: "boat", BBox: NewRect(864, 500, 192, 100)}},
	}
	recognition := NewMockObjectRecognition(groundTruth, NewPriorDistanceEstimator(DefaultSizePriors()))

	frame, err := camera.NextTick()
	if err != nil {
		t.Error(err)
		return
	}
	_, err = recognition.IdentifyAndLocalise(frame, camera)
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("Wrong error: %v, expected: %v", err, ErrUnknownClass)
	}
}
