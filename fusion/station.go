package fusion

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ObjectRecognizer turns a sensor reading into classified, localised
// detections.
type ObjectRecognizer interface {
	IdentifyAndLocalise(frame Frame, sensor Sensor[Frame]) ([]IdentifiedObject, error)
}

// Visualizer renders an operational picture of sensors and detections.
type Visualizer interface {
	Render(sensors []Sensor[Frame], objects []IdentifiedObject) error
}

// FusionStation drives a fixed roster of camera sensors through simulation
// ticks: collect a frame from every sensor, run object recognition on it and
// optionally fuse the per-sensor detections into a single picture. The
// station keeps no state between ticks; every tick starts from scratch.
type FusionStation struct {
	sensors     []Sensor[Frame]
	recognition ObjectRecognizer
	fuse        Fuser
	visualizer  Visualizer
	logger      *zap.Logger
}

// NewFusionStation creates a station over the given sensor roster. The
// roster order is significant: per-tick outputs follow it. visualizer may be
// nil (rendering disabled), logger may be nil (silent station).
func NewFusionStation(sensors []Sensor[Frame], recognition ObjectRecognizer, fuse Fuser, visualizer Visualizer, logger *zap.Logger) *FusionStation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FusionStation{
		sensors:     sensors,
		recognition: recognition,
		fuse:        fuse,
		visualizer:  visualizer,
		logger:      logger,
	}
}

// advanceTick polls every sensor once and recognises objects on every frame.
// The first failing sensor or recognition aborts the whole tick.
func (station *FusionStation) advanceTick() (map[int][]IdentifiedObject, error) {
	objectsBySensor := make(map[int][]IdentifiedObject, len(station.sensors))
	for _, sensor := range station.sensors {
		frame, err := sensor.NextTick()
		if err != nil {
			return nil, errors.Wrapf(err, "sensor %d can't produce a frame", sensor.ID())
		}
		objects, err := station.recognition.IdentifyAndLocalise(frame, sensor)
		if err != nil {
			return nil, errors.Wrapf(err, "recognition failed for sensor %d", sensor.ID())
		}
		objectsBySensor[sensor.ID()] = objects
	}
	return objectsBySensor, nil
}

// ExecuteWithoutFusion runs one tick and returns the raw per-sensor
// detections. All detections (in roster order) are forwarded to the
// visualizer as one flat picture.
func (station *FusionStation) ExecuteWithoutFusion() (map[int][]IdentifiedObject, error) {
	objectsBySensor, err := station.advanceTick()
	if err != nil {
		return nil, err
	}
	flat := make([]IdentifiedObject, 0)
	for _, sensor := range station.sensors {
		objects := objectsBySensor[sensor.ID()]
		station.logger.Info("tick detections",
			zap.Int("sensor", sensor.ID()),
			zap.Int("count", len(objects)))
		flat = append(flat, objects...)
	}
	if err := station.render(flat); err != nil {
		return nil, err
	}
	return objectsBySensor, nil
}

// ExecuteWithFusion runs one tick, fuses the two sensor pictures into one
// and forwards the fused detections to the visualizer.
func (station *FusionStation) ExecuteWithFusion() ([]IdentifiedObject, error) {
	objectsBySensor, err := station.advanceTick()
	if err != nil {
		return nil, err
	}
	fused, err := station.fuse(objectsBySensor)
	if err != nil {
		return nil, errors.Wrap(err, "can't fuse detections")
	}
	station.logger.Info("tick fused", zap.Int("count", len(fused)))
	if err := station.render(fused); err != nil {
		return nil, err
	}
	return fused, nil
}

func (station *FusionStation) render(objects []IdentifiedObject) error {
	if station.visualizer == nil {
		return nil
	}
	if err := station.visualizer.Render(station.sensors, objects); err != nil {
		return errors.Wrap(err, "can't render operational picture")
	}
	return nil
}
