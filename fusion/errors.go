package fusion

import "github.com/pkg/errors"

// Pipeline failures surface immediately and abort the current tick. Callers
// classify wrapped errors against these sentinels with errors.Is.
var (
	// ErrUnknownClass means an object class has no entry in the size priors table
	ErrUnknownClass = errors.New("unknown object class")
	// ErrInvalidGeometry means bounding box or image dimensions make the optics math undefined
	ErrInvalidGeometry = errors.New("invalid detection geometry")
	// ErrSensorMapping means the per-sensor detections mapping is not usable for fusion
	ErrSensorMapping = errors.New("unsupported sensor mapping")
)
