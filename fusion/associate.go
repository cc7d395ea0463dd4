package fusion

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Fuser merges per-sensor detection lists into a single fused list.
type Fuser func(objectsBySensor map[int][]IdentifiedObject) ([]IdentifiedObject, error)

// NewPairwiseFuser returns a Fuser associating the detections of exactly two
// sensors. Pairs are chosen by minimum total planar distance (Hungarian
// assignment over the pairwise distance matrix) and every matched pair is
// merged into one record placed at the midpoint of the pair. The merged
// record carries the first sensor's class and bounding box; class
// disagreement between the matched detections is not reconciled. Fused
// records are emitted in the first sensor's detection order. One log record
// is written per merged pair with both source locations.
//
// logger may be nil, which disables the merge log.
func NewPairwiseFuser(firstID, secondID int, logger *zap.Logger) Fuser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(objectsBySensor map[int][]IdentifiedObject) ([]IdentifiedObject, error) {
		if len(objectsBySensor) != 2 {
			return nil, errors.Wrapf(ErrSensorMapping, "expected 2 sensors, got %d", len(objectsBySensor))
		}
		first, ok := objectsBySensor[firstID]
		if !ok {
			return nil, errors.Wrapf(ErrSensorMapping, "no detections entry for sensor %d", firstID)
		}
		second, ok := objectsBySensor[secondID]
		if !ok {
			return nil, errors.Wrapf(ErrSensorMapping, "no detections entry for sensor %d", secondID)
		}
		if len(first) == 0 || len(second) == 0 {
			return nil, errors.Wrapf(ErrSensorMapping, "nothing to associate: sensor %d reports %d detections, sensor %d reports %d",
				firstID, len(first), secondID, len(second))
		}
		matches := solveMinCost(distanceMatrix(first, second))
		fused := make([]IdentifiedObject, 0, len(matches))
		for _, match := range matches {
			left := first[match[0]]
			right := second[match[1]]
			logger.Info("fusing matched detections",
				zap.Int("first_sensor", firstID),
				zap.String("first_class", left.Class),
				zap.Float64("first_north", left.Location.North),
				zap.Float64("first_east", left.Location.East),
				zap.Int("second_sensor", secondID),
				zap.String("second_class", right.Class),
				zap.Float64("second_north", right.Location.North),
				zap.Float64("second_east", right.Location.East),
			)
			merged := left
			merged.Location = midpoint(left.Location, right.Location)
			fused = append(fused, merged)
		}
		return fused, nil
	}
}

// distanceMatrix builds the pairwise planar distance matrix; rows follow the
// first detection list, columns the second.
func distanceMatrix(first, second []IdentifiedObject) [][]float64 {
	matrix := make([][]float64, len(first))
	for i, left := range first {
		row := make([]float64, len(second))
		for j, right := range second {
			row[j] = euclideanDistance(left.Location, right.Location)
		}
		matrix[i] = row
	}
	return matrix
}

// solveMinCost solves the minimum-cost assignment over the given matrix and
// returns the chosen {row, column} pairs ordered by row. A rectangular
// matrix is padded square with zero-cost dummies: a dummy costs the same
// wherever it lands, so the assignment among the real entries stays optimal.
// Pairs involving a dummy are not returned.
func solveMinCost(matrix [][]float64) [][2]int {
	rows := len(matrix)
	if rows == 0 {
		return [][2]int{}
	}
	cols := len(matrix[0])
	if cols == 0 {
		return [][2]int{}
	}
	padded := matrix
	if rows != cols {
		size := max(rows, cols)
		padded = make([][]float64, size)
		for i := 0; i < size; i++ {
			padded[i] = make([]float64, size)
			if i < rows {
				copy(padded[i], matrix[i])
			}
		}
	}
	columns := assignMinCost(padded)
	matches := make([][2]int, 0, min(rows, cols))
	for row := 0; row < rows; row++ {
		if col := columns[row]; col < cols {
			matches = append(matches, [2]int{row, col})
		}
	}
	return matches
}
