package referenceframe

import "github.com/pkg/errors"

// NewIncorrectJointCountError returns an error indicating that the wrong number of joints was given.
func NewIncorrectJointCountError(actual, expected int) error {
	return errors.Errorf("number of joints does not match chain: have %d, want %d", actual, expected)
}

// NewOddCoordinateCountError returns an error indicating that a flat coordinate list cannot be paired into points.
func NewOddCoordinateCountError(count int) error {
	return errors.Errorf("coordinate list must contain x y pairs, got %d values", count)
}

// NewDegenerateObstacleError returns an error for an obstacle with zero or negative extent.
func NewDegenerateObstacleError(idx int) error {
	return errors.Errorf("obstacle %d has no area", idx)
}
