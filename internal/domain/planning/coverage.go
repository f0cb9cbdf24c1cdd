package planning

import (
	"fmt"
	"math"
)

// CoverageTolerance is the accepted distance between a coverage sum and 100.
const CoverageTolerance = 0.1

// Covered is a line item that applies to a percentage of the record area.
type Covered interface {
	Coverage() float64
}

// Justified is a fertilization line that may carry a no-fertilization justification.
type Justified interface {
	Covered
	JustificationID() *uint
}

// CoverageError reports the offending sum. It matches ErrCoverageNot100.
type CoverageError struct {
	Sum float64
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("coverage percentages must total 100%% (current total %.1f%%)", e.Sum)
}

func (e *CoverageError) Unwrap() error {
	return ErrCoverageNot100
}

// CoverageSum adds the coverage of every line, treating non-finite values as 0.
func CoverageSum[T Covered](lines []T) float64 {
	var sum float64
	for _, l := range lines {
		sum += finiteOrZero(l.Coverage())
	}
	return sum
}

// ValidateCoverage accepts a non-empty set whose coverage sum is within
// CoverageTolerance of 100.
func ValidateCoverage[T Covered](lines []T) error {
	return ValidateCoverageWithin(lines, CoverageTolerance)
}

func ValidateCoverageWithin[T Covered](lines []T, tolerance float64) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	sum := CoverageSum(lines)
	if math.Abs(sum-100) > tolerance {
		return &CoverageError{Sum: sum}
	}
	return nil
}

// IsFertilizationOptOut reports whether lines is the canonical "no
// fertilization" set: exactly one line, coverage 0, with a justification.
func IsFertilizationOptOut[T Justified](lines []T) bool {
	return len(lines) == 1 && lines[0].JustificationID() != nil && lines[0].Coverage() == 0
}

// ValidateFertilization applies ValidateCoverage unless the set is an
// opt-out, in which case the numeric rule does not apply.
func ValidateFertilization[T Justified](lines []T) error {
	if IsFertilizationOptOut(lines) {
		return nil
	}
	for _, l := range lines {
		if l.JustificationID() != nil {
			return ErrJustificationWithLines
		}
	}
	return ValidateCoverage(lines)
}
