package quadrant

import "math"

// Classify assigns a coordinate pair to its quadrant. Points on the y axis
// (x == 0) belong to the right half and points on the x axis (y == 0) to
// the upper half, so the mapping is total over [-1, 1] x [-1, 1].
//
// Confidence is min(|x|, |y|), the distance to the nearest axis.
func Classify(x, y float64) (Assignment, error) {
	if err := checkCoordinate("x", x); err != nil {
		return Assignment{}, err
	}
	if err := checkCoordinate("y", y); err != nil {
		return Assignment{}, err
	}

	var q Quadrant
	switch {
	case x >= 0 && y >= 0:
		q = Q1
	case x < 0 && y >= 0:
		q = Q2
	case x < 0 && y < 0:
		q = Q3
	default:
		q = Q4
	}
	return Assignment{
		Quadrant:   q,
		Confidence: math.Min(math.Abs(x), math.Abs(y)),
	}, nil
}

func checkCoordinate(field string, v float64) error {
	if math.IsNaN(v) || v < -1 || v > 1 {
		return &ClassificationError{Reason: ReasonOutOfRange, Field: field, Value: v}
	}
	return nil
}
