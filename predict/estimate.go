package predict

import "math"

const (
	REFERENCE_RATING = 1500.0
	LOGISTIC_SCALE   = 400.0
	SENSITIVITY      = 0.03
)

// ExpectedRank is the place a participant of the given rating is expected
// to take among total contestants on a logistic curve.
func ExpectedRank(rating, total int) float64 {
	return float64(total) / (1 + math.Pow(10, -(float64(rating)-REFERENCE_RATING)/LOGISTIC_SCALE))
}

// EstimateDelta is a heuristic, not the official rating algorithm.
// Halves round to even.
func EstimateDelta(rank, rating, total int) int {
	return int(math.RoundToEven((ExpectedRank(rating, total) - float64(rank)) * SENSITIVITY))
}
