package predict

import (
	"cfpredict/entity"
	"fmt"
	"strings"
)

func FormatResult(handle string, res *entity.PredictionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prediction complete for %s\n", handle)
	fmt.Fprintf(&b, "Current rating: %d\n", res.Rating)
	fmt.Fprintf(&b, "Rank: %d out of %d\n", res.Rank, res.TotalParticipants)
	fmt.Fprintf(&b, "Predicted delta: %+d\n", res.Delta)
	fmt.Fprintf(&b, "Predicted new rating: %d\n", res.NewRating)
	return b.String()
}
