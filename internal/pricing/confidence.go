package pricing

import "github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"

func confidenceScore(c domain.Confidence) int {
	switch c {
	case domain.ConfidenceHigh:
		return 3
	case domain.ConfidenceMedium:
		return 2
	default:
		return 1
	}
}

// aggregateConfidence buckets the rounded average of per-material confidence
// scores: >= 2.5 is high, >= 1.5 is medium, anything lower is low. An empty
// list yields low since there is no evidence to rate.
func aggregateConfidence(materials []domain.PricedMaterial) domain.Confidence {
	if len(materials) == 0 {
		return domain.ConfidenceLow
	}
	sum := 0
	for _, m := range materials {
		sum += confidenceScore(m.Confidence)
	}
	avg := float64(sum) / float64(len(materials))
	switch {
	case avg >= 2.5:
		return domain.ConfidenceHigh
	case avg >= 1.5:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
