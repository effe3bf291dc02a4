package performance

import "github.com/mugpunters/vantage/internal/contracts"

// Performance buckets keyed by performance percentage.
const (
	bucketExcellent = "excellent"
	bucketGood      = "good"
	bucketNeutral   = "neutral"
	bucketPoor      = "poor"
	bucketTerrible  = "terrible"
)

// HitRate is the correctness tally for one recommendation label.
type HitRate struct {
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Rate    float64 `json:"rate"`
}

// Summary aggregates a set of graded performances.
type Summary struct {
	Count           int                                  `json:"count"`
	AverageAccuracy float64                              `json:"average_accuracy"`
	BestPerformer   *Performance                         `json:"best_performer,omitempty"`
	WorstPerformer  *Performance                         `json:"worst_performer,omitempty"`
	HitRates        map[contracts.Recommendation]HitRate `json:"hit_rates"`
	Distribution    map[string]int                       `json:"distribution"`
}

// Summarize aggregates graded performances: average accuracy, best and
// worst performer by realized return, per-recommendation hit rates, and
// a bucketed return distribution.
func Summarize(perfs []Performance) Summary {
	s := Summary{
		Count:        len(perfs),
		HitRates:     make(map[contracts.Recommendation]HitRate),
		Distribution: make(map[string]int),
	}
	if len(perfs) == 0 {
		return s
	}

	totalAccuracy := 0.0
	best, worst := 0, 0
	for i := range perfs {
		p := perfs[i]
		totalAccuracy += p.AccuracyScore

		if p.PerformancePct > perfs[best].PerformancePct {
			best = i
		}
		if p.PerformancePct < perfs[worst].PerformancePct {
			worst = i
		}

		hr := s.HitRates[p.Recommendation]
		hr.Total++
		if p.RecommendationCorrect {
			hr.Correct++
		}
		s.HitRates[p.Recommendation] = hr

		s.Distribution[bucketFor(p.PerformancePct)]++
	}

	for rec, hr := range s.HitRates {
		hr.Rate = round2(float64(hr.Correct) / float64(hr.Total))
		s.HitRates[rec] = hr
	}

	s.AverageAccuracy = round2(totalAccuracy / float64(len(perfs)))
	s.BestPerformer = &perfs[best]
	s.WorstPerformer = &perfs[worst]
	return s
}

func bucketFor(perfPct float64) string {
	switch {
	case perfPct > 10:
		return bucketExcellent
	case perfPct > 5:
		return bucketGood
	case perfPct > -5:
		return bucketNeutral
	case perfPct > -10:
		return bucketPoor
	default:
		return bucketTerrible
	}
}
