package edusphere

import (
	"errors"
	"math"
)

// ErrNoResults marks an analytics request with an empty results set.
var ErrNoResults = errors.New("no results to analyze")

// AnalyzeResults computes descriptive statistics and qualitative labels over
// a set of quiz results. Deterministic, no external calls.
func AnalyzeResults(results []StudentResult) (AnalyticsReport, error) {
	if len(results) == 0 {
		return AnalyticsReport{}, ErrNoResults
	}

	sum := 0.0
	maxScore := results[0].Score
	minScore := results[0].Score
	for _, r := range results {
		sum += r.Score
		if r.Score > maxScore {
			maxScore = r.Score
		}
		if r.Score < minScore {
			minScore = r.Score
		}
	}
	avg := sum / float64(len(results))

	var level string
	switch {
	case avg >= 90:
		level = "excellent"
	case avg >= 75:
		level = "good"
	case avg >= 60:
		level = "fair"
	default:
		level = "needs_improvement"
	}

	weakTopics := []string{}
	if avg < 80 {
		weakTopics = []string{
			"Topic A needs more practice",
			"Topic B requires additional review",
		}
	}

	suggestions := []string{}
	if avg < 75 {
		suggestions = append(suggestions,
			"Consider additional practice sessions",
			"Review foundational concepts")
	} else if avg >= 90 {
		suggestions = append(suggestions, "Excellent performance! Consider advanced topics")
	}

	return AnalyticsReport{
		Statistics: Statistics{
			AverageScore:   math.Round(avg*100) / 100,
			MaxScore:       maxScore,
			MinScore:       minScore,
			TotalStudents:  len(results),
			TotalQuestions: int(results[0].Total),
		},
		PerformanceLevel: level,
		WeakTopics:       weakTopics,
		Suggestions:      suggestions,
	}, nil
}
