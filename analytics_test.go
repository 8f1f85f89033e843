package edusphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeResultsEmpty(t *testing.T) {
	_, err := AnalyzeResults(nil)
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = AnalyzeResults([]StudentResult{})
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestAnalyzeResultsSinglePerfectScore(t *testing.T) {
	report, err := AnalyzeResults([]StudentResult{
		{Student: "Student 1", Score: 100, Total: 100},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Statistics.AverageScore)
	assert.Equal(t, 100.0, report.Statistics.MaxScore)
	assert.Equal(t, 100.0, report.Statistics.MinScore)
	assert.Equal(t, 1, report.Statistics.TotalStudents)
	assert.Equal(t, "excellent", report.PerformanceLevel)
	assert.Empty(t, report.WeakTopics)
	assert.Equal(t, []string{"Excellent performance! Consider advanced topics"}, report.Suggestions)
}

func TestAnalyzeResultsSampleClass(t *testing.T) {
	report, err := AnalyzeResults([]StudentResult{
		{Student: "Student 1", Score: 85, Total: 100},
		{Student: "Student 2", Score: 92, Total: 100},
		{Student: "Student 3", Score: 78, Total: 100},
		{Student: "Student 4", Score: 88, Total: 100},
	})
	require.NoError(t, err)

	assert.Equal(t, 85.75, report.Statistics.AverageScore)
	assert.Equal(t, 92.0, report.Statistics.MaxScore)
	assert.Equal(t, 78.0, report.Statistics.MinScore)
	assert.Equal(t, 4, report.Statistics.TotalStudents)
	assert.Equal(t, 100, report.Statistics.TotalQuestions)
	assert.Equal(t, "good", report.PerformanceLevel)
	assert.Empty(t, report.WeakTopics)
	assert.Empty(t, report.Suggestions)
}

func TestAnalyzeResultsLowPerformance(t *testing.T) {
	report, err := AnalyzeResults([]StudentResult{
		{Student: "Student 1", Score: 40, Total: 100},
		{Student: "Student 2", Score: 55, Total: 100},
	})
	require.NoError(t, err)

	assert.Equal(t, "needs_improvement", report.PerformanceLevel)
	assert.Len(t, report.WeakTopics, 2)
	assert.Len(t, report.Suggestions, 2)
}

func TestAnalyzeResultsLevels(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{80, "good"},
		{75, "good"},
		{65, "fair"},
		{60, "fair"},
		{59, "needs_improvement"},
	}
	for _, tt := range tests {
		report, err := AnalyzeResults([]StudentResult{{Student: "S", Score: tt.avg, Total: 100}})
		require.NoError(t, err)
		assert.Equal(t, tt.want, report.PerformanceLevel, "avg %v", tt.avg)
	}
}

func TestAnalyzeResultsRoundsAverage(t *testing.T) {
	report, err := AnalyzeResults([]StudentResult{
		{Student: "S1", Score: 80, Total: 100},
		{Student: "S2", Score: 85, Total: 100},
		{Student: "S3", Score: 85, Total: 100},
	})
	require.NoError(t, err)

	// 250/3 = 83.333..., rounded to two decimals.
	assert.Equal(t, 83.33, report.Statistics.AverageScore)
}
