package edusphere

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPlanner(backend *stubBackend) *LearningPlanner {
	return NewLearningPlanner(newStubService(backend), zap.NewNop().Sugar())
}

func TestPlanParsesBackendJSON(t *testing.T) {
	lp := newTestPlanner(&stubBackend{
		response: `{
			"topics": [
				{"topic": "Kinematics", "difficulty": "beginner", "resources": ["Chapter 1"], "estimated_time": "2 hours"},
				{"topic": "Dynamics", "difficulty": "intermediate", "resources": ["Chapter 2"], "estimated_time": "3 hours"}
			],
			"total_estimated_time": "5 hours"
		}`,
	})

	plan := lp.Plan(context.Background(), "Mechanics syllabus", "beginner")

	require.Len(t, plan.Topics, 2)
	assert.Equal(t, "Kinematics", plan.Topics[0].Topic)
	assert.Equal(t, "5 hours", plan.TotalEstimatedTime)
	assert.Equal(t, "beginner", plan.StudentLevel)
}

func TestPlanDefaultsStudentLevel(t *testing.T) {
	lp := newTestPlanner(&stubBackend{response: "not json"})

	plan := lp.Plan(context.Background(), "syllabus", "")

	assert.Equal(t, "intermediate", plan.StudentLevel)
}

func TestPlanParseFailureUsesStaticPlan(t *testing.T) {
	lp := newTestPlanner(&stubBackend{response: "Here is your plan: study hard."})

	plan := lp.Plan(context.Background(), "syllabus", "advanced")

	require.Len(t, plan.Topics, 3)
	assert.Equal(t, "Introduction to Core Concepts", plan.Topics[0].Topic)
	assert.Equal(t, "9 hours", plan.TotalEstimatedTime)
	assert.Equal(t, "advanced", plan.StudentLevel)
}

func TestPlanEmptyTopicsUsesStaticPlan(t *testing.T) {
	lp := newTestPlanner(&stubBackend{response: `{"topics": [], "total_estimated_time": "0 hours"}`})

	plan := lp.Plan(context.Background(), "syllabus", "")

	require.Len(t, plan.Topics, 3)
	assert.Equal(t, "9 hours", plan.TotalEstimatedTime)
}

func TestPlanFillsMissingTotalTime(t *testing.T) {
	lp := newTestPlanner(&stubBackend{
		response: `{"topics": [{"topic": "T", "difficulty": "beginner", "resources": [], "estimated_time": "1 hour"}]}`,
	})

	plan := lp.Plan(context.Background(), "syllabus", "")

	assert.Equal(t, "1 topics", plan.TotalEstimatedTime)
}
