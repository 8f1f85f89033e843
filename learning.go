package edusphere

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LearningPlanner generates a structured learning path from a syllabus. Like
// the other generation steps it falls back to a static plan when the backend
// output cannot be parsed.
type LearningPlanner struct {
	backend *GenerationService
	log     *zap.SugaredLogger
}

// NewLearningPlanner creates a learning planner backed by the generation
// service.
func NewLearningPlanner(backend *GenerationService, log *zap.SugaredLogger) *LearningPlanner {
	return &LearningPlanner{backend: backend, log: log}
}

// Plan builds a learning plan for the syllabus. Never fails.
func (lp *LearningPlanner) Plan(ctx context.Context, syllabus, studentLevel string) LearningPlan {
	if studentLevel == "" {
		studentLevel = "intermediate"
	}

	response := stripCodeFence(lp.backend.GenerateText(ctx, lp.buildPrompt(syllabus, studentLevel)))

	var parsed struct {
		Topics             []LearningTopic `json:"topics"`
		TotalEstimatedTime string          `json:"total_estimated_time"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil || len(parsed.Topics) == 0 {
		lp.log.Debugw("learning plan parse failed, using static plan", "error", err)
		return staticLearningPlan(studentLevel)
	}

	total := parsed.TotalEstimatedTime
	if total == "" {
		total = fmt.Sprintf("%d topics", len(parsed.Topics))
	}

	return LearningPlan{
		Topics:             parsed.Topics,
		TotalEstimatedTime: total,
		StudentLevel:       studentLevel,
	}
}

func (lp *LearningPlanner) buildPrompt(syllabus, studentLevel string) string {
	var sb strings.Builder

	sb.WriteString("You are an educational planner. Create a structured learning path from the syllabus below.\n\n")
	sb.WriteString("SYLLABUS:\n")
	sb.WriteString(syllabus)
	sb.WriteString(fmt.Sprintf("\n\nStudent level: %s\n\n", studentLevel))
	sb.WriteString("Respond with ONLY valid JSON in this exact format (no markdown, no explanation):\n")
	sb.WriteString(`{
    "topics": [
        {"topic": "Topic name", "difficulty": "beginner", "resources": ["Resource 1"], "estimated_time": "2 hours"}
    ],
    "total_estimated_time": "9 hours"
}
`)

	return sb.String()
}

func staticLearningPlan(studentLevel string) LearningPlan {
	return LearningPlan{
		Topics: []LearningTopic{
			{
				Topic:         "Introduction to Core Concepts",
				Difficulty:    "beginner",
				Resources:     []string{"Textbook Chapter 1", "Video Lecture 1"},
				EstimatedTime: "2 hours",
			},
			{
				Topic:         "Intermediate Applications",
				Difficulty:    "intermediate",
				Resources:     []string{"Textbook Chapter 2", "Practice Problems Set 1"},
				EstimatedTime: "3 hours",
			},
			{
				Topic:         "Advanced Topics",
				Difficulty:    "advanced",
				Resources:     []string{"Textbook Chapter 3", "Case Studies"},
				EstimatedTime: "4 hours",
			},
		},
		TotalEstimatedTime: "9 hours",
		StudentLevel:       studentLevel,
	}
}
