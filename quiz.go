package edusphere

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultNumQuestions = 5
	maxNumQuestions     = 50
)

// QuizGenerator turns enriched content into a fixed-shape bundle of
// multiple-choice questions. It is total: malformed backend output, an empty
// array, or wrong-shaped elements all still yield a bundle of exactly the
// requested length.
type QuizGenerator struct {
	backend *GenerationService
	log     *zap.SugaredLogger
}

// NewQuizGenerator creates a quiz generator backed by the generation service.
func NewQuizGenerator(backend *GenerationService, log *zap.SugaredLogger) *QuizGenerator {
	return &QuizGenerator{backend: backend, log: log}
}

// ClampNumQuestions normalizes a requested question count to [1, 50],
// defaulting to 5 when the count is unset or non-positive.
func ClampNumQuestions(n int) int {
	if n <= 0 {
		return defaultNumQuestions
	}
	if n > maxNumQuestions {
		return maxNumQuestions
	}
	return n
}

// Generate produces a quiz bundle of exactly numQuestions questions, each
// with exactly 4 options.
func (qg *QuizGenerator) Generate(ctx context.Context, content string, numQuestions int) QuizBundle {
	numQuestions = ClampNumQuestions(numQuestions)

	raw := stripCodeFence(qg.backend.GenerateQuizJSON(ctx, content, numQuestions))

	var items []struct {
		Question      *string  `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer *string  `json:"correct_answer"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		qg.log.Warnw("quiz JSON parse failed, using fallback bundle",
			"error", err, "response_prefix", prefix(raw, 200))
		return fallbackBundle(numQuestions)
	}

	questions := make([]Question, 0, numQuestions)
	for _, item := range items {
		// Elements missing a required field are dropped.
		if item.Question == nil || item.Options == nil || item.CorrectAnswer == nil {
			continue
		}
		questions = append(questions, NewQuestion(*item.Question, normalizeOptions(item.Options), *item.CorrectAnswer))
	}

	for len(questions) < numQuestions {
		questions = append(questions, Question{
			Question:      fmt.Sprintf("Additional question %d?", len(questions)+1),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
		})
	}
	questions = questions[:numQuestions]

	return QuizBundle{Questions: questions}
}

// normalizeOptions pads or trims an option list to exactly 4 entries.
// Synthesized placeholders continue the letter sequence from the current
// length ("Option D" after three real options).
func normalizeOptions(options []string) []string {
	for len(options) < 4 {
		options = append(options, fmt.Sprintf("Option %c", 'A'+len(options)))
	}
	return options[:4]
}

func fallbackBundle(numQuestions int) QuizBundle {
	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		questions = append(questions, Question{
			Question:      fmt.Sprintf("Sample question %d?", i+1),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
		})
	}
	return QuizBundle{Questions: questions}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
