package edusphere

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestQuizGenerator(backend *stubBackend) *QuizGenerator {
	return NewQuizGenerator(newStubService(backend), zap.NewNop().Sugar())
}

func TestClampNumQuestions(t *testing.T) {
	assert.Equal(t, 5, ClampNumQuestions(0))
	assert.Equal(t, 5, ClampNumQuestions(-3))
	assert.Equal(t, 1, ClampNumQuestions(1))
	assert.Equal(t, 7, ClampNumQuestions(7))
	assert.Equal(t, 50, ClampNumQuestions(50))
	assert.Equal(t, 50, ClampNumQuestions(120))
}

func TestGenerateReturnsExactCount(t *testing.T) {
	payload := `[
		{"question": "Q1?", "options": ["A", "B", "C", "D"], "correct_answer": "B"},
		{"question": "Q2?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
		{"question": "Q3?", "options": ["A", "B", "C", "D"], "correct_answer": "C"}
	]`

	qg := newTestQuizGenerator(&stubBackend{response: payload})

	// Fewer returned than requested: padded up.
	bundle := qg.Generate(context.Background(), "content", 5)
	require.Len(t, bundle.Questions, 5)
	assert.Equal(t, "Q1?", bundle.Questions[0].Question)
	assert.Equal(t, "Additional question 4?", bundle.Questions[3].Question)
	assert.Equal(t, "Additional question 5?", bundle.Questions[4].Question)

	// More returned than requested: truncated.
	bundle = qg.Generate(context.Background(), "content", 2)
	require.Len(t, bundle.Questions, 2)
	assert.Equal(t, "Q2?", bundle.Questions[1].Question)

	for _, q := range bundle.Questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}

func TestGenerateMalformedJSONUsesFallbackBundle(t *testing.T) {
	qg := newTestQuizGenerator(&stubBackend{response: "I could not generate the quiz, sorry."})

	bundle := qg.Generate(context.Background(), "content", 4)

	require.Len(t, bundle.Questions, 4)
	for i, q := range bundle.Questions {
		assert.Equal(t, fmt.Sprintf("Sample question %d?", i+1), q.Question)
		assert.Len(t, q.Options, 4)
		assert.Equal(t, q.Options[0], q.CorrectAnswer)
	}
}

func TestGenerateEmptyArrayIsPadded(t *testing.T) {
	qg := newTestQuizGenerator(&stubBackend{response: "[]"})

	bundle := qg.Generate(context.Background(), "content", 3)

	require.Len(t, bundle.Questions, 3)
	assert.Equal(t, "Additional question 1?", bundle.Questions[0].Question)
}

func TestGenerateDropsIncompleteElements(t *testing.T) {
	payload := `[
		{"question": "Complete?", "options": ["A", "B", "C", "D"], "correct_answer": "A"},
		{"question": "No answer?", "options": ["A", "B", "C", "D"]},
		{"options": ["A", "B", "C", "D"], "correct_answer": "A"}
	]`

	qg := newTestQuizGenerator(&stubBackend{response: payload})
	bundle := qg.Generate(context.Background(), "content", 2)

	require.Len(t, bundle.Questions, 2)
	assert.Equal(t, "Complete?", bundle.Questions[0].Question)
	assert.Equal(t, "Additional question 2?", bundle.Questions[1].Question)
}

func TestGenerateAcceptsCodeFencedJSON(t *testing.T) {
	payload := "```json\n[{\"question\": \"Q1?\", \"options\": [\"A\", \"B\", \"C\", \"D\"], \"correct_answer\": \"D\"}]\n```"

	qg := newTestQuizGenerator(&stubBackend{response: payload})
	bundle := qg.Generate(context.Background(), "content", 1)

	require.Len(t, bundle.Questions, 1)
	assert.Equal(t, "Q1?", bundle.Questions[0].Question)
	assert.Equal(t, "D", bundle.Questions[0].CorrectAnswer)
}

func TestNormalizeOptions(t *testing.T) {
	assert.Equal(t,
		[]string{"Red", "Blue", "Option C", "Option D"},
		normalizeOptions([]string{"Red", "Blue"}))

	assert.Equal(t,
		[]string{"A", "B", "C", "D"},
		normalizeOptions([]string{"A", "B", "C", "D", "E", "F"}))

	assert.Equal(t,
		[]string{"Option A", "Option B", "Option C", "Option D"},
		normalizeOptions(nil))
}

func TestNewQuestionCoercesUnknownAnswer(t *testing.T) {
	q := NewQuestion("Q?", []string{"A", "B", "C", "D"}, "E")
	assert.Equal(t, "A", q.CorrectAnswer)

	q = NewQuestion("Q?", []string{"A", "B", "C", "D"}, "C")
	assert.Equal(t, "C", q.CorrectAnswer)
}

func TestGenerateCoercesUnknownAnswer(t *testing.T) {
	payload := `[{"question": "Q?", "options": ["W", "X", "Y", "Z"], "correct_answer": "Not listed"}]`

	qg := newTestQuizGenerator(&stubBackend{response: payload})
	bundle := qg.Generate(context.Background(), "content", 1)

	require.Len(t, bundle.Questions, 1)
	assert.Equal(t, "W", bundle.Questions[0].CorrectAnswer)
}

func TestGenerateInMockModeProducesValidQuiz(t *testing.T) {
	qg := NewQuizGenerator(newMockService(t), zap.NewNop().Sugar())

	bundle := qg.Generate(context.Background(), "Physics chapter 2", 10)

	require.Len(t, bundle.Questions, 10)
	for _, q := range bundle.Questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}
