package edusphere

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TextBackend is the narrow boundary to a text-generation provider.
type TextBackend interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerationService wraps a TextBackend with lazy initialization and a
// deterministic mock fallback. Errors never cross this boundary: a failed
// call returns placeholder text, marks the service uninitialized, and the
// next call re-attempts initialization.
type GenerationService struct {
	mu          sync.Mutex
	backend     TextBackend
	newBackend  func() (TextBackend, error)
	initialized bool

	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewGenerationService builds the generation adapter from configuration.
// Gemini is selected when GEMINI_API_KEY is set, OpenAI when OPENAI_API_KEY
// is set; with neither the service runs permanently in mock mode.
func NewGenerationService(cfg Config, log *zap.SugaredLogger) *GenerationService {
	svc := &GenerationService{
		timeout: cfg.BackendTimeout,
		log:     log,
	}
	switch {
	case cfg.GeminiAPIKey != "":
		svc.newBackend = func() (TextBackend, error) { return newGeminiBackend(cfg.GeminiAPIKey) }
	case cfg.OpenAIAPIKey != "":
		svc.newBackend = func() (TextBackend, error) { return newOpenAIBackend(cfg.OpenAIAPIKey), nil }
	default:
		log.Info("no generation API key configured, running in mock mode")
	}
	svc.tryInitialize()
	return svc
}

// tryInitialize attempts to build the underlying client. Safe to call from
// concurrent requests: initialization is idempotent and only sets the handle.
func (s *GenerationService) tryInitialize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return true
	}
	if s.newBackend == nil {
		return false
	}
	backend, err := s.newBackend()
	if err != nil {
		s.log.Warnw("generation backend initialization failed, will retry on next use", "error", err)
		return false
	}
	s.backend = backend
	s.initialized = true
	s.log.Info("generation backend initialized")
	return true
}

func (s *GenerationService) currentBackend() (TextBackend, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend, s.initialized
}

func (s *GenerationService) markUninitialized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = false
	s.backend = nil
}

// MockMode reports whether the service currently has no live backend.
func (s *GenerationService) MockMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.initialized
}

// GenerateText returns generated text for the prompt, or deterministic
// placeholder text when no backend is available or the call fails. A failed
// call marks the service uninitialized so the next call retries.
func (s *GenerationService) GenerateText(ctx context.Context, prompt string) string {
	backend, ok := s.currentBackend()
	if !ok {
		if !s.tryInitialize() {
			return mockGeneratedText()
		}
		backend, _ = s.currentBackend()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := backend.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warnw("generation call failed, using mock output", "error", err)
		s.markUninitialized()
		return mockGeneratedText()
	}
	return strings.TrimSpace(text)
}

// GenerateQuizJSON asks the backend for a JSON array of quiz questions. In
// mock mode (or after a failed call) it returns a well-formed mock array so
// the quiz pipeline stays usable without credentials.
func (s *GenerationService) GenerateQuizJSON(ctx context.Context, content string, numQuestions int) string {
	backend, ok := s.currentBackend()
	if !ok {
		if !s.tryInitialize() {
			return mockQuizJSON(numQuestions)
		}
		backend, _ = s.currentBackend()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := backend.GenerateText(ctx, buildQuizPrompt(content, numQuestions))
	if err != nil {
		s.log.Warnw("quiz generation call failed, using mock output", "error", err)
		s.markUninitialized()
		return mockQuizJSON(numQuestions)
	}
	return strings.TrimSpace(text)
}

func buildQuizPrompt(content string, numQuestions int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generate %d multiple-choice quiz questions based on the following content.\n\n", numQuestions))
	sb.WriteString("Content:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nRequirements:\n")
	sb.WriteString("- Each question should have exactly 4 options (A, B, C, D)\n")
	sb.WriteString("- One correct answer per question\n")
	sb.WriteString("- Questions should test understanding, not just recall\n")
	sb.WriteString("- Return ONLY valid JSON array (no markdown, no explanation)\n\n")
	sb.WriteString("Format:\n")
	sb.WriteString(`[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": "Option A"
  }
]
`)
	sb.WriteString(fmt.Sprintf("\nGenerate exactly %d questions. Return JSON only.\n", numQuestions))

	return sb.String()
}

func mockGeneratedText() string {
	return "Mock generation backend response. Configure GEMINI_API_KEY or OPENAI_API_KEY for live output."
}

func mockQuizJSON(numQuestions int) string {
	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		questions = append(questions, Question{
			Question: fmt.Sprintf("Based on the content, which statement is most accurate? (Question %d)", i+1),
			Options: []string{
				"Option A is correct",
				"Option B is correct",
				"Option C is correct",
				"Option D is correct",
			},
			CorrectAnswer: "Option A is correct",
		})
	}
	out, _ := json.Marshal(questions)
	return string(out)
}
