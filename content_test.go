package edusphere

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestExtractor(backend *stubBackend) *ContentExtractor {
	return NewContentExtractor(newStubService(backend), zap.NewNop().Sugar())
}

func TestExtractParsesBackendJSON(t *testing.T) {
	ce := newTestExtractor(&stubBackend{
		response: `{"key_topics": ["Electric Field", "Coulomb's Law"], "summary": "Charges and the fields they create."}`,
	})

	summary := ce.Extract(context.Background(), "Physics", "Chapter 2", demoNotes("Physics"))

	assert.Equal(t, []string{"Electric Field", "Coulomb's Law"}, summary.KeyTopics)
	assert.Equal(t, "Charges and the fields they create.", summary.Summary)
}

func TestExtractAcceptsCodeFencedJSON(t *testing.T) {
	ce := newTestExtractor(&stubBackend{
		response: "```json\n{\"key_topics\": [\"Bonding\"], \"summary\": \"Bonds.\"}\n```",
	})

	summary := ce.Extract(context.Background(), "Chemistry", "Chapter 4", demoNotes("Chemistry"))

	assert.Equal(t, []string{"Bonding"}, summary.KeyTopics)
	assert.Equal(t, "Bonds.", summary.Summary)
}

func TestExtractFillsEmptyFields(t *testing.T) {
	ce := newTestExtractor(&stubBackend{response: `{"key_topics": [], "summary": ""}`})

	summary := ce.Extract(context.Background(), "Physics", "Chapter 1", demoNotes("Physics"))

	assert.Equal(t, fallbackTopics("Physics"), summary.KeyTopics)
	assert.Equal(t, "Key concepts from Physics - Chapter 1", summary.Summary)
}

func TestExtractParseFailureUsesStaticFallback(t *testing.T) {
	ce := newTestExtractor(&stubBackend{response: "The key topics are fields and charges."})

	summary := ce.Extract(context.Background(), "Biology", "Chapter 5", demoNotes("Biology"))

	assert.Equal(t, fallbackTopics("Biology"), summary.KeyTopics)
	assert.Equal(t, "Academic concepts from Biology - Chapter 5", summary.Summary)
}

func TestExtractIsDeterministicForSameInput(t *testing.T) {
	ce := newTestExtractor(&stubBackend{
		response: `{"key_topics": ["Cells"], "summary": "Cell structure."}`,
	})

	first := ce.Extract(context.Background(), "Biology", "Chapter 1", demoNotes("Biology"))
	second := ce.Extract(context.Background(), "Biology", "Chapter 1", demoNotes("Biology"))

	assert.Equal(t, first, second)
}

func TestExtractSubstitutesDemoNotesWhenTooShort(t *testing.T) {
	stub := &stubBackend{response: `{"key_topics": ["T"], "summary": "S"}`}
	ce := newTestExtractor(stub)

	ce.Extract(context.Background(), "Physics", "Chapter 2", "   too short   ")

	// The prompt should carry the built-in demonstration notes instead of
	// the unusable input.
	assert.Contains(t, stub.lastPrompt, "Coulomb's Law")
}

func TestFallbackTopicsUnknownSubject(t *testing.T) {
	assert.Equal(t, []string{"Key Concept 1", "Key Concept 2", "Key Concept 3"}, fallbackTopics("Astronomy"))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n[1, 2]\n```", "[1, 2]"},
		{`{"a": 1}`, `{"a": 1}`},
		{"  \n plain text \n", "plain text"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFence(tt.in))
	}
}
