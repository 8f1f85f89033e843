package edusphere

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ContentExtractor turns raw chapter notes into key topics plus a short
// summary, with a two-tier fallback: structural fallback for empty fields and
// a full static fallback when parsing or the backend fails.
type ContentExtractor struct {
	backend *GenerationService
	log     *zap.SugaredLogger
}

// NewContentExtractor creates a content extractor backed by the generation
// service.
func NewContentExtractor(backend *GenerationService, log *zap.SugaredLogger) *ContentExtractor {
	return &ContentExtractor{backend: backend, log: log}
}

// Extract analyzes notes for the given subject and chapter. It never returns
// an error: any failure falls back to static topics and a templated summary.
func (ce *ContentExtractor) Extract(ctx context.Context, subject, chapter, notes string) ContentSummary {
	if len(strings.TrimSpace(notes)) < 20 {
		notes = demoNotes(subject)
	}

	prompt := ce.buildPrompt(subject, chapter, notes)
	response := stripCodeFence(ce.backend.GenerateText(ctx, prompt))

	var parsed struct {
		KeyTopics []string `json:"key_topics"`
		Summary   string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		ce.log.Debugw("content extraction parse failed, using fallback", "error", err)
		return ContentSummary{
			KeyTopics: fallbackTopics(subject),
			Summary:   fmt.Sprintf("Academic concepts from %s - %s", subject, chapter),
		}
	}

	keyTopics := parsed.KeyTopics
	if len(keyTopics) == 0 {
		keyTopics = fallbackTopics(subject)
	}
	summary := parsed.Summary
	if summary == "" {
		summary = fmt.Sprintf("Key concepts from %s - %s", subject, chapter)
	}

	return ContentSummary{KeyTopics: keyTopics, Summary: summary}
}

func (ce *ContentExtractor) buildPrompt(subject, chapter, notes string) string {
	var sb strings.Builder

	sb.WriteString("You are an academic content analyzer for education.\n\n")
	sb.WriteString(fmt.Sprintf("Analyze the following %s notes from %s and extract:\n", subject, chapter))
	sb.WriteString("1. The most important key topics (3-7 topics)\n")
	sb.WriteString("2. A brief academic summary (1-2 sentences)\n\n")
	sb.WriteString("NOTES:\n")
	sb.WriteString(notes)
	sb.WriteString("\n\nRespond with ONLY valid JSON in this exact format (no markdown, no explanation):\n")
	sb.WriteString(`{
    "key_topics": ["Topic 1", "Topic 2", "Topic 3"],
    "summary": "Brief academic summary of the chapter content."
}
`)
	sb.WriteString("\nRules:\n")
	sb.WriteString("- Extract only the most important concepts\n")
	sb.WriteString("- Use academic tone\n")
	sb.WriteString("- Keep summary under 50 words\n")
	sb.WriteString("- JSON only, no extra text")

	return sb.String()
}

// stripCodeFence removes a Markdown code-fence wrapper from a model response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[3:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fallbackTopics(subject string) []string {
	fallbacks := map[string][]string{
		"Physics":     {"Electric Field", "Coulomb's Law", "Electrostatics", "Gauss's Law"},
		"Chemistry":   {"Periodic Table", "Chemical Bonding", "Electronegativity"},
		"Biology":     {"Cell Structure", "Organelles", "Cell Membrane"},
		"Mathematics": {"Differentiation", "Integration", "Calculus Rules"},
	}
	if topics, ok := fallbacks[subject]; ok {
		return topics
	}
	return []string{"Key Concept 1", "Key Concept 2", "Key Concept 3"}
}

// demoNotes returns built-in demonstration notes for a subject, used when the
// caller supplies no usable notes. Unknown subjects get the Physics text.
func demoNotes(subject string) string {
	notes := map[string]string{
		"Physics": `Electric Charges and Fields

Electric charge is a fundamental property of matter. There are two types:
positive and negative. Like charges repel, unlike charges attract.

Coulomb's Law describes the force between two point charges:
F = k * q1 * q2 / r²

Electric field (E) is the force per unit charge at any point in space.
Field lines originate from positive charges and terminate at negative charges.

Gauss's Law relates electric flux through a closed surface to enclosed charge.
Applications include electrostatic shielding and capacitors.`,
		"Chemistry": `Periodic Table and Chemical Bonding

The periodic table organizes elements by atomic number and properties.
Periods are horizontal rows; groups are vertical columns.

Chemical bonds form when atoms share or transfer electrons:
- Ionic bonds: electron transfer between metals and non-metals
- Covalent bonds: electron sharing between non-metals
- Metallic bonds: electron sea model in metals

Electronegativity determines bond polarity.
VSEPR theory predicts molecular geometry.`,
		"Biology": `Cell Structure and Function

Cells are the basic unit of life. Two main types:
- Prokaryotic: no membrane-bound nucleus (bacteria)
- Eukaryotic: membrane-bound nucleus (plants, animals)

Key organelles:
- Nucleus: contains DNA, controls cell activities
- Mitochondria: powerhouse, produces ATP
- Ribosomes: protein synthesis
- Endoplasmic reticulum: protein and lipid processing

Cell membrane is a phospholipid bilayer with selective permeability.`,
		"Mathematics": `Calculus: Differentiation and Integration

Differentiation finds the rate of change of a function.
The derivative of f(x) is written as f'(x) or df/dx.

Key rules:
- Power rule: d/dx(x^n) = nx^(n-1)
- Product rule: d/dx(uv) = u'v + uv'
- Chain rule: d/dx(f(g(x))) = f'(g(x)) * g'(x)

Integration is the reverse of differentiation.
Definite integrals calculate area under curves.`,
	}
	if text, ok := notes[subject]; ok {
		return text
	}
	return notes["Physics"]
}
