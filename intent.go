package edusphere

import (
	"regexp"
	"strconv"
	"strings"
)

// Keyword sets per intent category. Scoring counts substring matches against
// the lower-cased prompt.
var intentKeywords = map[IntentType][]string{
	IntentQuizCreation: {"quiz", "test", "questions", "exam", "assessment", "mcq"},
	IntentLearningPlan: {"plan", "learning path", "syllabus", "curriculum", "study plan"},
	IntentAnalytics:    {"analyze", "analysis", "results", "performance", "stats", "statistics"},
	IntentScheduling:   {"schedule", "calendar", "deadline", "timeline", "plan time"},
}

// intentPriority is the tie-break order: the first category with the highest
// keyword score wins. Quiz creation comes first on purpose.
var intentPriority = []IntentType{
	IntentQuizCreation,
	IntentLearningPlan,
	IntentAnalytics,
	IntentScheduling,
}

var (
	numQuestionsRe = regexp.MustCompile(`(\d+)\s*(?:question|q\b|quiz|test)`)
	createNumRe    = regexp.MustCompile(`(?:create|make|generate)\s*(\d+)`)
	chapterRe      = regexp.MustCompile(`chapter\s*(\d+)`)
)

// ClassifyIntent maps a free-text prompt to a structured Intent. It is a pure
// function of the input and always returns a usable value: with no keyword
// signal the intent defaults to quiz creation at confidence 0.5.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)

	best := IntentQuizCreation
	bestScore := 0
	for _, category := range intentPriority {
		score := 0
		for _, kw := range intentKeywords[category] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	confidence := 0.5
	if bestScore > 0 {
		confidence = 0.6 + 0.1*float64(bestScore)
		if confidence > 0.9 {
			confidence = 0.9
		}
	}

	target := detectTarget(lower)
	source := detectSource(lower, target)

	return Intent{
		IntentType:   best,
		Source:       source,
		Target:       target,
		NumQuestions: extractNumQuestions(lower),
		Confidence:   confidence,
	}
}

func detectTarget(lower string) DeliveryTarget {
	switch {
	case strings.Contains(lower, "form"):
		return TargetForms
	case strings.Contains(lower, "classroom") &&
		(strings.Contains(lower, "assign") || strings.Contains(lower, "put")):
		return TargetClassroom
	case strings.Contains(lower, "calendar") || strings.Contains(lower, "schedule"):
		return TargetCalendar
	default:
		return TargetForms
	}
}

// detectSource picks the content source. A bare "classroom" mention that was
// already consumed as the delivery target does not also make it the source;
// that needs an explicit course reference.
func detectSource(lower string, target DeliveryTarget) ContentSource {
	classroomSource := strings.Contains(lower, "course") ||
		strings.Contains(lower, "from classroom") ||
		(strings.Contains(lower, "classroom") && target != TargetClassroom)
	switch {
	case classroomSource:
		return SourceClassroom
	case strings.Contains(lower, "doc"):
		return SourceDocs
	default:
		return SourceManual
	}
}

// extractNumQuestions finds a question count in the prompt, first as a number
// followed by a question noun ("10 questions"), then as a number after a
// creation verb ("generate 10"). Returns 0 when no count is present.
func extractNumQuestions(lower string) int {
	if m := numQuestionsRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := createNumRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

var knownSubjects = []string{"physics", "chemistry", "biology", "mathematics", "math", "history", "geography"}

// ExtractSubjectChapter pulls the subject and chapter out of a prompt,
// defaulting to Physics / Chapter 1.
func ExtractSubjectChapter(prompt string) (subject, chapter string) {
	lower := strings.ToLower(prompt)

	subject = "Physics"
	for _, s := range knownSubjects {
		if strings.Contains(lower, s) {
			subject = strings.ToUpper(s[:1]) + s[1:]
			if subject == "Math" {
				subject = "Mathematics"
			}
			break
		}
	}

	chapter = "Chapter 1"
	if m := chapterRe.FindStringSubmatch(lower); m != nil {
		chapter = "Chapter " + m[1]
	}
	return subject, chapter
}
