package edusphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntentCategories(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   IntentType
	}{
		{"quiz", "Create a quiz on photosynthesis", IntentQuizCreation},
		{"exam", "Make a practice exam for my class", IntentQuizCreation},
		{"learning plan", "Build a study plan for organic chemistry", IntentLearningPlan},
		{"curriculum", "Design a curriculum for beginners", IntentLearningPlan},
		{"analytics", "Analyze last week's quiz performance results", IntentAnalytics},
		{"stats", "Show me the stats for the midterm", IntentAnalytics},
		{"scheduling", "Schedule my revision before the deadline", IntentScheduling},
		{"no signal defaults to quiz", "hello there", IntentQuizCreation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.prompt).IntentType)
		})
	}
}

func TestClassifyIntentConfidence(t *testing.T) {
	// No keyword signal: low-confidence default.
	intent := ClassifyIntent("hello there")
	assert.Equal(t, 0.5, intent.Confidence)

	// One keyword.
	intent = ClassifyIntent("make a quiz")
	assert.InDelta(t, 0.7, intent.Confidence, 1e-9)

	// Confidence is capped even with many keyword hits.
	intent = ClassifyIntent("quiz test questions exam assessment mcq")
	assert.Equal(t, 0.9, intent.Confidence)
}

func TestClassifyIntentClassroomTargetVersusSource(t *testing.T) {
	// "put it in google classroom" is a delivery instruction: classroom is
	// the target, and the content source stays manual.
	intent := ClassifyIntent("Create a 10 question quiz on Physics chapter 2 and put it in google classroom")
	assert.Equal(t, IntentQuizCreation, intent.IntentType)
	assert.Equal(t, TargetClassroom, intent.Target)
	assert.Equal(t, SourceManual, intent.Source)
	assert.Equal(t, 10, intent.NumQuestions)

	// An explicit course reference makes classroom the source too.
	intent = ClassifyIntent("Assign a quiz to classroom from my physics course")
	assert.Equal(t, TargetClassroom, intent.Target)
	assert.Equal(t, SourceClassroom, intent.Source)

	// Classroom mentioned without a delivery verb reads as a source.
	intent = ClassifyIntent("Make a quiz using my classroom materials")
	assert.Equal(t, SourceClassroom, intent.Source)
	assert.NotEqual(t, TargetClassroom, intent.Target)
}

func TestClassifyIntentSources(t *testing.T) {
	assert.Equal(t, SourceDocs, ClassifyIntent("Create a quiz from my google doc").Source)
	assert.Equal(t, SourceManual, ClassifyIntent("Create a quiz about these notes: ...").Source)
	assert.Equal(t, SourceClassroom, ClassifyIntent("Quiz me on the course material").Source)
}

func TestClassifyIntentTargets(t *testing.T) {
	assert.Equal(t, TargetForms, ClassifyIntent("Create a quiz as a google form").Target)
	assert.Equal(t, TargetCalendar, ClassifyIntent("Put my study sessions on the calendar").Target)
	// Forms is the default delivery target.
	assert.Equal(t, TargetForms, ClassifyIntent("Create a quiz on biology").Target)
}

func TestExtractNumQuestions(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
	}{
		{"create a quiz with 7 questions", 7},
		{"10 question quiz on physics", 10},
		{"generate 15 on chapter 2", 15},
		{"make 12 for tomorrow", 12},
		{"create a quiz on physics", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractNumQuestions(tt.prompt), "prompt: %s", tt.prompt)
	}
}

func TestExtractSubjectChapter(t *testing.T) {
	subject, chapter := ExtractSubjectChapter("Quiz on chemistry chapter 3 please")
	assert.Equal(t, "Chemistry", subject)
	assert.Equal(t, "Chapter 3", chapter)

	subject, chapter = ExtractSubjectChapter("A math quiz")
	assert.Equal(t, "Mathematics", subject)
	assert.Equal(t, "Chapter 1", chapter)

	subject, chapter = ExtractSubjectChapter("Just a quiz")
	assert.Equal(t, "Physics", subject)
	assert.Equal(t, "Chapter 1", chapter)
}
