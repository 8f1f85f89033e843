package edusphere

import "time"

// IntentType selects which workflow the orchestrator runs.
type IntentType string

const (
	IntentQuizCreation IntentType = "quiz_creation"
	IntentLearningPlan IntentType = "learning_plan"
	IntentAnalytics    IntentType = "analytics"
	IntentScheduling   IntentType = "scheduling"
)

// ContentSource says where the source material for a workflow comes from.
type ContentSource string

const (
	SourceClassroom ContentSource = "google_classroom"
	SourceDocs      ContentSource = "google_docs"
	SourceManual    ContentSource = "manual_text"
)

// DeliveryTarget says where the workflow output should be delivered.
type DeliveryTarget string

const (
	TargetForms     DeliveryTarget = "google_forms"
	TargetClassroom DeliveryTarget = "google_classroom"
	TargetCalendar  DeliveryTarget = "google_calendar"
)

// Intent is the structured classification of a free-text request.
// It is produced once per request and never mutated afterwards.
type Intent struct {
	IntentType   IntentType     `json:"intent_type"`
	Source       ContentSource  `json:"source"`
	Target       DeliveryTarget `json:"target"`
	NumQuestions int            `json:"num_questions,omitempty"` // 0 means unspecified
	Confidence   float64        `json:"confidence"`              // in [0.5, 0.9]
}

// Question is a single multiple-choice question with exactly 4 options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// NewQuestion builds a Question, enforcing that the correct answer is one of
// the options. An answer outside the option set is coerced to the first
// option so a bundle is never delivered with an unanswerable question.
func NewQuestion(text string, options []string, correctAnswer string) Question {
	member := false
	for _, opt := range options {
		if opt == correctAnswer {
			member = true
			break
		}
	}
	if !member && len(options) > 0 {
		correctAnswer = options[0]
	}
	return Question{
		Question:      text,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
}

// QuizBundle is an ordered set of generated questions. After generation its
// length always equals the requested question count.
type QuizBundle struct {
	Questions []Question `json:"questions"`
}

// ContentSummary is the Content Extractor output consumed by the quiz step.
type ContentSummary struct {
	KeyTopics []string `json:"key_topics"`
	Summary   string   `json:"summary"`
}

// DeliveryRecord describes a simulated classroom assignment. It is generated
// fresh per call and never persisted.
type DeliveryRecord struct {
	DeliveryStatus string `json:"delivery_status"`
	Platform       string `json:"platform"`
	Mode           string `json:"mode"`
	Message        string `json:"message"`
	AssignmentID   string `json:"assignment_id,omitempty"`
	ClassroomURL   string `json:"classroom_url,omitempty"`
}

// FormInfo describes a created (or mocked) Google Form.
type FormInfo struct {
	FormID       string `json:"form_id"`
	Title        string `json:"title"`
	FormURL      string `json:"form_url"`
	EditURL      string `json:"edit_url"`
	NumQuestions int    `json:"num_questions"`
	Status       string `json:"status"`
}

// Statistics holds the descriptive numbers of one analytics run.
type Statistics struct {
	AverageScore   float64 `json:"average_score"`
	MaxScore       float64 `json:"max_score"`
	MinScore       float64 `json:"min_score"`
	TotalStudents  int     `json:"total_students"`
	TotalQuestions int     `json:"total_questions"`
}

// AnalyticsReport is the Analytics Summarizer output.
type AnalyticsReport struct {
	Statistics       Statistics `json:"statistics"`
	PerformanceLevel string     `json:"performance_level"`
	WeakTopics       []string   `json:"weak_topics"`
	Suggestions      []string   `json:"suggestions"`
}

// StudentResult is one row of quiz results read from the spreadsheet.
type StudentResult struct {
	Student string  `json:"student"`
	Score   float64 `json:"score"`
	Total   float64 `json:"total"`
}

// Task is an unscheduled unit of work.
type Task struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Priority string `json:"priority"`
}

// Deadline joins a task name to its due date. A nil due date means none.
type Deadline struct {
	TaskName string     `json:"task_name"`
	DueDate  *time.Time `json:"due_date"`
}

// ScheduledTask is one entry of an optimized schedule.
type ScheduledTask struct {
	Task          string     `json:"task"`
	Duration      string     `json:"duration"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"due_date"`
	SuggestedSlot string     `json:"suggested_slot"`
}

// ScheduleReport is the Schedule Optimizer output.
type ScheduleReport struct {
	Schedule        []ScheduledTask `json:"schedule"`
	TotalTasks      int             `json:"total_tasks"`
	Recommendations []string        `json:"recommendations"`
	CalendarEvents  []CalendarEvent `json:"calendar_events,omitempty"`
}

// CalendarEvent describes one created calendar entry.
type CalendarEvent struct {
	EventID   string     `json:"event_id"`
	Title     string     `json:"title"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    string     `json:"status"`
}

// LearningTopic is a single step of a learning plan.
type LearningTopic struct {
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Resources     []string `json:"resources"`
	EstimatedTime string   `json:"estimated_time"`
}

// LearningPlan is the learning-plan workflow output.
type LearningPlan struct {
	Topics             []LearningTopic `json:"topics"`
	TotalEstimatedTime string          `json:"total_estimated_time"`
	StudentLevel       string          `json:"student_level"`
}

// OrchestrateRequest is the body of POST /orchestrate.
type OrchestrateRequest struct {
	Prompt    string `json:"prompt"`
	UserToken string `json:"user_token,omitempty"`
}

// OrchestrateResponse is the terminal output of one orchestration call.
type OrchestrateResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	Intent  *Intent        `json:"intent,omitempty"`
}

// EventKind names one unit of the streaming progress protocol.
type EventKind string

const (
	EventAgentStart    EventKind = "agent_start"
	EventAgentComplete EventKind = "agent_complete"
	EventComplete      EventKind = "complete"
	EventError         EventKind = "error"
)

// ProgressEvent is one server-pushed progress update. Events are emitted in
// strict pipeline order and never replayed.
type ProgressEvent struct {
	Kind    EventKind
	Payload map[string]any
}
