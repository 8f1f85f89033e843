package edusphere

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrUnsupportedIntent marks an intent type outside the four workflows.
// It maps to a 400 on the HTTP surface.
var ErrUnsupportedIntent = errors.New("unsupported intent type")

// ProgressSink receives ordered progress events from a pipeline run. The
// synchronous surface passes nil and gets no events.
type ProgressSink func(ProgressEvent)

// Orchestrator routes a classified request through one of four workflow
// pipelines and composes the step outputs into a single response.
type Orchestrator struct {
	content   *ContentExtractor
	quiz      *QuizGenerator
	learning  *LearningPlanner
	classroom *ClassroomService
	docs      *DocsService
	sheets    *SheetsService
	calendar  *CalendarService
	forms     *FormsService
	log       *zap.SugaredLogger
}

// NewOrchestrator wires the pipeline steps around the shared generation
// service and forms adapter.
func NewOrchestrator(backend *GenerationService, formsService *FormsService, log *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		content:   NewContentExtractor(backend, log),
		quiz:      NewQuizGenerator(backend, log),
		learning:  NewLearningPlanner(backend, log),
		classroom: NewClassroomService(),
		docs:      NewDocsService(),
		sheets:    NewSheetsService(),
		calendar:  NewCalendarService(),
		forms:     formsService,
		log:       log,
	}
}

// Run executes one orchestration: classify the prompt, dispatch to the
// matching workflow, and fold the step outputs into a response. Progress
// events are emitted to sink in strict pipeline order; the pipeline itself is
// strictly sequential since each step consumes the prior step's output.
func (o *Orchestrator) Run(ctx context.Context, req OrchestrateRequest, sink ProgressSink) (*OrchestrateResponse, error) {
	if sink == nil {
		sink = func(ProgressEvent) {}
	}

	started := stepStart(sink, "intent", "Analyzing your request...")
	intent := ClassifyIntent(req.Prompt)
	stepComplete(sink, "intent", started, map[string]any{
		"intent_type":   intent.IntentType,
		"source":        intent.Source,
		"target":        intent.Target,
		"num_questions": intent.NumQuestions,
		"confidence":    intent.Confidence,
	})

	o.log.Infow("intent classified",
		"intent_type", intent.IntentType,
		"source", intent.Source,
		"target", intent.Target,
		"confidence", intent.Confidence)

	switch intent.IntentType {
	case IntentQuizCreation:
		return o.runQuizCreation(ctx, req, intent, sink)
	case IntentLearningPlan:
		return o.runLearningPlan(ctx, req, intent, sink)
	case IntentAnalytics:
		return o.runAnalytics(ctx, req, intent, sink)
	case IntentScheduling:
		return o.runScheduling(ctx, req, intent, sink)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedIntent, intent.IntentType)
	}
}

// runQuizCreation chains content extraction, quiz generation, form creation
// and classroom delivery. Every generation step has a deterministic fallback,
// so this pipeline only fails on truly unexpected errors.
func (o *Orchestrator) runQuizCreation(ctx context.Context, req OrchestrateRequest, intent Intent, sink ProgressSink) (*OrchestrateResponse, error) {
	subject, chapter := ExtractSubjectChapter(req.Prompt)

	// Content step: fetch source material and extract key topics.
	started := stepStart(sink, "content", fmt.Sprintf("Extracting key topics from %s %s...", subject, chapter))

	notes := req.Prompt
	switch intent.Source {
	case SourceClassroom:
		notes = o.classroom.GetCourseMaterials(ctx, "course_1", "")
	case SourceDocs:
		notes = o.docs.GetDocumentContent(ctx, "doc_1")
	}
	summary := o.content.Extract(ctx, subject, chapter, notes)
	stepComplete(sink, "content", started, map[string]any{
		"key_topics": summary.KeyTopics,
		"summary":    summary.Summary,
	})

	// Quiz step: generate questions from the enriched content.
	started = stepStart(sink, "quiz", "Generating quiz questions with AI...")
	enriched := fmt.Sprintf(`Subject: %s
Chapter: %s
Key Topics: %s
Summary: %s

Original Request: %s
`, subject, chapter, strings.Join(summary.KeyTopics, ", "), summary.Summary, req.Prompt)

	bundle := o.quiz.Generate(ctx, enriched, intent.NumQuestions)
	stepComplete(sink, "quiz", started, map[string]any{
		"num_questions": len(bundle.Questions),
	})

	// Forms step.
	started = stepStart(sink, "forms", "Creating Google Form...")
	formTitle := fmt.Sprintf("%s %s Quiz", subject, chapter)
	form := o.forms.CreateQuizForm(ctx, formTitle, bundle.Questions)
	stepComplete(sink, "forms", started, map[string]any{
		"form_url": form.FormURL,
		"form_id":  form.FormID,
	})

	// Classroom step.
	started = stepStart(sink, "classroom", "Assigning to Google Classroom (Demo Mode)...")
	delivery := AssignToClassroom(formTitle, bundle.Questions, form.FormURL, subject+" Class", "")
	stepComplete(sink, "classroom", started, map[string]any{
		"delivery": delivery,
	})

	return &OrchestrateResponse{
		Success: true,
		Message: fmt.Sprintf("Quiz created and assigned: %d questions on %s %s", len(bundle.Questions), subject, chapter),
		Data: map[string]any{
			"form_url":  form.FormURL,
			"form_id":   form.FormID,
			"questions": bundle.Questions,
			"content":   summary,
			"delivery":  delivery,
		},
		Intent: &intent,
	}, nil
}

func (o *Orchestrator) runLearningPlan(ctx context.Context, req OrchestrateRequest, intent Intent, sink ProgressSink) (*OrchestrateResponse, error) {
	started := stepStart(sink, "learning", "Generating learning plan...")
	plan := o.learning.Plan(ctx, req.Prompt, "")
	stepComplete(sink, "learning", started, map[string]any{
		"topics": len(plan.Topics),
	})

	return &OrchestrateResponse{
		Success: true,
		Message: "Learning plan generated successfully",
		Data: map[string]any{
			"topics":               plan.Topics,
			"total_estimated_time": plan.TotalEstimatedTime,
			"student_level":        plan.StudentLevel,
		},
		Intent: &intent,
	}, nil
}

func (o *Orchestrator) runAnalytics(ctx context.Context, req OrchestrateRequest, intent Intent, sink ProgressSink) (*OrchestrateResponse, error) {
	started := stepStart(sink, "analytics", "Analyzing quiz results...")
	results := o.sheets.GetQuizResults(ctx, "sheet_1")

	report, err := AnalyzeResults(results)
	if errors.Is(err, ErrNoResults) {
		stepComplete(sink, "analytics", started, map[string]any{"error": err.Error()})
		return &OrchestrateResponse{
			Success: true,
			Message: "Analytics generated successfully",
			Data:    map[string]any{"error": err.Error()},
			Intent:  &intent,
		}, nil
	}
	stepComplete(sink, "analytics", started, map[string]any{
		"performance_level": report.PerformanceLevel,
		"average_score":     report.Statistics.AverageScore,
	})

	return &OrchestrateResponse{
		Success: true,
		Message: "Analytics generated successfully",
		Data: map[string]any{
			"statistics":        report.Statistics,
			"performance_level": report.PerformanceLevel,
			"weak_topics":       report.WeakTopics,
			"suggestions":       report.Suggestions,
		},
		Intent: &intent,
	}, nil
}

func (o *Orchestrator) runScheduling(ctx context.Context, req OrchestrateRequest, intent Intent, sink ProgressSink) (*OrchestrateResponse, error) {
	started := stepStart(sink, "schedule", "Optimizing schedule...")

	// Demo task set; a full implementation would parse structured input.
	tasks := []Task{
		{Name: "Task 1", Duration: "2 hours", Priority: "high"},
		{Name: "Task 2", Duration: "1 hour", Priority: "medium"},
	}
	deadlines := []Deadline{
		{TaskName: "Task 1"},
		{TaskName: "Task 2"},
	}

	report := OptimizeSchedule(tasks, deadlines)
	stepComplete(sink, "schedule", started, map[string]any{
		"total_tasks": report.TotalTasks,
	})

	if intent.Target == TargetCalendar {
		started = stepStart(sink, "calendar", "Creating calendar events...")
		events := make([]EventRequest, 0, len(report.Schedule))
		for _, st := range report.Schedule {
			events = append(events, EventRequest{
				Title:       st.Task,
				Description: "Priority: " + st.Priority,
			})
		}
		report.CalendarEvents = o.calendar.CreateSchedule(ctx, events)
		stepComplete(sink, "calendar", started, map[string]any{
			"events_created": len(report.CalendarEvents),
		})
	}

	data := map[string]any{
		"schedule":        report.Schedule,
		"total_tasks":     report.TotalTasks,
		"recommendations": report.Recommendations,
	}
	if report.CalendarEvents != nil {
		data["calendar_events"] = report.CalendarEvents
	}

	return &OrchestrateResponse{
		Success: true,
		Message: "Schedule optimized successfully",
		Data:    data,
		Intent:  &intent,
	}, nil
}

func stepStart(sink ProgressSink, agent, message string) time.Time {
	sink(ProgressEvent{
		Kind: EventAgentStart,
		Payload: map[string]any{
			"agent":   agent,
			"message": message,
		},
	})
	return time.Now()
}

func stepComplete(sink ProgressSink, agent string, started time.Time, result map[string]any) {
	sink(ProgressEvent{
		Kind: EventAgentComplete,
		Payload: map[string]any{
			"agent":    agent,
			"duration": roundSeconds(time.Since(started)),
			"result":   result,
		},
	})
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// SanitizeError converts an internal error into a client-safe message. Both
// the synchronous and streaming surfaces use this one routine. Messages that
// look like upstream connectivity failures get the temporarily-unavailable
// wording; everything else becomes a generic internal error.
func SanitizeError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "Request ID") || strings.Contains(strings.ToLower(msg), "connection") {
		return "Service temporarily unavailable. Please try again later."
	}
	return "An internal error occurred. Please try again."
}
