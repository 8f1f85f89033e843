package edusphere

import (
	"context"
	"fmt"
	"time"
)

// EventRequest describes one calendar event to create.
type EventRequest struct {
	Title       string     `json:"title"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Description string     `json:"description"`
}

// CalendarService is the boundary to Google Calendar. Mock mode only: it
// reports every requested event as created and never fails.
type CalendarService struct{}

// NewCalendarService creates the calendar adapter.
func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

// CreateSchedule creates calendar events for an optimized schedule.
func (cs *CalendarService) CreateSchedule(ctx context.Context, events []EventRequest) []CalendarEvent {
	created := make([]CalendarEvent, 0, len(events))
	for i, ev := range events {
		title := ev.Title
		if title == "" {
			title = "Event"
		}
		created = append(created, CalendarEvent{
			EventID:   fmt.Sprintf("mock_event_%d", i),
			Title:     title,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Status:    "created",
		})
	}
	return created
}
