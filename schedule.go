package edusphere

import (
	"sort"
	"time"
)

var priorityRank = map[string]int{
	"high":   0,
	"medium": 1,
	"low":    2,
}

// OptimizeSchedule joins tasks to their deadlines and orders them by priority
// rank, then by ascending due date with missing dates last. High-priority
// tasks are suggested for the morning. Deterministic, no external calls.
func OptimizeSchedule(tasks []Task, deadlines []Deadline) ScheduleReport {
	dueDates := make(map[string]*time.Time, len(deadlines))
	for _, d := range deadlines {
		dueDates[d.TaskName] = d.DueDate
	}

	scheduled := make([]ScheduledTask, 0, len(tasks))
	for _, t := range tasks {
		duration := t.Duration
		if duration == "" {
			duration = "1 hour"
		}
		priority := t.Priority
		if priority == "" {
			priority = "medium"
		}
		slot := "Afternoon"
		if priority == "high" {
			slot = "Morning"
		}
		scheduled = append(scheduled, ScheduledTask{
			Task:          t.Name,
			Duration:      duration,
			Priority:      priority,
			DueDate:       dueDates[t.Name],
			SuggestedSlot: slot,
		})
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		ri, rj := rankOf(scheduled[i].Priority), rankOf(scheduled[j].Priority)
		if ri != rj {
			return ri < rj
		}
		di, dj := scheduled[i].DueDate, scheduled[j].DueDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})

	return ScheduleReport{
		Schedule:   scheduled,
		TotalTasks: len(scheduled),
		Recommendations: []string{
			"Schedule high-priority tasks in the morning",
			"Include breaks between tasks",
			"Allocate buffer time for unexpected work",
		},
	}
}

func rankOf(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return 1
}
