package edusphere

import (
	"fmt"
	"time"
)

// AssignToClassroom packages a generated quiz into a demonstration classroom
// assignment. It never fails and is deterministic given a timestamp.
func AssignToClassroom(quizTitle string, questions []Question, formURL, className, dueDate string) DeliveryRecord {
	return assignAt(time.Now(), quizTitle, questions, formURL, className, dueDate)
}

func assignAt(now time.Time, quizTitle string, questions []Question, formURL, className, dueDate string) DeliveryRecord {
	timestamp := now.Format("20060102150405")
	assignmentID := "demo_assignment_" + timestamp
	classroomURL := fmt.Sprintf("https://classroom.google.com/c/demo_%s/a/%s", timestamp, assignmentID)

	if className == "" {
		className = "Demo Class"
	}

	var message string
	if formURL != "" {
		message = fmt.Sprintf("Quiz '%s' with %d questions successfully assigned to %s (Demo Mode). Form URL attached.",
			quizTitle, len(questions), className)
	} else {
		message = fmt.Sprintf("Quiz '%s' with %d questions successfully assigned to %s (Demo Mode).",
			quizTitle, len(questions), className)
	}

	return DeliveryRecord{
		DeliveryStatus: "assigned",
		Platform:       "Google Classroom",
		Mode:           "demo",
		Message:        message,
		AssignmentID:   assignmentID,
		ClassroomURL:   classroomURL,
	}
}

// DemoClass describes one classroom available in demo mode.
type DemoClass struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Students int    `json:"students"`
}

// ClassroomStatus reports the current state of the classroom integration.
func ClassroomStatus() map[string]any {
	return map[string]any{
		"connected": false,
		"mode":      "demo",
		"available_classes": []DemoClass{
			{ID: "demo_class_1", Name: "Physics 101", Students: 25},
			{ID: "demo_class_2", Name: "Chemistry 201", Students: 30},
			{ID: "demo_class_3", Name: "Biology 101", Students: 22},
		},
		"message": "Running in Demo Mode. Connect Google Classroom for live integration.",
	}
}

// SimulateNotification pretends to notify the students of a class about a new
// assignment.
func SimulateNotification(assignmentID, className string, studentCount int) map[string]any {
	if studentCount <= 0 {
		studentCount = 25
	}
	return map[string]any{
		"notification_sent": true,
		"mode":              "demo",
		"recipients":        studentCount,
		"class_name":        className,
		"assignment_id":     assignmentID,
		"message":           fmt.Sprintf("Notification simulated for %d students in %s (Demo Mode)", studentCount, className),
	}
}
