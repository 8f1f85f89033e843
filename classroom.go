package edusphere

import (
	"context"
	"fmt"
)

// Course identifies one classroom course.
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClassroomService is the boundary to Google Classroom. It runs in mock mode
// and returns safe sample data; errors never cross this boundary.
type ClassroomService struct{}

// NewClassroomService creates the classroom adapter.
func NewClassroomService() *ClassroomService {
	return &ClassroomService{}
}

// GetCourseMaterials fetches the combined notes text of a course, optionally
// filtered by topic.
func (cs *ClassroomService) GetCourseMaterials(ctx context.Context, courseID, topic string) string {
	if topic != "" {
		return fmt.Sprintf(`# %s - Educational Content

This is sample educational content for %s.

## Key Concepts

1. Fundamental principles apply in this domain
2. Advanced techniques build upon basic understanding
3. Practical applications demonstrate theoretical concepts
4. Critical thinking enhances learning outcomes

## Important Points

- First important concept to understand
- Second concept builds on the first
- Third concept integrates previous knowledge
- Fourth concept requires synthesis of all prior learning

## Applications

Real-world applications include various scenarios where these concepts are utilized effectively.
`, topic, topic)
	}
	return `# Sample Educational Content

This is sample content from Google Classroom.

## Introduction

Educational content covers various topics and concepts.

## Main Topics

Topic 1: Fundamental principles
Topic 2: Advanced applications
Topic 3: Real-world examples

## Conclusion

These concepts form the foundation for further learning.
`
}

// ListCourses returns the available courses.
func (cs *ClassroomService) ListCourses(ctx context.Context) []Course {
	return []Course{
		{ID: "course_1", Name: "Physics 101"},
		{ID: "course_2", Name: "Mathematics 201"},
		{ID: "course_3", Name: "Chemistry 101"},
	}
}
