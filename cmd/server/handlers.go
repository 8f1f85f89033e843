package main

import (
	"errors"
	"net/http"
	"time"

	"edusphere"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "EduSphere AI Orchestrator is running",
		"version":          version,
		"mode":             "MVP",
		"forms_authorized": s.forms.Ready(),
	})
}

func (s *Server) handleOrchestrate(c *gin.Context) {
	var req edusphere.OrchestrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}

	resp, err := s.orch.Run(c.Request.Context(), req, nil)
	if err != nil {
		if errors.Is(err, edusphere.ErrUnsupportedIntent) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		// Full error server-side, sanitized text to the caller.
		s.log.Errorw("orchestration failed", "request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": edusphere.SanitizeError(err)})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleOrchestrateStream runs the same pipeline but pushes each progress
// event as a named SSE event. The terminal event is always complete or error.
func (s *Server) handleOrchestrateStream(c *gin.Context) {
	var req edusphere.OrchestrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	started := time.Now()
	sink := func(ev edusphere.ProgressEvent) {
		c.SSEvent(string(ev.Kind), ev.Payload)
		c.Writer.Flush()
	}

	resp, err := s.orch.Run(c.Request.Context(), req, sink)
	if err != nil {
		message := edusphere.SanitizeError(err)
		if errors.Is(err, edusphere.ErrUnsupportedIntent) {
			message = err.Error()
		} else {
			s.log.Errorw("streaming orchestration failed", "request_id", c.GetString("request_id"), "error", err)
		}
		sink(edusphere.ProgressEvent{
			Kind:    edusphere.EventError,
			Payload: map[string]any{"message": message},
		})
		return
	}

	sink(edusphere.ProgressEvent{
		Kind: edusphere.EventComplete,
		Payload: map[string]any{
			"success":        resp.Success,
			"message":        resp.Message,
			"total_duration": time.Since(started).Round(10 * time.Millisecond).Seconds(),
			"data":           resp.Data,
			"intent":         resp.Intent,
		},
	})
}

func (s *Server) handleClassroomStatus(c *gin.Context) {
	c.JSON(http.StatusOK, edusphere.ClassroomStatus())
}

func (s *Server) handleClassroomCourses(c *gin.Context) {
	classroom := edusphere.NewClassroomService()
	c.JSON(http.StatusOK, gin.H{"courses": classroom.ListCourses(c.Request.Context())})
}

func (s *Server) handleClassroomNotify(c *gin.Context) {
	var req struct {
		AssignmentID string `json:"assignment_id"`
		ClassName    string `json:"class_name"`
		StudentCount int    `json:"student_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	c.JSON(http.StatusOK, edusphere.SimulateNotification(req.AssignmentID, req.ClassName, req.StudentCount))
}
