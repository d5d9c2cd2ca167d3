package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

// CreateTask creates a new task
func (h *Handler) CreateTask(c *gin.Context) {
	var body createTaskReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), &domain.CreateTaskRequest{
		Title:      body.Title,
		Context:    body.Context,
		NextAction: body.NextAction,
		Status:     body.Status,
		Priority:   body.Priority,
		ProjectID:  body.ProjectID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "task": task})
}

// Capture is the quick-capture endpoint: task plus an initial snapshot note
// of the pasted context, filed under a project resolved by name.
func (h *Handler) Capture(c *gin.Context) {
	var body captureReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	task, err := h.tasks.Capture(c.Request.Context(), &domain.CaptureRequest{
		Title:       body.Title,
		Context:     body.Context,
		NextAction:  body.NextAction,
		ProjectName: body.ProjectName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "task": task})
}

// GetTask retrieves a task by id
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "task": task})
}

// ListTasks lists tasks, optionally filtered by status and project_id
func (h *Handler) ListTasks(c *gin.Context) {
	filter := domain.TaskFilter{Status: c.Query("status")}

	if raw := c.Query("project_id"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project_id"})
			return
		}
		filter.ProjectID = &projectID
	}

	tasks, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": tasks})
}

// UpdateTask applies a partial update to a task
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body updateTaskReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	req, err := body.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project_id"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "task": task})
}

// DeleteTask deletes a task and all of its notes
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}
