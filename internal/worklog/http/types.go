package http

import (
	"bytes"
	"encoding/json"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
	"github.com/workmemory/worklog-backend/internal/worklog/service"
)

// Handler handles HTTP requests for the worklog API
type Handler struct {
	tasks    *service.TaskService
	notes    *service.NoteService
	projects *service.ProjectService
	resume   *service.ResumeService
}

// New creates a new Handler
func New(
	tasks *service.TaskService,
	notes *service.NoteService,
	projects *service.ProjectService,
	resume *service.ResumeService,
) *Handler {
	return &Handler{
		tasks:    tasks,
		notes:    notes,
		projects: projects,
		resume:   resume,
	}
}

type createTaskReq struct {
	Title      string `json:"title"`
	Context    string `json:"context"`
	NextAction string `json:"next_action"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	ProjectID  *int64 `json:"project_id"`
}

type captureReq struct {
	Title       string `json:"title"`
	Context     string `json:"context"`
	NextAction  string `json:"next_action"`
	ProjectName string `json:"project_name"`
}

// updateTaskReq keeps project_id as raw JSON so that an absent key, an
// explicit null (detach) and a concrete id stay three different things.
type updateTaskReq struct {
	Title      *string         `json:"title"`
	Context    *string         `json:"context"`
	NextAction *string         `json:"next_action"`
	Status     *string         `json:"status"`
	Priority   *string         `json:"priority"`
	ProjectID  json.RawMessage `json:"project_id"`
}

var jsonNull = []byte("null")

func (r *updateTaskReq) toDomain() (domain.UpdateTaskRequest, error) {
	req := domain.UpdateTaskRequest{
		Title:      r.Title,
		Context:    r.Context,
		NextAction: r.NextAction,
		Status:     r.Status,
		Priority:   r.Priority,
	}

	if r.ProjectID != nil {
		req.ProjectID.Set = true
		if !bytes.Equal(bytes.TrimSpace(r.ProjectID), jsonNull) {
			var id int64
			if err := json.Unmarshal(r.ProjectID, &id); err != nil {
				return req, err
			}
			req.ProjectID.Value = &id
		}
	}

	return req, nil
}

type addNoteReq struct {
	NoteType string `json:"note_type"`
	Body     string `json:"body"`
}

type createProjectReq struct {
	Name string `json:"name"`
}
