package domain

import "time"

// Task is a single unit of in-progress work together with the context
// needed to pick it back up after an interruption.
type Task struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Context    string    `json:"context"`
	NextAction string    `json:"next_action"`
	Status     string    `json:"status"`   // active, paused, done, dropped
	Priority   string    `json:"priority"` // low, medium, high
	ProjectID  *int64    `json:"project_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Project groups tasks. Name is unique (exact, case-sensitive).
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is a timestamped entry attached to exactly one task. Notes are
// immutable once written; they only ever go away with their task or by
// explicit deletion.
type Note struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	NoteType  string    `json:"note_type"` // note, decision, blocker, snapshot
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Task status constants
const (
	StatusActive  = "active"
	StatusPaused  = "paused"
	StatusDone    = "done"
	StatusDropped = "dropped"
)

// Task priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Note type constants
const (
	NoteTypeNote     = "note"
	NoteTypeDecision = "decision"
	NoteTypeBlocker  = "blocker"
	NoteTypeSnapshot = "snapshot"
)

// ValidStatus reports whether status is one of the known task statuses.
func ValidStatus(status string) bool {
	return status == StatusActive ||
		status == StatusPaused ||
		status == StatusDone ||
		status == StatusDropped
}

// ValidPriority reports whether priority is one of the known priorities.
func ValidPriority(priority string) bool {
	return priority == PriorityLow ||
		priority == PriorityMedium ||
		priority == PriorityHigh
}

// ValidNoteType reports whether noteType is one of the known note types.
func ValidNoteType(noteType string) bool {
	return noteType == NoteTypeNote ||
		noteType == NoteTypeDecision ||
		noteType == NoteTypeBlocker ||
		noteType == NoteTypeSnapshot
}

// CreateTaskRequest represents data needed to create a new task.
// Zero-valued Status and Priority fall back to active/medium.
type CreateTaskRequest struct {
	Title      string
	Context    string
	NextAction string
	Status     string
	Priority   string
	ProjectID  *int64
}

// CaptureRequest is the quick-capture payload: a task plus the raw pasted
// context, filed under a project resolved by name.
type CaptureRequest struct {
	Title       string
	Context     string
	NextAction  string
	ProjectName string
}

// UpdateTaskRequest represents a partial update. Only non-nil fields are
// applied; ProjectID carries its own presence flag so that "omitted" and
// "explicitly cleared" stay distinguishable.
type UpdateTaskRequest struct {
	Title      *string
	Context    *string
	NextAction *string
	Status     *string
	Priority   *string
	ProjectID  OptionalProjectID
}

// OptionalProjectID is a nullable foreign key with explicit presence.
// Set=false leaves the association untouched; Set=true with a nil Value
// detaches the task from its project.
type OptionalProjectID struct {
	Set   bool
	Value *int64
}

// TaskFilter narrows task listings. Empty Status matches all statuses;
// nil ProjectID matches all projects.
type TaskFilter struct {
	Status    string
	ProjectID *int64
}

// ResumeView is what the user sees when asking "where was I?": the task to
// resume plus its latest notes, newest first.
type ResumeView struct {
	Task        *Task  `json:"task"`
	LatestNotes []Note `json:"latest_notes"`
}
