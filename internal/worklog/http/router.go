package http

import "github.com/gin-gonic/gin"

// Register mounts the worklog routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects", h.CreateProject)
	rg.GET("/projects", h.ListProjects)
	rg.DELETE("/projects/:id", h.DeleteProject)

	rg.POST("/tasks", h.CreateTask)
	rg.POST("/capture", h.Capture)
	rg.GET("/tasks", h.ListTasks)
	rg.GET("/tasks/:id", h.GetTask)
	rg.PATCH("/tasks/:id", h.UpdateTask)
	rg.DELETE("/tasks/:id", h.DeleteTask)

	rg.POST("/tasks/:id/notes", h.AddNote)
	rg.GET("/tasks/:id/notes", h.ListNotes)
	rg.DELETE("/notes/:id", h.DeleteNote)

	rg.GET("/resume", h.Resume)
}
