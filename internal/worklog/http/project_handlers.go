package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateProject creates a new project
func (h *Handler) CreateProject(c *gin.Context) {
	var body createProjectReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), body.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
}

// ListProjects lists all projects, oldest first
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

// DeleteProject deletes a project that no task references
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
