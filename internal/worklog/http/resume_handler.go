package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resume returns the task to pick back up plus its latest notes. An empty
// active set is a 404 with a hint, matching the contract that "nothing to
// resume" is an answer rather than a server failure.
func (h *Handler) Resume(c *gin.Context) {
	view, err := h.resume.Resume(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no active tasks yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "task": view.Task, "latest_notes": view.LatestNotes})
}
