package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddNote attaches a note to a task
func (h *Handler) AddNote(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var body addNoteReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	note, err := h.notes.Add(c.Request.Context(), taskID, body.NoteType, body.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "note": note})
}

// ListNotes lists a task's notes. Without a limit it returns the full
// chronological log, oldest first; with ?limit=N it returns the N latest,
// newest first.
func (h *Handler) ListNotes(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid limit"})
			return
		}
		notes, err := h.notes.Latest(ctx, taskID, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "notes": notes})
		return
	}

	notes, err := h.notes.ListByTask(ctx, taskID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "notes": notes})
}

// DeleteNote deletes a single note
func (h *Handler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
