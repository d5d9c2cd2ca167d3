package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workmemory/worklog-backend/internal/worklog/domain"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{"active", "paused", "done", "dropped"} {
		assert.True(t, domain.ValidStatus(status), status)
	}
	for _, status := range []string{"", "in_progress", "todo", "Active", "DONE"} {
		assert.False(t, domain.ValidStatus(status), status)
	}
}

func TestValidPriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high"} {
		assert.True(t, domain.ValidPriority(priority), priority)
	}
	for _, priority := range []string{"", "urgent", "2", "Medium"} {
		assert.False(t, domain.ValidPriority(priority), priority)
	}
}

func TestValidNoteType(t *testing.T) {
	for _, noteType := range []string{"note", "decision", "blocker", "snapshot"} {
		assert.True(t, domain.ValidNoteType(noteType), noteType)
	}
	for _, noteType := range []string{"", "comment", "Note"} {
		assert.False(t, domain.ValidNoteType(noteType), noteType)
	}
}
