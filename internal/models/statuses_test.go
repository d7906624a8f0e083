package models_test

import (
	"testing"

	"jobstreet_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplicationTransitions(t *testing.T) {
	from := models.ApplicationStatusPending
	assert.True(t, models.IsValidApplicationTransition(from, models.ApplicationStatusReviewed))
	assert.True(t, models.IsValidApplicationTransition(from, models.ApplicationStatusAccepted))
	assert.True(t, models.IsValidApplicationTransition(from, models.ApplicationStatusRejected))

	// Terminal statuses never move.
	for _, terminal := range []models.ApplicationStatus{
		models.ApplicationStatusReviewed,
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
	} {
		assert.False(t, models.IsValidApplicationTransition(terminal, models.ApplicationStatusPending))
		assert.False(t, models.IsValidApplicationTransition(terminal, models.ApplicationStatusAccepted))
	}

	assert.False(t, models.IsValidApplicationTransition(from, models.ApplicationStatusPending))
}

func TestInterviewTransitions(t *testing.T) {
	from := models.InterviewStatusScheduled
	assert.True(t, models.IsValidInterviewTransition(from, models.InterviewStatusCompleted))
	assert.True(t, models.IsValidInterviewTransition(from, models.InterviewStatusCanceled))
	assert.True(t, models.IsValidInterviewTransition(from, models.InterviewStatusNoShow))

	for _, terminal := range []models.InterviewStatus{
		models.InterviewStatusCompleted,
		models.InterviewStatusCanceled,
		models.InterviewStatusNoShow,
	} {
		assert.False(t, models.IsValidInterviewTransition(terminal, models.InterviewStatusScheduled))
		assert.False(t, models.IsValidInterviewTransition(terminal, models.InterviewStatusCompleted))
	}
}
