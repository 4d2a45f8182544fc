package models

import (
	"time"

	"github.com/google/uuid"
)

// Interview represents a row of the interviews table.
type Interview struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	JobApplicationID uuid.UUID       `json:"job_application_id"`
	InterviewType    InterviewType   `json:"interview_type"`
	ScheduledDate    time.Time       `json:"scheduled_date"`
	DurationMinutes  int             `json:"duration_minutes"`
	InterviewerName  *string         `json:"interviewer_name,omitempty"`
	InterviewerEmail *string         `json:"interviewer_email,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Status           InterviewStatus `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	JobApplication *ApplicationRef `json:"job_applications,omitempty"`
}

// Upcoming reports whether the interview is still scheduled at or after now.
func (i Interview) Upcoming(now time.Time) bool {
	return i.Status == InterviewScheduled && !i.ScheduledDate.Before(now)
}

// NewInterview is the insert payload for the interviews table.
type NewInterview struct {
	UserID           string          `json:"user_id"`
	JobApplicationID string          `json:"job_application_id"`
	InterviewType    InterviewType   `json:"interview_type"`
	ScheduledDate    time.Time       `json:"scheduled_date"`
	DurationMinutes  int             `json:"duration_minutes"`
	InterviewerName  *string         `json:"interviewer_name,omitempty"`
	InterviewerEmail *string         `json:"interviewer_email,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Status           InterviewStatus `json:"status"`
}
