package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is an append-only history row. JobApplicationID becomes nil once the
// application is deleted; the snapshot columns keep the entry readable.
type ActivityLogEntry struct {
	ID                      uuid.UUID    `json:"id"`
	UserID                  uuid.UUID    `json:"user_id"`
	JobApplicationID        *uuid.UUID   `json:"job_application_id"`
	JobApplicationReference *string      `json:"job_application_reference,omitempty"`
	JobCompanySnapshot      *string      `json:"job_company_snapshot,omitempty"`
	JobPositionSnapshot     *string      `json:"job_position_snapshot,omitempty"`
	ActionType              ActivityType `json:"action_type"`
	Description             string       `json:"description"`
	OldValue                *string      `json:"old_value,omitempty"`
	NewValue                *string      `json:"new_value,omitempty"`
	CreatedAt               time.Time    `json:"created_at"`

	JobApplication *ApplicationRef `json:"job_applications,omitempty"`
}

// Subject returns the company and position the entry refers to, preferring the live
// application over the snapshot.
func (e ActivityLogEntry) Subject() (company, position string) {
	if e.JobApplication != nil {
		return e.JobApplication.CompanyName, e.JobApplication.PositionTitle
	}
	return StringValue(e.JobCompanySnapshot), StringValue(e.JobPositionSnapshot)
}
