package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar-date columns such as application_date.
const DateLayout = "2006-01-02"

// JobApplication represents a row of the job_applications table.
// Interviews and ActivityLog are only populated when the query embeds them.
type JobApplication struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	CompanyName     string            `json:"company_name"`
	PositionTitle   string            `json:"position_title"`
	JobURL          *string           `json:"job_url,omitempty"`
	Location        *string           `json:"location,omitempty"`
	SalaryRange     *string           `json:"salary_range,omitempty"`
	EmploymentType  EmploymentType    `json:"employment_type"`
	Status          ApplicationStatus `json:"status"`
	Priority        Priority          `json:"priority"`
	ApplicationDate string            `json:"application_date"` // YYYY-MM-DD
	Notes           *string           `json:"notes,omitempty"`
	ContactPerson   *string           `json:"contact_person,omitempty"`
	ContactEmail    *string           `json:"contact_email,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Interviews  []Interview        `json:"interviews,omitempty"`
	ActivityLog []ActivityLogEntry `json:"activity_log,omitempty"`
}

// NewJobApplication is the insert payload. The database assigns id and timestamps.
type NewJobApplication struct {
	UserID          string            `json:"user_id"`
	CompanyName     string            `json:"company_name"`
	PositionTitle   string            `json:"position_title"`
	JobURL          *string           `json:"job_url,omitempty"`
	Location        *string           `json:"location,omitempty"`
	SalaryRange     *string           `json:"salary_range,omitempty"`
	EmploymentType  EmploymentType    `json:"employment_type"`
	Status          ApplicationStatus `json:"status"`
	Priority        Priority          `json:"priority"`
	ApplicationDate string            `json:"application_date"`
	Notes           *string           `json:"notes,omitempty"`
	ContactPerson   *string           `json:"contact_person,omitempty"`
	ContactEmail    *string           `json:"contact_email,omitempty"`
}

// ApplicationRef is the company/position snapshot embedded into interview and activity rows.
type ApplicationRef struct {
	CompanyName   string `json:"company_name"`
	PositionTitle string `json:"position_title"`
}

// StringValue dereferences an optional column.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
