package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

// CreateApplicationRequest is the body of POST /applications. Enum fields and the
// application date fall back to their defaults when omitted.
type CreateApplicationRequest struct {
	CompanyName     string                   `json:"company_name" validate:"required"`
	PositionTitle   string                   `json:"position_title" validate:"required"`
	JobURL          *string                  `json:"job_url,omitempty"`
	Location        *string                  `json:"location,omitempty"`
	SalaryRange     *string                  `json:"salary_range,omitempty"`
	EmploymentType  models.EmploymentType    `json:"employment_type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Status          models.ApplicationStatus `json:"status,omitempty" validate:"omitempty,oneof=Applied Interview Offer Rejected Withdrawn Accepted"`
	Priority        models.Priority          `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	ApplicationDate string                   `json:"application_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string                  `json:"notes,omitempty"`
	ContactPerson   *string                  `json:"contact_person,omitempty"`
	ContactEmail    *string                  `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// sanitize trims free text before validation.
func (r *CreateApplicationRequest) sanitize() {
	r.CompanyName = utils.SanitizeInput(r.CompanyName)
	r.PositionTitle = utils.SanitizeInput(r.PositionTitle)
	r.JobURL = utils.SanitizeOptional(r.JobURL)
	r.Location = utils.SanitizeOptional(r.Location)
	r.SalaryRange = utils.SanitizeOptional(r.SalaryRange)
	r.Notes = utils.SanitizeOptional(r.Notes)
	r.ContactPerson = utils.SanitizeOptional(r.ContactPerson)
	r.ContactEmail = utils.SanitizeOptional(r.ContactEmail)
}

// toInsert applies defaults and attaches the owner.
func (r CreateApplicationRequest) toInsert(ownerID string, today time.Time) models.NewJobApplication {
	app := models.NewJobApplication{
		UserID:          ownerID,
		CompanyName:     r.CompanyName,
		PositionTitle:   r.PositionTitle,
		JobURL:          r.JobURL,
		Location:        r.Location,
		SalaryRange:     r.SalaryRange,
		EmploymentType:  r.EmploymentType,
		Status:          r.Status,
		Priority:        r.Priority,
		ApplicationDate: r.ApplicationDate,
		Notes:           r.Notes,
		ContactPerson:   r.ContactPerson,
		ContactEmail:    r.ContactEmail,
	}
	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	if app.Priority == "" {
		app.Priority = models.PriorityMedium
	}
	if app.EmploymentType == "" {
		app.EmploymentType = models.EmploymentFullTime
	}
	if app.ApplicationDate == "" {
		app.ApplicationDate = today.UTC().Format(models.DateLayout)
	}
	return app
}

// ApplicationPatch lists the columns a client may change. A field that is present
// but null clears an optional column.
type ApplicationPatch struct {
	CompanyName     *string                   `json:"company_name" validate:"omitnil,min=1"`
	PositionTitle   *string                   `json:"position_title" validate:"omitnil,min=1"`
	JobURL          *string                   `json:"job_url"`
	Location        *string                   `json:"location"`
	SalaryRange     *string                   `json:"salary_range"`
	EmploymentType  *models.EmploymentType    `json:"employment_type" validate:"omitnil,oneof=Full-time Part-time Contract Internship"`
	Status          *models.ApplicationStatus `json:"status" validate:"omitnil,oneof=Applied Interview Offer Rejected Withdrawn Accepted"`
	Priority        *models.Priority          `json:"priority" validate:"omitnil,oneof=Low Medium High"`
	ApplicationDate *string                   `json:"application_date" validate:"omitnil,datetime=2006-01-02"`
	Notes           *string                   `json:"notes"`
	ContactPerson   *string                   `json:"contact_person"`
	ContactEmail    *string                   `json:"contact_email"`
}

// serverManagedFields are silently dropped from patches.
var serverManagedFields = map[string]bool{
	"id": true, "user_id": true, "created_at": true, "updated_at": true,
}

// nullableFields may be cleared with an explicit null.
var nullableFields = map[string]bool{
	"job_url": true, "location": true, "salary_range": true,
	"notes": true, "contact_person": true, "contact_email": true,
}

var patchFields = map[string]bool{
	"company_name": true, "position_title": true, "employment_type": true, "status": true,
	"priority": true, "application_date": true,
}

func init() {
	for k := range nullableFields {
		patchFields[k] = true
	}
}

var errEmptyBody = errors.New("request body must be a JSON object")

// decodeApplicationPatch turns a raw update body into the column map sent to the store.
func decodeApplicationPatch(body []byte) (map[string]interface{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, errEmptyBody
	}

	var unknown []string
	for k, v := range raw {
		switch {
		case serverManagedFields[k]:
			delete(raw, k)
		case !patchFields[k]:
			unknown = append(unknown, k)
		case string(v) == "null" && !nullableFields[k]:
			return nil, fmt.Errorf("field '%s' cannot be null", k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown fields: %s", strings.Join(unknown, ", "))
	}

	cleaned, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var p ApplicationPatch
	if err := json.Unmarshal(cleaned, &p); err != nil {
		return nil, fmt.Errorf("invalid field type: %v", err)
	}
	p.CompanyName = trimmed(p.CompanyName)
	p.PositionTitle = trimmed(p.PositionTitle)
	if err := validate.Struct(p); err != nil {
		return nil, errors.New(strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	patch := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if string(v) == "null" {
			patch[k] = nil
		}
	}
	setIf(patch, "company_name", p.CompanyName)
	setIf(patch, "position_title", p.PositionTitle)
	setIf(patch, "job_url", p.JobURL)
	setIf(patch, "location", p.Location)
	setIf(patch, "salary_range", p.SalaryRange)
	setIf(patch, "employment_type", p.EmploymentType)
	setIf(patch, "status", p.Status)
	setIf(patch, "priority", p.Priority)
	setIf(patch, "application_date", p.ApplicationDate)
	setIf(patch, "notes", p.Notes)
	setIf(patch, "contact_person", p.ContactPerson)
	setIf(patch, "contact_email", p.ContactEmail)
	return patch, nil
}

func setIf[T any](patch map[string]interface{}, key string, v *T) {
	if v != nil {
		patch[key] = *v
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// BulkUpdateRequest is the body of PUT /applications/bulk.
type BulkUpdateRequest struct {
	IDs     []string        `json:"ids"`
	Updates json.RawMessage `json:"updates" swaggertype:"object"`
}

// BulkDeleteRequest is the body of DELETE /applications/bulk.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// CreateInterviewRequest is the body of POST /interviews.
type CreateInterviewRequest struct {
	JobApplicationID string                 `json:"job_application_id" validate:"required,uuid"`
	InterviewType    models.InterviewType   `json:"interview_type" validate:"required,oneof=Phone Video In-person Technical Final"`
	ScheduledDate    time.Time              `json:"scheduled_date" validate:"required"`
	DurationMinutes  *int                   `json:"duration_minutes,omitempty" validate:"omitnil,gt=0"`
	InterviewerName  *string                `json:"interviewer_name,omitempty"`
	InterviewerEmail *string                `json:"interviewer_email,omitempty" validate:"omitempty,email"`
	Notes            *string                `json:"notes,omitempty"`
	Status           models.InterviewStatus `json:"status,omitempty" validate:"omitempty,oneof=Scheduled Completed Cancelled Rescheduled"`
}

const defaultInterviewMinutes = 60

func (r *CreateInterviewRequest) sanitize() {
	r.JobApplicationID = strings.ToLower(utils.SanitizeInput(r.JobApplicationID))
	r.InterviewerName = utils.SanitizeOptional(r.InterviewerName)
	r.InterviewerEmail = utils.SanitizeOptional(r.InterviewerEmail)
	r.Notes = utils.SanitizeOptional(r.Notes)
}

func (r CreateInterviewRequest) toInsert(ownerID string) models.NewInterview {
	iv := models.NewInterview{
		UserID:           ownerID,
		JobApplicationID: r.JobApplicationID,
		InterviewType:    r.InterviewType,
		ScheduledDate:    r.ScheduledDate.UTC(),
		DurationMinutes:  defaultInterviewMinutes,
		InterviewerName:  r.InterviewerName,
		InterviewerEmail: r.InterviewerEmail,
		Notes:            r.Notes,
		Status:           r.Status,
	}
	if r.DurationMinutes != nil {
		iv.DurationMinutes = *r.DurationMinutes
	}
	if iv.Status == "" {
		iv.Status = models.InterviewScheduled
	}
	return iv
}
