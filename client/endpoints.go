package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/models"
)

// ApplicationPage is one page of GET /applications.
type ApplicationPage struct {
	Data       []models.JobApplication `json:"data"`
	Count      int                     `json:"count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// ApplicationInput is the body of a create request. Empty enum fields take the
// server defaults.
type ApplicationInput struct {
	CompanyName     string                   `json:"company_name"`
	PositionTitle   string                   `json:"position_title"`
	JobURL          *string                  `json:"job_url,omitempty"`
	Location        *string                  `json:"location,omitempty"`
	SalaryRange     *string                  `json:"salary_range,omitempty"`
	EmploymentType  models.EmploymentType    `json:"employment_type,omitempty"`
	Status          models.ApplicationStatus `json:"status,omitempty"`
	Priority        models.Priority          `json:"priority,omitempty"`
	ApplicationDate string                   `json:"application_date,omitempty"`
	Notes           *string                  `json:"notes,omitempty"`
	ContactPerson   *string                  `json:"contact_person,omitempty"`
	ContactEmail    *string                  `json:"contact_email,omitempty"`
}

// InterviewInput is the body of POST /interviews.
type InterviewInput struct {
	JobApplicationID string                 `json:"job_application_id"`
	InterviewType    models.InterviewType   `json:"interview_type"`
	ScheduledDate    time.Time              `json:"scheduled_date"`
	DurationMinutes  int                    `json:"duration_minutes,omitempty"`
	InterviewerName  *string                `json:"interviewer_name,omitempty"`
	InterviewerEmail *string                `json:"interviewer_email,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
	Status           models.InterviewStatus `json:"status,omitempty"`
}

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// applicationWrites are the reads any application mutation can change.
var applicationWrites = []string{PrefixApplications, PrefixStats, PrefixActivity}

// applicationDeletes also cover interviews, which are deleted with their application.
var applicationDeletes = []string{PrefixApplications, PrefixStats, PrefixActivity, PrefixInterviews}

var interviewWrites = []string{PrefixInterviews, PrefixApplications, PrefixStats, PrefixActivity}

func (c *Client) ListApplications(ctx context.Context, params query.ListParams) (*ApplicationPage, error) {
	var page ApplicationPage
	if err := c.get(ctx, PrefixApplications, params.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	var out envelope[models.JobApplication]
	if err := c.get(ctx, PrefixApplications+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) CreateApplication(ctx context.Context, in ApplicationInput) (*models.JobApplication, error) {
	var out envelope[models.JobApplication]
	if err := c.send(ctx, http.MethodPost, PrefixApplications, in, &out, applicationWrites...); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateApplication sends a partial update; a nil value clears an optional field.
func (c *Client) UpdateApplication(ctx context.Context, id string, patch map[string]interface{}) (*models.JobApplication, error) {
	var out envelope[models.JobApplication]
	path := PrefixApplications + "/" + url.PathEscape(id)
	if err := c.send(ctx, http.MethodPut, path, patch, &out, applicationWrites...); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	path := PrefixApplications + "/" + url.PathEscape(id)
	return c.send(ctx, http.MethodDelete, path, nil, nil, applicationDeletes...)
}

// BulkUpdate applies patch to ids and returns the updated rows.
func (c *Client) BulkUpdate(ctx context.Context, ids []string, patch map[string]interface{}) ([]models.JobApplication, error) {
	body := map[string]interface{}{"ids": ids, "updates": patch}
	var out envelope[[]models.JobApplication]
	if err := c.send(ctx, http.MethodPut, PrefixApplications+"/bulk", body, &out, applicationWrites...); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// BulkDelete returns how many applications were deleted.
func (c *Client) BulkDelete(ctx context.Context, ids []string) (int, error) {
	body := map[string]interface{}{"ids": ids}
	var out envelope[struct{}]
	if err := c.send(ctx, http.MethodDelete, PrefixApplications+"/bulk", body, &out, applicationDeletes...); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) ListInterviews(ctx context.Context, params query.InterviewParams) ([]models.Interview, error) {
	var out envelope[[]models.Interview]
	if err := c.get(ctx, PrefixInterviews, params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateInterview(ctx context.Context, in InterviewInput) (*models.Interview, error) {
	var out envelope[models.Interview]
	if err := c.send(ctx, http.MethodPost, PrefixInterviews, in, &out, interviewWrites...); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ActivityLog returns the newest entries; limit <= 0 uses the server default.
func (c *Client) ActivityLog(ctx context.Context, limit int) ([]models.ActivityLogEntry, error) {
	var out envelope[[]models.ActivityLogEntry]
	if err := c.get(ctx, PrefixActivity, limitValues(limit), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ApplicationActivity(ctx context.Context, id string, limit int) ([]models.ActivityLogEntry, error) {
	var out envelope[[]models.ActivityLogEntry]
	path := PrefixApplications + "/" + url.PathEscape(id) + "/activity"
	if err := c.get(ctx, path, limitValues(limit), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) DashboardStats(ctx context.Context, w filters.DateWindow) (*models.DashboardStats, error) {
	v := url.Values{}
	if w.From != "" {
		v.Set(filters.KeyDateFrom, w.From)
	}
	if w.To != "" {
		v.Set(filters.KeyDateTo, w.To)
	}
	var out envelope[models.DashboardStats]
	if err := c.get(ctx, PrefixStats, v, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// AllApplications walks every page of params.
func (c *Client) AllApplications(ctx context.Context, params query.ListParams) ([]models.JobApplication, error) {
	if params.Limit <= 0 {
		params.Limit = query.MaxLimit
	}
	var all []models.JobApplication
	for page := 1; ; page++ {
		params.Page = page
		p, err := c.ListApplications(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Data...)
		if page >= p.TotalPages {
			return all, nil
		}
	}
}

func limitValues(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
