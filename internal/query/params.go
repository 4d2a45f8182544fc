package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobtracker/api-gateway/internal/filters"
)

const (
	DefaultPage          = 1
	DefaultLimit         = 10
	MaxLimit             = 200
	DefaultActivityLimit = 50
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders a list by a single column.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// DefaultSort lists the newest applications first.
var DefaultSort = Sort{Field: "created_at", Direction: Desc}

var sortableColumns = map[string]bool{
	"company_name":     true,
	"position_title":   true,
	"status":           true,
	"priority":         true,
	"employment_type":  true,
	"application_date": true,
	"location":         true,
	"salary_range":     true,
	"contact_person":   true,
	"created_at":       true,
	"updated_at":       true,
}

// Sortable reports whether field can be used as a sort column.
func Sortable(field string) bool { return sortableColumns[field] }

// ListParams is a parsed GET /applications request.
type ListParams struct {
	Page              int
	Limit             int
	Filters           filters.Filters
	Sort              Sort
	IncludeInterviews bool
	IncludeActivity   bool
}

// ParseListParams reads list parameters, falling back to defaults for anything missing
// or unparsable.
func ParseListParams(v url.Values) ListParams {
	p := ListParams{
		Page:              positiveInt(v.Get("page"), DefaultPage),
		Limit:             positiveInt(v.Get("limit"), DefaultLimit),
		Filters:           filters.Decode(v),
		Sort:              DefaultSort,
		IncludeInterviews: v.Get("include_interviews") == "true",
		IncludeActivity:   v.Get("include_activity") == "true",
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if field := v.Get("sort_field"); Sortable(field) {
		p.Sort.Field = field
	}
	if v.Get("sort_direction") == string(Asc) {
		p.Sort.Direction = Asc
	}
	return p
}

// Values encodes p so that ParseListParams(p.Values()) reproduces it.
func (p ListParams) Values() url.Values {
	v := filters.Encode(url.Values{}, p.Filters)
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort.Field != "" {
		v.Set("sort_field", p.Sort.Field)
	}
	if p.Sort.Direction != "" {
		v.Set("sort_direction", string(p.Sort.Direction))
	}
	if p.IncludeInterviews {
		v.Set("include_interviews", "true")
	}
	if p.IncludeActivity {
		v.Set("include_activity", "true")
	}
	return v
}

// Window returns the inclusive row range of the requested page.
func (p ListParams) Window() (from, to int) {
	return (p.Page - 1) * p.Limit, p.Page*p.Limit - 1
}

// TotalPages is ceil(count/limit).
func TotalPages(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

// InterviewParams is a parsed GET /interviews request.
type InterviewParams struct {
	JobApplicationID string
	UpcomingOnly     bool
	Now              time.Time
}

func ParseInterviewParams(v url.Values, now time.Time) InterviewParams {
	return InterviewParams{
		JobApplicationID: strings.TrimSpace(v.Get("job_application_id")),
		UpcomingOnly:     v.Get("upcoming_only") == "true",
		Now:              now,
	}
}

// Values encodes p for a request URL. Now is server-side only.
func (p InterviewParams) Values() url.Values {
	v := url.Values{}
	if p.JobApplicationID != "" {
		v.Set("job_application_id", p.JobApplicationID)
	}
	if p.UpcomingOnly {
		v.Set("upcoming_only", "true")
	}
	return v
}

// ActivityParams is a parsed activity log request.
type ActivityParams struct {
	JobApplicationID string
	Limit            int
}

func ParseActivityParams(v url.Values) ActivityParams {
	limit := positiveInt(v.Get("limit"), DefaultActivityLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return ActivityParams{Limit: limit}
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}
