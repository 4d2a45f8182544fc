// Package query turns list, lookup and aggregation requests into owner-scoped PostgREST plans.
//
// Every builder takes the caller's owner id as an explicit argument and emits the
// user_id filter before any caller-supplied predicate.
package query

import (
	"strings"
	"time"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/models"
)

const (
	TableApplications = "job_applications"
	TableInterviews   = "interviews"
	TableActivity     = "activity_log"

	ownerColumn = "user_id"
	dateColumn  = "application_date"

	embedInterviews  = "interviews(*)"
	embedActivity    = "activity_log(*)"
	embedApplication = "job_applications(company_name,position_title)"
)

// searchColumns are matched case-insensitively by the free-text search.
var searchColumns = []string{
	"company_name", "position_title", "contact_person", "contact_email", "notes", "location",
}

// EscapeSearch protects commas so the term stays one token inside an or=(...) list.
func EscapeSearch(term string) string {
	return strings.ReplaceAll(term, ",", `\,`)
}

func owned(table, columns, ownerID string) Plan {
	p := Plan{Table: table, Columns: columns}
	p.eq(ownerColumn, ownerID)
	return p
}

// ApplicationList builds the paginated list query with its exact total count.
func ApplicationList(ownerID string, params ListParams) Plan {
	columns := "*"
	if params.IncludeInterviews {
		columns += "," + embedInterviews
	}
	if params.IncludeActivity {
		columns += "," + embedActivity
	}
	p := owned(TableApplications, columns, ownerID)
	p.Count = "exact"

	f := params.Filters
	if len(f.Status) > 0 {
		p.in("status", stringsOf(f.Status))
	}
	if len(f.Priority) > 0 {
		p.in("priority", stringsOf(f.Priority))
	}
	if len(f.EmploymentType) > 0 {
		p.in("employment_type", stringsOf(f.EmploymentType))
	}
	if f.CompanyName != "" {
		p.filter("company_name", "ilike", "%"+f.CompanyName+"%")
	}
	if f.Search != "" {
		term := EscapeSearch(f.Search)
		for _, col := range searchColumns {
			p.Or = append(p.Or, col+".ilike.%"+term+"%")
		}
	}
	applyDateWindow(&p, f.DateWindow())

	sort := params.Sort
	if !Sortable(sort.Field) {
		sort.Field = DefaultSort.Field
	}
	p.Order = &Order{Column: sort.Field, Ascending: sort.Direction == Asc}

	from, to := params.Window()
	p.Offset, p.Limit = from, to-from+1
	return p
}

// ApplicationByID fetches one application with its interviews and activity.
func ApplicationByID(ownerID, id string) Plan {
	p := owned(TableApplications, "*,"+embedInterviews+","+embedActivity, ownerID)
	p.eq("id", id)
	return p
}

// ApplicationsByIDs scopes a bulk mutation to the caller's rows among ids.
func ApplicationsByIDs(ownerID string, ids []string) Plan {
	p := owned(TableApplications, "*", ownerID)
	p.in("id", ids)
	return p
}

// ApplicationCount counts the caller's applications inside w.
func ApplicationCount(ownerID string, w filters.DateWindow) Plan {
	p := owned(TableApplications, "id", ownerID)
	p.Count = "exact"
	p.Head = true
	applyDateWindow(&p, w)
	return p
}

// ApplicationStatuses selects only the status column of the caller's applications in w.
func ApplicationStatuses(ownerID string, w filters.DateWindow) Plan {
	p := owned(TableApplications, "status", ownerID)
	applyDateWindow(&p, w)
	return p
}

// InterviewList lists interviews with the parent application's snapshot, soonest first.
func InterviewList(ownerID string, params InterviewParams) Plan {
	p := owned(TableInterviews, "*,"+embedApplication, ownerID)
	if params.JobApplicationID != "" {
		p.eq("job_application_id", params.JobApplicationID)
	}
	if params.UpcomingOnly {
		upcoming(&p, params.Now)
	}
	p.Order = &Order{Column: "scheduled_date", Ascending: true}
	return p
}

// UpcomingInterviewCount counts scheduled interviews at or after now.
func UpcomingInterviewCount(ownerID string, now time.Time) Plan {
	p := owned(TableInterviews, "id", ownerID)
	p.Count = "exact"
	p.Head = true
	upcoming(&p, now)
	return p
}

// ActivityList returns the newest activity first.
func ActivityList(ownerID string, params ActivityParams) Plan {
	p := owned(TableActivity, "*,"+embedApplication, ownerID)
	if params.JobApplicationID != "" {
		p.eq("job_application_id", params.JobApplicationID)
	}
	p.Order = &Order{Column: "created_at", Ascending: false}
	p.Limit = params.Limit
	if p.Limit <= 0 {
		p.Limit = DefaultActivityLimit
	}
	return p
}

func upcoming(p *Plan, now time.Time) {
	p.filter("scheduled_date", "gte", now.UTC().Format(time.RFC3339))
	p.eq("status", string(models.InterviewScheduled))
}

// applyDateWindow bounds application_date inclusively. A second bound on the same
// column goes into the logic expression since column filters are keyed by name.
func applyDateWindow(p *Plan, w filters.DateWindow) {
	if w.From != "" {
		p.filter(dateColumn, "gte", w.From)
	}
	if w.To != "" {
		if w.From != "" {
			p.And = append(p.And, dateColumn+".lte."+w.To)
		} else {
			p.filter(dateColumn, "lte", w.To)
		}
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
