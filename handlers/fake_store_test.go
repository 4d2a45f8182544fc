package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/internal/store"
	"jobtracker/api-gateway/models"
)

// fakeStore keeps rows in memory and enforces owner scoping like the real backend.
type fakeStore struct {
	apps       []models.JobApplication
	interviews []models.Interview
	activity   []models.ActivityLogEntry
	failWith   error

	mutations  int
	lastList   query.ListParams
	lastWindow filters.DateWindow
}

func (f *fakeStore) find(ownerID, id string) int {
	for i, a := range f.apps {
		if a.ID.String() == id && a.UserID.String() == ownerID {
			return i
		}
	}
	return -1
}

func (f *fakeStore) ListApplications(_ context.Context, ownerID string, params query.ListParams) ([]models.JobApplication, int, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	f.lastList = params
	var owned []models.JobApplication
	for _, a := range f.apps {
		if a.UserID.String() != ownerID {
			continue
		}
		if len(params.Filters.Status) > 0 && !containsStatus(params.Filters.Status, a.Status) {
			continue
		}
		owned = append(owned, a)
	}
	from, to := params.Window()
	page := []models.JobApplication{}
	for i := from; i <= to && i < len(owned); i++ {
		page = append(page, owned[i])
	}
	return page, len(owned), nil
}

func containsStatus(list []models.ApplicationStatus, s models.ApplicationStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (f *fakeStore) GetApplication(_ context.Context, ownerID, id string) (*models.JobApplication, error) {
	i := f.find(ownerID, id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	app := f.apps[i]
	return &app, nil
}

func (f *fakeStore) CreateApplication(_ context.Context, in models.NewJobApplication) (*models.JobApplication, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mutations++
	now := time.Now().UTC()
	app := models.JobApplication{
		ID:              uuid.New(),
		UserID:          uuid.MustParse(in.UserID),
		CompanyName:     in.CompanyName,
		PositionTitle:   in.PositionTitle,
		JobURL:          in.JobURL,
		Location:        in.Location,
		SalaryRange:     in.SalaryRange,
		EmploymentType:  in.EmploymentType,
		Status:          in.Status,
		Priority:        in.Priority,
		ApplicationDate: in.ApplicationDate,
		Notes:           in.Notes,
		ContactPerson:   in.ContactPerson,
		ContactEmail:    in.ContactEmail,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	f.apps = append(f.apps, app)
	return &app, nil
}

func (f *fakeStore) applyPatch(i int, patch map[string]interface{}) {
	a := &f.apps[i]
	for k, v := range patch {
		switch k {
		case "status":
			a.Status = v.(models.ApplicationStatus)
		case "priority":
			a.Priority = v.(models.Priority)
		case "company_name":
			a.CompanyName = v.(string)
		case "notes":
			if v == nil {
				a.Notes = nil
			} else {
				s := v.(string)
				a.Notes = &s
			}
		}
	}
	a.UpdatedAt = time.Now().UTC()
}

func (f *fakeStore) UpdateApplication(_ context.Context, ownerID, id string, patch map[string]interface{}) (*models.JobApplication, error) {
	f.mutations++
	i := f.find(ownerID, id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	f.applyPatch(i, patch)
	app := f.apps[i]
	return &app, nil
}

func (f *fakeStore) DeleteApplication(_ context.Context, ownerID, id string) error {
	f.mutations++
	i := f.find(ownerID, id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.apps = append(f.apps[:i], f.apps[i+1:]...)
	return nil
}

func (f *fakeStore) BulkUpdateApplications(_ context.Context, ownerID string, ids []string, patch map[string]interface{}) ([]models.JobApplication, error) {
	f.mutations++
	updated := []models.JobApplication{}
	for _, id := range ids {
		if i := f.find(ownerID, id); i >= 0 {
			f.applyPatch(i, patch)
			updated = append(updated, f.apps[i])
		}
	}
	return updated, nil
}

func (f *fakeStore) BulkDeleteApplications(_ context.Context, ownerID string, ids []string) (int, error) {
	f.mutations++
	n := 0
	for _, id := range ids {
		if i := f.find(ownerID, id); i >= 0 {
			f.apps = append(f.apps[:i], f.apps[i+1:]...)
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ListInterviews(_ context.Context, ownerID string, params query.InterviewParams) ([]models.Interview, error) {
	out := []models.Interview{}
	for _, iv := range f.interviews {
		if iv.UserID.String() != ownerID {
			continue
		}
		if params.UpcomingOnly && !iv.Upcoming(params.Now) {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

func (f *fakeStore) CreateInterview(_ context.Context, in models.NewInterview) (*models.Interview, error) {
	if f.find(in.UserID, in.JobApplicationID) < 0 {
		return nil, store.ErrNotFound
	}
	f.mutations++
	iv := models.Interview{
		ID:               uuid.New(),
		UserID:           uuid.MustParse(in.UserID),
		JobApplicationID: uuid.MustParse(in.JobApplicationID),
		InterviewType:    in.InterviewType,
		ScheduledDate:    in.ScheduledDate,
		DurationMinutes:  in.DurationMinutes,
		Status:           in.Status,
	}
	f.interviews = append(f.interviews, iv)
	return &iv, nil
}

func (f *fakeStore) ListActivity(_ context.Context, ownerID string, params query.ActivityParams) ([]models.ActivityLogEntry, error) {
	out := []models.ActivityLogEntry{}
	for _, e := range f.activity {
		if e.UserID.String() != ownerID {
			continue
		}
		if params.JobApplicationID != "" && (e.JobApplicationID == nil || e.JobApplicationID.String() != params.JobApplicationID) {
			continue
		}
		out = append(out, e)
	}
	if len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (f *fakeStore) CountApplications(_ context.Context, ownerID string, w filters.DateWindow) (int, error) {
	f.lastWindow = w
	n := 0
	for _, a := range f.apps {
		if a.UserID.String() == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ApplicationStatuses(_ context.Context, ownerID string, _ filters.DateWindow) ([]models.ApplicationStatus, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.ApplicationStatus
	for _, a := range f.apps {
		if a.UserID.String() == ownerID {
			out = append(out, a.Status)
		}
	}
	return out, nil
}

func (f *fakeStore) CountUpcomingInterviews(_ context.Context, ownerID string, now time.Time) (int, error) {
	n := 0
	for _, iv := range f.interviews {
		if iv.UserID.String() == ownerID && iv.Upcoming(now) {
			n++
		}
	}
	return n, nil
}
