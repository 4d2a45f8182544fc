package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
)

var (
	alice = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	bob   = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
	today = time.Date(2024, 4, 10, 15, 30, 0, 0, time.UTC)
)

// tokens maps bearer tokens to users.
type tokens map[string]string

func (t tokens) Resolve(_ context.Context, token string) (string, error) {
	if id, ok := t[token]; ok {
		return id, nil
	}
	return "", middleware.ErrInvalidToken
}

func newTestApp(db *fakeStore) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	h := NewApplicationHandler(log, db)
	h.Now = func() time.Time { return today }

	app := fiber.New()
	api := app.Group("/api/v1", middleware.RequireIdentity(tokens{"alice": alice.String(), "bob": bob.String()}))
	h.Register(api)
	return app
}

type result struct {
	Status int
	Body   map[string]interface{}
}

func do(t *testing.T, app *fiber.App, method, target, token string, body interface{}) result {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := result{Status: resp.StatusCode}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out.Body))
	return out
}

func seed(owner uuid.UUID, company string, status models.ApplicationStatus) models.JobApplication {
	return models.JobApplication{
		ID:              uuid.New(),
		UserID:          owner,
		CompanyName:     company,
		PositionTitle:   "Engineer",
		Status:          status,
		Priority:        models.PriorityMedium,
		EmploymentType:  models.EmploymentFullTime,
		ApplicationDate: "2024-04-01",
	}
}

func TestRoutesRequireIdentity(t *testing.T) {
	app := newTestApp(&fakeStore{})
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/applications"},
		{http.MethodPost, "/api/v1/applications"},
		{http.MethodDelete, "/api/v1/applications/bulk"},
		{http.MethodGet, "/api/v1/dashboard/stats"},
		{http.MethodGet, "/api/v1/activity-log"},
	} {
		res := do(t, app, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.Status, route.path)
		assert.Equal(t, "error", res.Body["status"])

		res = do(t, app, route.method, route.path, "forged", nil)
		assert.Equal(t, http.StatusUnauthorized, res.Status, route.path)
	}
}

func TestListApplicationsEnvelope(t *testing.T) {
	db := &fakeStore{apps: []models.JobApplication{
		seed(alice, "Acme", models.StatusApplied),
		seed(alice, "Globex", models.StatusApplied),
		seed(alice, "Initech", models.StatusApplied),
		seed(bob, "Hooli", models.StatusApplied),
	}}
	app := newTestApp(db)

	res := do(t, app, http.MethodGet, "/api/v1/applications?page=2&limit=2&status=Applied,Offer", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)

	assert.Equal(t, "success", res.Body["status"])
	assert.EqualValues(t, 3, res.Body["count"])
	assert.EqualValues(t, 2, res.Body["page"])
	assert.EqualValues(t, 2, res.Body["limit"])
	assert.EqualValues(t, 2, res.Body["total_pages"])
	data := res.Body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Initech", data[0].(map[string]interface{})["company_name"])

	assert.Equal(t, []models.ApplicationStatus{models.StatusApplied, models.StatusOffer}, db.lastList.Filters.Status)
}

func TestListApplicationsEmptyPage(t *testing.T) {
	res := do(t, newTestApp(&fakeStore{}), http.MethodGet, "/api/v1/applications", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, []interface{}{}, res.Body["data"])
	assert.EqualValues(t, 0, res.Body["total_pages"])
	assert.EqualValues(t, 10, res.Body["limit"])
}

func TestCreateApplicationAppliesDefaults(t *testing.T) {
	db := &fakeStore{}
	app := newTestApp(db)

	res := do(t, app, http.MethodPost, "/api/v1/applications", "alice", map[string]string{
		"company_name":   "  Acme  ",
		"position_title": "Engineer",
	})
	require.Equal(t, http.StatusCreated, res.Status)

	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "Acme", data["company_name"])
	assert.Equal(t, "Applied", data["status"])
	assert.Equal(t, "Medium", data["priority"])
	assert.Equal(t, "Full-time", data["employment_type"])
	assert.Equal(t, "2024-04-10", data["application_date"])
	assert.Equal(t, alice.String(), data["user_id"])
}

func TestCreateApplicationValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"missing position": {"company_name": "Acme"},
		"blank company":    {"company_name": "   ", "position_title": "Engineer"},
		"unknown status":   {"company_name": "Acme", "position_title": "Engineer", "status": "Ghosted"},
		"bad date":         {"company_name": "Acme", "position_title": "Engineer", "application_date": "04/10/2024"},
		"bad email":        {"company_name": "Acme", "position_title": "Engineer", "contact_email": "nope"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			db := &fakeStore{}
			res := do(t, newTestApp(db), http.MethodPost, "/api/v1/applications", "alice", body)
			assert.Equal(t, http.StatusBadRequest, res.Status)
			assert.Zero(t, db.mutations)
		})
	}
}

func TestGetApplication(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusApplied)
	app := newTestApp(&fakeStore{apps: []models.JobApplication{mine}})

	res := do(t, app, http.MethodGet, "/api/v1/applications/"+mine.ID.String(), "alice", nil)
	assert.Equal(t, http.StatusOK, res.Status)

	res = do(t, app, http.MethodGet, "/api/v1/applications/"+mine.ID.String(), "bob", nil)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = do(t, app, http.MethodGet, "/api/v1/applications/not-a-uuid", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestUpdateApplication(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusApplied)
	db := &fakeStore{apps: []models.JobApplication{mine}}
	app := newTestApp(db)

	res := do(t, app, http.MethodPut, "/api/v1/applications/"+mine.ID.String(), "alice", map[string]interface{}{
		"status":     "Interview",
		"id":         uuid.NewString(),
		"user_id":    bob.String(),
		"created_at": "2020-01-01T00:00:00Z",
		"notes":      "recruiter called",
	})
	require.Equal(t, http.StatusOK, res.Status)

	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "Interview", data["status"])
	assert.Equal(t, "recruiter called", data["notes"])
	assert.Equal(t, mine.ID.String(), data["id"])
	assert.Equal(t, alice.String(), data["user_id"])
}

func TestUpdateApplicationRejectsBadPatches(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusApplied)
	cases := map[string]map[string]interface{}{
		"unknown field":   {"salary": 100000},
		"bad enum":        {"priority": "Urgent"},
		"wrong type":      {"status": 3},
		"null required":   {"company_name": nil},
		"blank required":  {"position_title": "  "},
		"bad date format": {"application_date": "yesterday"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			db := &fakeStore{apps: []models.JobApplication{mine}}
			res := do(t, newTestApp(db), http.MethodPut, "/api/v1/applications/"+mine.ID.String(), "alice", body)
			assert.Equal(t, http.StatusBadRequest, res.Status)
			assert.Zero(t, db.mutations)
		})
	}
}

func TestUpdateApplicationClearsOptionalField(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusApplied)
	notes := "old"
	mine.Notes = &notes
	db := &fakeStore{apps: []models.JobApplication{mine}}

	res := do(t, newTestApp(db), http.MethodPut, "/api/v1/applications/"+mine.ID.String(), "alice", map[string]interface{}{"notes": nil})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Nil(t, db.apps[0].Notes)
}

func TestOwnerIsolation(t *testing.T) {
	hers := seed(alice, "Acme", models.StatusApplied)
	db := &fakeStore{apps: []models.JobApplication{hers}}
	app := newTestApp(db)
	path := "/api/v1/applications/" + hers.ID.String()

	res := do(t, app, http.MethodGet, "/api/v1/applications", "bob", nil)
	assert.EqualValues(t, 0, res.Body["count"])

	res = do(t, app, http.MethodPut, path, "bob", map[string]string{"status": "Rejected"})
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = do(t, app, http.MethodDelete, path, "bob", nil)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = do(t, app, http.MethodDelete, "/api/v1/applications/bulk", "bob", map[string]interface{}{"ids": []string{hers.ID.String()}})
	assert.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 0, res.Body["count"])

	require.Len(t, db.apps, 1)
	assert.Equal(t, models.StatusApplied, db.apps[0].Status)
}

func TestDeleteApplication(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusApplied)
	db := &fakeStore{apps: []models.JobApplication{mine}}
	app := newTestApp(db)

	res := do(t, app, http.MethodDelete, "/api/v1/applications/"+mine.ID.String(), "alice", nil)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Job application deleted successfully", res.Body["message"])
	assert.Empty(t, db.apps)

	res = do(t, app, http.MethodDelete, "/api/v1/applications/"+mine.ID.String(), "alice", nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestBulkRejectsEmptyIDs(t *testing.T) {
	db := &fakeStore{apps: []models.JobApplication{seed(alice, "Acme", models.StatusApplied)}}
	app := newTestApp(db)

	for _, body := range []interface{}{
		map[string]interface{}{"ids": []string{}, "updates": map[string]string{"status": "Rejected"}},
		map[string]interface{}{"updates": map[string]string{"status": "Rejected"}},
		map[string]interface{}{"ids": []string{"nope"}, "updates": map[string]string{"status": "Rejected"}},
	} {
		res := do(t, app, http.MethodPut, "/api/v1/applications/bulk", "alice", body)
		assert.Equal(t, http.StatusBadRequest, res.Status)
	}
	res := do(t, app, http.MethodDelete, "/api/v1/applications/bulk", "alice", map[string]interface{}{"ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, res.Status)

	assert.Zero(t, db.mutations)
	assert.Len(t, db.apps, 1)
}

func TestBulkUpdateAndDelete(t *testing.T) {
	a := seed(alice, "Acme", models.StatusApplied)
	b := seed(alice, "Globex", models.StatusApplied)
	c := seed(bob, "Hooli", models.StatusApplied)
	db := &fakeStore{apps: []models.JobApplication{a, b, c}}
	app := newTestApp(db)
	ids := []string{a.ID.String(), b.ID.String(), c.ID.String()}

	res := do(t, app, http.MethodPut, "/api/v1/applications/bulk", "alice", map[string]interface{}{
		"ids":     ids,
		"updates": map[string]string{"status": "Rejected"},
	})
	require.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 2, res.Body["count"])
	assert.Equal(t, "Updated 2 applications", res.Body["message"])
	assert.Len(t, res.Body["data"], 2)
	assert.Equal(t, models.StatusApplied, db.apps[2].Status)

	res = do(t, app, http.MethodDelete, "/api/v1/applications/bulk", "alice", map[string]interface{}{"ids": ids})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Deleted 2 applications", res.Body["message"])
	require.Len(t, db.apps, 1)
	assert.Equal(t, "Hooli", db.apps[0].CompanyName)
}

func TestDashboardStats(t *testing.T) {
	var apps []models.JobApplication
	add := func(s models.ApplicationStatus, n int) {
		for i := 0; i < n; i++ {
			apps = append(apps, seed(alice, "Co", s))
		}
	}
	add(models.StatusApplied, 2)
	add(models.StatusInterview, 3)
	add(models.StatusOffer, 1)
	add(models.StatusRejected, 4)
	db := &fakeStore{
		apps: apps,
		interviews: []models.Interview{
			{ID: uuid.New(), UserID: alice, Status: models.InterviewScheduled, ScheduledDate: today.Add(time.Hour)},
			{ID: uuid.New(), UserID: alice, Status: models.InterviewScheduled, ScheduledDate: today.Add(-time.Hour)},
		},
	}

	res := do(t, newTestApp(db), http.MethodGet, "/api/v1/dashboard/stats?date_from=2024-01-01", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)

	data := res.Body["data"].(map[string]interface{})
	assert.EqualValues(t, 10, data["total_applications"])
	assert.EqualValues(t, 3, data["interviews"])
	assert.EqualValues(t, 1, data["upcoming_interviews"])
	assert.EqualValues(t, 80, data["response_rate"])
	assert.Equal(t, "2024-01-01", db.lastWindow.From)
}

func TestBackendFailureIs500(t *testing.T) {
	db := &fakeStore{failWith: errors.New("select job_applications: (42P01) relation does not exist")}
	app := newTestApp(db)

	res := do(t, app, http.MethodGet, "/api/v1/applications", "alice", nil)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Contains(t, res.Body["message"], "relation does not exist")

	res = do(t, app, http.MethodGet, "/api/v1/dashboard/stats", "alice", nil)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestCreateInterview(t *testing.T) {
	mine := seed(alice, "Acme", models.StatusInterview)
	db := &fakeStore{apps: []models.JobApplication{mine}}
	app := newTestApp(db)
	body := map[string]interface{}{
		"job_application_id": mine.ID.String(),
		"interview_type":     "Technical",
		"scheduled_date":     "2024-04-12T09:00:00+02:00",
	}

	res := do(t, app, http.MethodPost, "/api/v1/interviews", "alice", body)
	require.Equal(t, http.StatusCreated, res.Status)
	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "Scheduled", data["status"])
	assert.EqualValues(t, 60, data["duration_minutes"])
	assert.Equal(t, "2024-04-12T07:00:00Z", data["scheduled_date"])

	res = do(t, app, http.MethodPost, "/api/v1/interviews", "bob", body)
	assert.Equal(t, http.StatusNotFound, res.Status)

	body["interview_type"] = "Coffee"
	res = do(t, app, http.MethodPost, "/api/v1/interviews", "alice", body)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestListInterviewsUpcomingOnly(t *testing.T) {
	db := &fakeStore{interviews: []models.Interview{
		{ID: uuid.New(), UserID: alice, Status: models.InterviewScheduled, ScheduledDate: today.Add(24 * time.Hour)},
		{ID: uuid.New(), UserID: alice, Status: models.InterviewCompleted, ScheduledDate: today.Add(48 * time.Hour)},
		{ID: uuid.New(), UserID: bob, Status: models.InterviewScheduled, ScheduledDate: today.Add(24 * time.Hour)},
	}}
	app := newTestApp(db)

	res := do(t, app, http.MethodGet, "/api/v1/interviews?upcoming_only=true", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["data"], 1)

	res = do(t, app, http.MethodGet, "/api/v1/interviews?job_application_id=zzz", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestActivityEndpoints(t *testing.T) {
	appID := uuid.New()
	other := uuid.New()
	db := &fakeStore{activity: []models.ActivityLogEntry{
		{ID: uuid.New(), UserID: alice, JobApplicationID: &appID, ActionType: models.ActivityApplicationCreated},
		{ID: uuid.New(), UserID: alice, JobApplicationID: &other, ActionType: models.ActivityStatusChange},
		{ID: uuid.New(), UserID: alice, ActionType: models.ActivityNotesUpdate},
		{ID: uuid.New(), UserID: bob, ActionType: models.ActivityNotesUpdate},
	}}
	app := newTestApp(db)

	res := do(t, app, http.MethodGet, "/api/v1/activity-log?limit=2", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["data"], 2)

	res = do(t, app, http.MethodGet, "/api/v1/applications/"+appID.String()+"/activity", "alice", nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Body["data"], 1)
}
