// Package store executes owner-scoped query plans against PostgREST and decodes the rows.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/models"
)

// ErrNotFound is returned when no row owned by the caller matched.
var ErrNotFound = errors.New("not found")

// Store talks to the backend with the service key, so every call takes the owner id
// explicitly and every plan filters on it.
type Store struct {
	client *postgrest.Client
	log    *logrus.Logger
	now    func() time.Time
}

func New(client *postgrest.Client, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{client: client, log: log, now: time.Now}
}

func (s *Store) selectInto(ctx context.Context, plan query.Plan, dest interface{}) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.log.WithField("plan", plan.String()).Debug("select")
	count, err := plan.Apply(s.client.From(plan.Table)).ExecuteTo(dest)
	if err != nil {
		return 0, fmt.Errorf("select %s: %w", plan.Table, err)
	}
	return int(count), nil
}

// countOnly runs a head request; there is no body to decode.
func (s *Store) countOnly(ctx context.Context, plan query.Plan) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.log.WithField("plan", plan.String()).Debug("count")
	_, count, err := plan.Apply(s.client.From(plan.Table)).Execute()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", plan.Table, err)
	}
	return int(count), nil
}

// ListApplications returns one page of applications and the total matching count.
func (s *Store) ListApplications(ctx context.Context, ownerID string, params query.ListParams) ([]models.JobApplication, int, error) {
	apps := []models.JobApplication{}
	count, err := s.selectInto(ctx, query.ApplicationList(ownerID, params), &apps)
	if err != nil {
		return nil, 0, err
	}
	return apps, count, nil
}

// GetApplication returns the application with its interviews and activity.
func (s *Store) GetApplication(ctx context.Context, ownerID, id string) (*models.JobApplication, error) {
	var apps []models.JobApplication
	if _, err := s.selectInto(ctx, query.ApplicationByID(ownerID, id), &apps); err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrNotFound
	}
	return &apps[0], nil
}

func (s *Store) CreateApplication(ctx context.Context, app models.NewJobApplication) (*models.JobApplication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.JobApplication
	_, err := s.client.From(query.TableApplications).
		Insert(app, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert application: empty representation")
	}
	s.log.WithFields(logrus.Fields{"user_id": app.UserID, "id": rows[0].ID}).Info("application created")
	return &rows[0], nil
}

// UpdateApplication applies patch to one owned application and touches updated_at.
func (s *Store) UpdateApplication(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.JobApplication, error) {
	rows, err := s.update(ctx, ownerID, []string{id}, patch)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// BulkUpdateApplications applies patch to the owned applications among ids in one statement.
func (s *Store) BulkUpdateApplications(ctx context.Context, ownerID string, ids []string, patch map[string]interface{}) ([]models.JobApplication, error) {
	return s.update(ctx, ownerID, ids, patch)
}

func (s *Store) update(ctx context.Context, ownerID string, ids []string, patch map[string]interface{}) ([]models.JobApplication, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values := make(map[string]interface{}, len(patch)+1)
	for k, v := range patch {
		values[k] = v
	}
	values["updated_at"] = s.now().UTC()

	plan := query.ApplicationsByIDs(ownerID, ids)
	s.log.WithField("plan", plan.String()).Debug("update")
	rows := []models.JobApplication{}
	fb := s.client.From(plan.Table).Update(values, "representation", "")
	if _, err := plan.ApplyFilters(fb).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("update applications: %w", err)
	}
	return rows, nil
}

func (s *Store) DeleteApplication(ctx context.Context, ownerID, id string) error {
	n, err := s.delete(ctx, ownerID, []string{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkDeleteApplications deletes the owned applications among ids and reports how many went.
func (s *Store) BulkDeleteApplications(ctx context.Context, ownerID string, ids []string) (int, error) {
	return s.delete(ctx, ownerID, ids)
}

func (s *Store) delete(ctx context.Context, ownerID string, ids []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	plan := query.ApplicationsByIDs(ownerID, ids)
	s.log.WithField("plan", plan.String()).Debug("delete")
	var rows []struct {
		ID string `json:"id"`
	}
	fb := s.client.From(plan.Table).Delete("representation", "")
	if _, err := plan.ApplyFilters(fb).ExecuteTo(&rows); err != nil {
		return 0, fmt.Errorf("delete applications: %w", err)
	}
	return len(rows), nil
}

// ListInterviews lists the caller's interviews, soonest first.
func (s *Store) ListInterviews(ctx context.Context, ownerID string, params query.InterviewParams) ([]models.Interview, error) {
	interviews := []models.Interview{}
	if _, err := s.selectInto(ctx, query.InterviewList(ownerID, params), &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// CreateInterview inserts an interview under an application the caller owns.
// ErrNotFound means the parent application is absent or belongs to someone else.
func (s *Store) CreateInterview(ctx context.Context, iv models.NewInterview) (*models.Interview, error) {
	parent := query.ApplicationsByIDs(iv.UserID, []string{iv.JobApplicationID})
	parent.Columns = "id"
	var owned []json.RawMessage
	if _, err := s.selectInto(ctx, parent, &owned); err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, ErrNotFound
	}

	var rows []models.Interview
	_, err := s.client.From(query.TableInterviews).
		Insert(iv, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert interview: empty representation")
	}
	return &rows[0], nil
}

// ListActivity returns the newest activity entries first.
func (s *Store) ListActivity(ctx context.Context, ownerID string, params query.ActivityParams) ([]models.ActivityLogEntry, error) {
	entries := []models.ActivityLogEntry{}
	if _, err := s.selectInto(ctx, query.ActivityList(ownerID, params), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountApplications counts the caller's applications in w.
func (s *Store) CountApplications(ctx context.Context, ownerID string, w filters.DateWindow) (int, error) {
	return s.countOnly(ctx, query.ApplicationCount(ownerID, w))
}

// ApplicationStatuses returns the status of every application in w.
func (s *Store) ApplicationStatuses(ctx context.Context, ownerID string, w filters.DateWindow) ([]models.ApplicationStatus, error) {
	var rows []struct {
		Status models.ApplicationStatus `json:"status"`
	}
	if _, err := s.selectInto(ctx, query.ApplicationStatuses(ownerID, w), &rows); err != nil {
		return nil, err
	}
	statuses := make([]models.ApplicationStatus, len(rows))
	for i, r := range rows {
		statuses[i] = r.Status
	}
	return statuses, nil
}

// CountUpcomingInterviews counts scheduled interviews at or after now.
func (s *Store) CountUpcomingInterviews(ctx context.Context, ownerID string, now time.Time) (int, error) {
	return s.countOnly(ctx, query.UpcomingInterviewCount(ownerID, now))
}

// Ping issues a cheap head request used by readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := s.client.From(query.TableApplications).Select("id", "", true).Limit(1, "").Execute()
	if err != nil {
		return fmt.Errorf("postgrest ping: %w", err)
	}
	return nil
}
