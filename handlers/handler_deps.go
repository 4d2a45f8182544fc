package handlers

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/internal/stats"
	"jobtracker/api-gateway/internal/store"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

// Store defines the backend operations handlers expect. Every method is scoped by the
// caller's user id; *store.Store is the production implementation.
type Store interface {
	stats.Source

	ListApplications(ctx context.Context, ownerID string, params query.ListParams) ([]models.JobApplication, int, error)
	GetApplication(ctx context.Context, ownerID, id string) (*models.JobApplication, error)
	CreateApplication(ctx context.Context, app models.NewJobApplication) (*models.JobApplication, error)
	UpdateApplication(ctx context.Context, ownerID, id string, patch map[string]interface{}) (*models.JobApplication, error)
	DeleteApplication(ctx context.Context, ownerID, id string) error
	BulkUpdateApplications(ctx context.Context, ownerID string, ids []string, patch map[string]interface{}) ([]models.JobApplication, error)
	BulkDeleteApplications(ctx context.Context, ownerID string, ids []string) (int, error)

	ListInterviews(ctx context.Context, ownerID string, params query.InterviewParams) ([]models.Interview, error)
	CreateInterview(ctx context.Context, iv models.NewInterview) (*models.Interview, error)

	ListActivity(ctx context.Context, ownerID string, params query.ActivityParams) ([]models.ActivityLogEntry, error)
}

var _ Store = (*store.Store)(nil)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger *logrus.Logger
	DB     Store
	Now    func() time.Time
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, db Store) *ApplicationHandler {
	return &ApplicationHandler{
		Logger: logger,
		DB:     db,
		Now:    time.Now,
	}
}

// Register mounts the authenticated API routes. The bulk routes go first so "bulk"
// is not captured as an :id.
func (h *ApplicationHandler) Register(r fiber.Router) {
	r.Get("/applications", h.ListApplications)
	r.Post("/applications", h.CreateApplication)
	r.Put("/applications/bulk", h.BulkUpdateApplications)
	r.Delete("/applications/bulk", h.BulkDeleteApplications)
	r.Get("/applications/:id", h.GetApplication)
	r.Put("/applications/:id", h.UpdateApplication)
	r.Delete("/applications/:id", h.DeleteApplication)
	r.Get("/applications/:id/activity", h.GetApplicationActivity)

	r.Get("/interviews", h.ListInterviews)
	r.Post("/interviews", h.CreateInterview)

	r.Get("/activity-log", h.ListActivity)
	r.Get("/dashboard/stats", h.GetDashboardStats)
}

var validate = validator.New()

// ErrorResponse defines a common structure for error responses.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is returned by mutations that have no row to echo back.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *ApplicationHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// respondStoreError maps store failures onto the API's status codes.
func (h *ApplicationHandler) respondStoreError(c *fiber.Ctx, err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Job application not found")
	}
	h.Logger.WithError(err).Errorf("Error %s", action)
	return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
}

// parseID reads a uuid path parameter.
func parseID(c *fiber.Ctx, name string) (string, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// queryValues copies the request's query string, keeping repeated keys.
func queryValues(c *fiber.Ctx) url.Values {
	v := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		v.Add(string(key), string(value))
	})
	return v
}
