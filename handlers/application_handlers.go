package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

// ApplicationResponse wraps a single job application.
type ApplicationResponse struct {
	Status string                `json:"status"`
	Data   models.JobApplication `json:"data"`
}

// ApplicationPageResponse is one page of job applications.
type ApplicationPageResponse struct {
	Status     string                  `json:"status"`
	Data       []models.JobApplication `json:"data"`
	Count      int                     `json:"count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// ListApplications godoc
// @Summary List job applications
// @Description Returns one page of the caller's applications, filtered and sorted.
// @Tags applications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Comma-separated statuses"
// @Param priority query string false "Comma-separated priorities"
// @Param employment_type query string false "Comma-separated employment types"
// @Param company_name query string false "Company name substring"
// @Param search query string false "Free-text search"
// @Param date_from query string false "Earliest application date (YYYY-MM-DD)"
// @Param date_to query string false "Latest application date (YYYY-MM-DD)"
// @Param sort_field query string false "Sort column" default(created_at)
// @Param sort_direction query string false "asc or desc" default(desc)
// @Param include_interviews query bool false "Embed interviews"
// @Param include_activity query bool false "Embed activity log"
// @Success 200 {object} ApplicationPageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	ownerID := middleware.UserID(c)
	params := query.ParseListParams(queryValues(c))

	apps, count, err := h.DB.ListApplications(c.UserContext(), ownerID, params)
	if err != nil {
		return h.respondStoreError(c, err, "listing job applications")
	}

	h.Logger.WithFields(logrus.Fields{"user_id": ownerID, "count": count, "page": params.Page}).
		Debug("Listed job applications")
	return utils.RespondWithPage(c, apps, count, params.Page, params.Limit, query.TotalPages(count, params.Limit))
}

// GetApplication godoc
// @Summary Get a job application
// @Description Returns one application with its interviews and activity log.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid application ID format")
	}

	app, err := h.DB.GetApplication(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return h.respondStoreError(c, err, "fetching job application "+id)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, app)
}

// CreateApplication godoc
// @Summary Create a job application
// @Description Creates an application owned by the caller. Status defaults to Applied, priority to Medium, employment type to Full-time and the application date to today.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body CreateApplicationRequest true "Application to create"
// @Success 201 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	payload := new(CreateApplicationRequest)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Errorf("Error parsing application payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
	}
	payload.sanitize()
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	ownerID := middleware.UserID(c)
	app, err := h.DB.CreateApplication(c.UserContext(), payload.toInsert(ownerID, h.now()))
	if err != nil {
		return h.respondStoreError(c, err, "creating job application")
	}

	h.Logger.Infof("Job application %s created for user %s", app.ID, ownerID)
	return utils.RespondWithJSON(c, fiber.StatusCreated, app)
}

// UpdateApplication godoc
// @Summary Update a job application
// @Description Applies a partial update. id, user_id, created_at and updated_at are ignored; unknown fields are rejected.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param application body ApplicationPatch true "Fields to change"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid application ID format")
	}
	patch, err := decodeApplicationPatch(c.Body())
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid update: "+err.Error())
	}

	app, err := h.DB.UpdateApplication(c.UserContext(), middleware.UserID(c), id, patch)
	if err != nil {
		return h.respondStoreError(c, err, "updating job application "+id)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Delete a job application
// @Description Deletes the application and its interviews. Activity entries keep their snapshots.
// @Tags applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid application ID format")
	}

	ownerID := middleware.UserID(c)
	if err := h.DB.DeleteApplication(c.UserContext(), ownerID, id); err != nil {
		return h.respondStoreError(c, err, "deleting job application "+id)
	}

	h.Logger.Infof("Job application %s deleted by user %s", id, ownerID)
	return utils.RespondWithMessage(c, fiber.StatusOK, "Job application deleted successfully")
}

// GetApplicationActivity godoc
// @Summary Activity of one application
// @Tags activity
// @Produce json
// @Param id path string true "Application ID"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{id}/activity [get]
func (h *ApplicationHandler) GetApplicationActivity(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid application ID format")
	}
	params := query.ParseActivityParams(queryValues(c))
	params.JobApplicationID = id

	entries, err := h.DB.ListActivity(c.UserContext(), middleware.UserID(c), params)
	if err != nil {
		return h.respondStoreError(c, err, "fetching activity for application "+id)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, entries)
}
