package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/internal/store"
	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

type InterviewListResponse struct {
	Status string             `json:"status"`
	Data   []models.Interview `json:"data"`
}

type InterviewResponse struct {
	Status string           `json:"status"`
	Data   models.Interview `json:"data"`
}

// ListInterviews godoc
// @Summary List interviews
// @Description Lists the caller's interviews soonest first, each with its application's company and position.
// @Tags interviews
// @Produce json
// @Param job_application_id query string false "Only interviews of this application"
// @Param upcoming_only query bool false "Only scheduled interviews from now on"
// @Success 200 {object} InterviewListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /interviews [get]
func (h *ApplicationHandler) ListInterviews(c *fiber.Ctx) error {
	params := query.ParseInterviewParams(queryValues(c), h.now())
	if params.JobApplicationID != "" {
		if _, err := uuid.Parse(params.JobApplicationID); err != nil {
			return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid job_application_id format")
		}
	}

	interviews, err := h.DB.ListInterviews(c.UserContext(), middleware.UserID(c), params)
	if err != nil {
		return h.respondStoreError(c, err, "listing interviews")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, interviews)
}

// CreateInterview godoc
// @Summary Schedule an interview
// @Description Creates an interview under one of the caller's applications.
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body CreateInterviewRequest true "Interview to create"
// @Success 201 {object} InterviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /interviews [post]
func (h *ApplicationHandler) CreateInterview(c *fiber.Ctx) error {
	payload := new(CreateInterviewRequest)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Errorf("Error parsing interview payload: %v", err)
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
	}
	payload.sanitize()
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(utils.FormatValidationErrors(err), ", "))
	}

	ownerID := middleware.UserID(c)
	iv, err := h.DB.CreateInterview(c.UserContext(), payload.toInsert(ownerID))
	if errors.Is(err, store.ErrNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Job application not found")
	}
	if err != nil {
		return h.respondStoreError(c, err, "creating interview")
	}

	h.Logger.Infof("Interview %s scheduled for application %s", iv.ID, iv.JobApplicationID)
	return utils.RespondWithJSON(c, fiber.StatusCreated, iv)
}
