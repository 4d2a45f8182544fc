package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

type ActivityResponse struct {
	Status string                    `json:"status"`
	Data   []models.ActivityLogEntry `json:"data"`
}

// ListActivity godoc
// @Summary Recent activity
// @Description Returns the caller's activity log, newest first. Entries of deleted applications keep their company and position snapshots.
// @Tags activity
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} ActivityResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-log [get]
func (h *ApplicationHandler) ListActivity(c *fiber.Ctx) error {
	params := query.ParseActivityParams(queryValues(c))

	entries, err := h.DB.ListActivity(c.UserContext(), middleware.UserID(c), params)
	if err != nil {
		return h.respondStoreError(c, err, "listing activity log")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, entries)
}
