package handlers

import (
	"github.com/gofiber/fiber/v2"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/stats"
	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

type DashboardStatsResponse struct {
	Status string                `json:"status"`
	Data   models.DashboardStats `json:"data"`
}

// GetDashboardStats godoc
// @Summary Dashboard statistics
// @Description Counts applications by status within an optional application date window, plus upcoming interviews and the response rate.
// @Tags dashboard
// @Produce json
// @Param date_from query string false "Earliest application date (YYYY-MM-DD)"
// @Param date_to query string false "Latest application date (YYYY-MM-DD)"
// @Success 200 {object} DashboardStatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *ApplicationHandler) GetDashboardStats(c *fiber.Ctx) error {
	window := filters.Decode(queryValues(c)).DateWindow()

	s, err := stats.Dashboard(c.UserContext(), h.DB, middleware.UserID(c), window, h.now())
	if err != nil {
		return h.respondStoreError(c, err, "computing dashboard stats")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, s)
}
