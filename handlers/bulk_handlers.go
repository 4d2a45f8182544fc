package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobtracker/api-gateway/middleware"
	"jobtracker/api-gateway/models"
	"jobtracker/api-gateway/utils"
)

// BulkUpdateResponse carries the rows that were changed.
type BulkUpdateResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Data    []models.JobApplication `json:"data"`
}

// BulkDeleteResponse reports how many rows were removed.
type BulkDeleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// normalizeIDs rejects an empty list and any malformed id before the backend is called.
func normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids must be a non-empty array")
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid application ID format: %q", raw)
		}
		if !seen[id.String()] {
			seen[id.String()] = true
			out = append(out, id.String())
		}
	}
	return out, nil
}

// BulkUpdateApplications godoc
// @Summary Update many job applications
// @Description Applies the same partial update to every listed application the caller owns, in one statement.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body BulkUpdateRequest true "IDs and fields to change"
// @Success 200 {object} BulkUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/bulk [put]
func (h *ApplicationHandler) BulkUpdateApplications(c *fiber.Ctx) error {
	payload := new(BulkUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
	}
	ids, err := normalizeIDs(payload.IDs)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}
	patch, err := decodeApplicationPatch(payload.Updates)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid updates: "+err.Error())
	}

	ownerID := middleware.UserID(c)
	apps, err := h.DB.BulkUpdateApplications(c.UserContext(), ownerID, ids, patch)
	if err != nil {
		return h.respondStoreError(c, err, "bulk updating job applications")
	}

	h.Logger.Infof("Bulk updated %d job applications for user %s", len(apps), ownerID)
	return c.Status(fiber.StatusOK).JSON(BulkUpdateResponse{
		Status:  "success",
		Message: fmt.Sprintf("Updated %d applications", len(apps)),
		Count:   len(apps),
		Data:    apps,
	})
}

// BulkDeleteApplications godoc
// @Summary Delete many job applications
// @Description Deletes every listed application the caller owns, in one statement.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} BulkDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/bulk [delete]
func (h *ApplicationHandler) BulkDeleteApplications(c *fiber.Ctx) error {
	payload := new(BulkDeleteRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request payload: %v", err))
	}
	ids, err := normalizeIDs(payload.IDs)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	ownerID := middleware.UserID(c)
	n, err := h.DB.BulkDeleteApplications(c.UserContext(), ownerID, ids)
	if err != nil {
		return h.respondStoreError(c, err, "bulk deleting job applications")
	}

	h.Logger.Infof("Bulk deleted %d job applications for user %s", n, ownerID)
	return c.Status(fiber.StatusOK).JSON(BulkDeleteResponse{
		Status:  "success",
		Message: fmt.Sprintf("Deleted %d applications", n),
		Count:   n,
	})
}
