package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// RespondWithMessage sends a success response that carries only a message.
func RespondWithMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
	})
}

// Page is the envelope of a paginated list.
type Page struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Count      int         `json:"count"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
}

// RespondWithPage sends one page of results with its pagination metadata.
func RespondWithPage(c *fiber.Ctx, data interface{}, count, page, limit, totalPages int) error {
	return c.Status(fiber.StatusOK).JSON(Page{
		Status:     "success",
		Data:       data,
		Count:      count,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var errs []string
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			errs = append(errs, err.Error())
		}
		return errs
	}
	for _, fe := range verrs {
		element := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, fe.Param())
		}
		errs = append(errs, element)
	}
	return errs
}

// SanitizeInput trims surrounding whitespace from free-text input.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}

// SanitizeOptional trims an optional field and drops it when nothing is left.
func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}
	trimmed := SanitizeInput(*input)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
