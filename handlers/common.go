package handlers

import (
	"errors"
	"strconv"
	"time"

	"club-management-system/apperrors"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// renderError maps service errors to HTTP statuses: not-found 404,
// duplicates and version conflicts 409, validation and state errors 400.
func renderError(c *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsDuplicate(err), errors.Is(err, apperrors.ErrVersionConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrIllegalStatusTransition),
		errors.Is(err, apperrors.ErrCapacityExceeded),
		errors.Is(err, apperrors.ErrMemberNotEligible),
		errors.Is(err, apperrors.ErrInsufficientParticipants):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
