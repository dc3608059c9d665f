package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"Smart-Fridge-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var badInput = []error{
	domain.ErrInvalidDate,
	domain.ErrDateRangeRequired,
	domain.ErrInvalidDateRange,
	domain.ErrNegativeWindow,
	domain.ErrInvalidWindow,
	domain.ErrExpirationRequired,
	domain.ErrNonExpiringWithDate,
	domain.ErrInvalidExpirationDate,
	domain.ErrInvalidPurchaseDate,
	domain.ErrInvalidImageFormat,
	domain.ErrInvalidCategory,
	domain.ErrInvalidStorageLocation,
	domain.ErrInvalidRecipeID,
	domain.ErrInvalidInventory,
	domain.ErrUnsupportedField,
	domain.ErrInvalidFieldValue,
}

// statusFor maps service errors onto HTTP status codes. Errors that are not
// recognized are logged and reported as 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrStarterTemplateImmutable):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return fiber.StatusServiceUnavailable
	case isBadInput(err):
		return fiber.StatusBadRequest
	default:
		log.Errorf("unhandled service error: %v", err)
		return fiber.StatusInternalServerError
	}
}

func isBadInput(err error) bool {
	for _, target := range badInput {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// queryDays reads a non-negative day count from the query string.
func queryDays(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidWindow, key, raw)
	}
	if n < 0 {
		return 0, domain.ErrNegativeWindow
	}
	return n, nil
}

func optionalUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
