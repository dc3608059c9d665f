package handlers

import (
	"errors"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		SendExpiringDigest(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

func (h *notificationHandler) SendExpiringDigest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	window, err := queryDays(c, "window", domain.DefaultDigestWindowDays)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	res, err := h.notificationService.SendExpiringDigest(c.Context(), domain.DigestRequest{Window: window}, userID)
	switch {
	case errors.Is(err, domain.ErrNothingToNotify):
		return presenters.SuccessResponse(c, domain.DigestResponse{Items: []domain.ShoppingEntry{}}, fiber.StatusOK, err.Error())
	case errors.Is(err, domain.ErrEmailNotificationsOff):
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSendDigest, err)
	case err != nil:
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
