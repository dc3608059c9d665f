package handlers

import (
	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/presenters"
	"Smart-Fridge-Backend/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		GetAnalytics(c *fiber.Ctx) error
		GetWasteReport(c *fiber.Ctx) error
		GetRecommendations(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

func (h *reportHandler) GetAnalytics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	window, err := queryDays(c, "window", domain.DefaultSoonWindowDays)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalytics, err)
	}

	res, err := h.reportService.GetAnalytics(c.Context(), domain.AnalyticsRequest{Window: window}, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}

func (h *reportHandler) GetWasteReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := domain.WasteRequest{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	res, err := h.reportService.GetWasteReport(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetWaste, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWaste)
}

func (h *reportHandler) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	daysAhead, err := queryDays(c, "daysAhead", domain.DefaultDaysAhead)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	res, err := h.reportService.GetRecommendations(c.Context(), domain.RecommendationRequest{DaysAhead: daysAhead}, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
