package report

import (
	"context"
	"fmt"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// ItemLister is the slice of the item repository reports read from.
	ItemLister interface {
		GetItemsByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error)
	}

	ReportService interface {
		GetAnalytics(ctx context.Context, req domain.AnalyticsRequest, userID string) (domain.AnalyticsResponse, error)
		GetWasteReport(ctx context.Context, req domain.WasteRequest, userID string) (domain.WasteResponse, error)
		GetRecommendations(ctx context.Context, req domain.RecommendationRequest, userID string) (domain.RecommendationResponse, error)
	}

	reportService struct {
		items ItemLister
		now   func() time.Time
	}
)

func NewReportService(items ItemLister) ReportService {
	return NewReportServiceWithClock(items, time.Now)
}

func NewReportServiceWithClock(items ItemLister, now func() time.Time) ReportService {
	return &reportService{items: items, now: now}
}

func (s *reportService) GetAnalytics(ctx context.Context, req domain.AnalyticsRequest, userID string) (domain.AnalyticsResponse, error) {
	if req.Window < 0 {
		return domain.AnalyticsResponse{}, domain.ErrNegativeWindow
	}
	items, err := s.items.GetItemsByOwner(ctx, userID)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	res, anomalies := Analytics(items, s.now(), req.Window)
	logAnomalies("analytics", userID, anomalies)
	return res, nil
}

func (s *reportService) GetWasteReport(ctx context.Context, req domain.WasteRequest, userID string) (domain.WasteResponse, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return domain.WasteResponse{}, domain.ErrDateRangeRequired
	}
	start, _, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return domain.WasteResponse{}, fmt.Errorf("startDate: %w", err)
	}
	end, endDateOnly, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return domain.WasteResponse{}, fmt.Errorf("endDate: %w", err)
	}
	if endDateOnly {
		end = utils.EndOfDay(end)
	}
	if end.Before(start) {
		return domain.WasteResponse{}, domain.ErrInvalidDateRange
	}

	items, err := s.items.GetItemsByOwner(ctx, userID)
	if err != nil {
		return domain.WasteResponse{}, err
	}

	res, anomalies, err := Waste(items, start, end)
	if err != nil {
		return domain.WasteResponse{}, err
	}
	logAnomalies("waste", userID, anomalies)
	return res, nil
}

func (s *reportService) GetRecommendations(ctx context.Context, req domain.RecommendationRequest, userID string) (domain.RecommendationResponse, error) {
	if req.DaysAhead < 0 {
		return domain.RecommendationResponse{}, domain.ErrNegativeWindow
	}
	items, err := s.items.GetItemsByOwner(ctx, userID)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}
	return Recommendations(items, s.now(), req.DaysAhead)
}

func logAnomalies(report, userID string, anomalies []Anomaly) {
	for _, a := range anomalies {
		log.Warnf("%s: skipped item %s (%q) for user %s: %s", report, a.ItemID, a.Name, userID, a.Reason)
	}
}
