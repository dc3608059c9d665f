package domain

import (
	"errors"
)

const (
	DefaultSoonWindowDays = 7
	DefaultDaysAhead      = 7
	ReplenishWindowDays   = 7
	RankingSize           = 4
)

var (
	MessageSuccessGetAnalytics       = "analytics retrieved successfully"
	MessageSuccessGetWaste           = "waste report retrieved successfully"
	MessageSuccessGetRecommendations = "shopping recommendations retrieved successfully"

	MessageFailedGetAnalytics       = "analytics route failed"
	MessageFailedGetWaste           = "failed to build waste report"
	MessageFailedGetRecommendations = "failed to build shopping recommendations"

	ErrDateRangeRequired = errors.New("start and end dates are required")
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrNegativeWindow    = errors.New("window must be a non-negative number of days")
	ErrInvalidWindow     = errors.New("window must be a whole number of days")
)

type (
	AnalyticsRequest struct {
		Window int `query:"window" validate:"gte=0"`
	}

	WasteRequest struct {
		StartDate string `query:"startDate" validate:"required"`
		EndDate   string `query:"endDate" validate:"required"`
	}

	RecommendationRequest struct {
		DaysAhead int `query:"daysAhead" validate:"gte=0"`
	}

	AnalyticsResponse struct {
		TotalItems       int                 `json:"totalItems"`
		ExpiringSoon     int                 `json:"expiringSoon"`
		Expired          int                 `json:"expired"`
		NonExpiringCount int                 `json:"nonExpiringCount"`
		ByCategory       map[string][]string `json:"byCategory"`
		MostUsed         []ItemResponse      `json:"mostUsed"`
		LeastUsed        []ItemResponse      `json:"leastUsed"`
	}

	WasteResponse struct {
		TotalExpired   int                 `json:"totalExpired"`
		Breakdown      map[string][]string `json:"breakdown"`
		TotalTracked   int                 `json:"totalTracked"`
		WasteRatio     float64             `json:"wasteRatio"`
		TotalInventory int                 `json:"totalInventory"`
	}

	ShoppingEntry struct {
		Name                string `json:"name"`
		DaysUntilExpiration int    `json:"daysUntilExpiration"`
	}

	RecommendationResponse struct {
		MustBuy   []ShoppingEntry `json:"mustBuy"`
		Replenish []ShoppingEntry `json:"replenish"`
	}
)
