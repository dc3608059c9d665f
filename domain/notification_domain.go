package domain

import (
	"errors"
)

const DefaultDigestWindowDays = 3

var (
	MessageSuccessSendDigest = "expiring items digest sent"
	MessageFailedSendDigest  = "failed to send expiring items digest"

	ErrEmailNotificationsOff = errors.New("email notifications are disabled for this account")
	ErrNothingToNotify       = errors.New("no items expiring within the window")
)

type (
	DigestRequest struct {
		Window int `query:"window" validate:"gte=0"`
	}

	DigestResponse struct {
		Recipient string          `json:"recipient"`
		Items     []ShoppingEntry `json:"items"`
	}
)
