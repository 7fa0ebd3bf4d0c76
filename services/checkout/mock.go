package checkout

import (
	"net/url"
	"time"

	"antshop/models"
)

// MockResult is the simulated checkout used in demo mode.
func MockResult(path, sessionID string) *models.CheckoutResult {
	return &models.CheckoutResult{
		URL:       path + "?sid=" + url.QueryEscape(sessionID),
		Simulated: true,
		CreatedAt: time.Now(),
	}
}
