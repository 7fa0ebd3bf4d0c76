package checkout

import (
	"context"

	"antshop/models"
)

// Bridge creates a hosted payment page for an order and returns its URL.
type Bridge interface {
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error)
}

// Unconfigured is the bridge used when no payment provider is set up. It
// always answers ErrNotConfigured so callers fall back to demo mode.
type Unconfigured struct{}

func (Unconfigured) CreateCheckout(context.Context, models.CheckoutRequest) (*models.CheckoutResult, error) {
	return nil, ErrNotConfigured
}
