package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"antshop/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// StripeOptions configures hosted Checkout Sessions.
type StripeOptions struct {
	APIKey     string
	Currency   string
	SuccessURL string
	CancelURL  string
}

// sessionCreator is the slice of the Stripe client the bridge needs.
type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeBridge creates Stripe Checkout Sessions. Calls are not retried.
type StripeBridge struct {
	sessions sessionCreator
	opts     StripeOptions
	logger   *zap.Logger
}

func NewStripeBridge(opts StripeOptions, logger *zap.Logger) *StripeBridge {
	sc := &client.API{}
	sc.Init(opts.APIKey, nil)
	return &StripeBridge{sessions: sc.CheckoutSessions, opts: opts, logger: logger}
}

func (b *StripeBridge) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	params := buildSessionParams(b.opts, req)
	params.Context = ctx

	cs, err := b.sessions.New(params)
	if err != nil {
		b.logger.Error("stripe checkout session failed",
			zap.String("session_id", req.SessionID),
			zap.String("product_id", req.Product.ID),
			zap.Error(err))
		return nil, NewCheckoutError(stripeErrorCode(err), "failed to create checkout session", err)
	}
	if cs.URL == "" {
		return nil, NewCheckoutError("empty_url", "checkout session has no redirect url", nil)
	}

	b.logger.Info("stripe checkout session created",
		zap.String("session_id", req.SessionID),
		zap.String("checkout_id", cs.ID))
	return &models.CheckoutResult{
		URL:        cs.URL,
		ProviderID: cs.ID,
		CreatedAt:  time.Now(),
	}, nil
}

func buildSessionParams(opts StripeOptions, req models.CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(opts.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Product.Name),
					},
					UnitAmount: stripe.Int64(req.Product.PriceMinor),
				},
				Quantity: stripe.Int64(int64(req.Quantity)),
			},
		},
		SuccessURL: stripe.String(opts.SuccessURL),
		CancelURL:  stripe.String(opts.CancelURL),
	}
	for k, v := range req.Metadata() {
		params.AddMetadata(k, v)
	}
	return params
}

func stripeErrorCode(err error) string {
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.Code != "" {
			return string(se.Code)
		}
		return fmt.Sprintf("stripe_%s", se.Type)
	}
	return "stripe_unreachable"
}
