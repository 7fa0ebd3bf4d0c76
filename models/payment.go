package models

import (
	"strconv"
	"time"
)

// --- CheckoutRequest & CheckoutResult ---
type CheckoutRequest struct {
	SessionID    string
	Product      CatalogItem
	Quantity     int
	Address      string
	DeliverySlot string
}

// AmountMinor is quantity x unit price in minor units.
func (r CheckoutRequest) AmountMinor() int64 {
	return int64(r.Quantity) * r.Product.PriceMinor
}

// Metadata is attached to the provider's checkout session and to order events.
func (r CheckoutRequest) Metadata() map[string]string {
	return map[string]string{
		"session_id":    r.SessionID,
		"product_id":    r.Product.ID,
		"product_name":  r.Product.Name,
		"quantity":      strconv.Itoa(r.Quantity),
		"address":       r.Address,
		"delivery_slot": r.DeliverySlot,
	}
}

type CheckoutResult struct {
	URL        string    `json:"url"`
	ProviderID string    `json:"provider_id,omitempty"`
	Simulated  bool      `json:"simulated"`
	CreatedAt  time.Time `json:"created_at"`
}
