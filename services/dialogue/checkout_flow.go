package dialogue

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"antshop/models"
	"antshop/services/checkout"
	"antshop/utils"

	"go.uber.org/zap"
)

// maxQuantity caps the units of one order.
const maxQuantity = 999

// minAddressLen is the shortest digit-free message taken as an address
// when nobody asked for one.
const minAddressLen = 6

// wantsPrimedAddress: right after the address prompt the whole message is the
// address, street numbers included.
func (e *Engine) wantsPrimedAddress(t *turn) bool {
	return t.c.Address == "" && t.lastPrompt == models.PromptAddress && t.raw != ""
}

func (e *Engine) looksLikeAddress(t *turn) bool {
	return t.c.Address == "" && t.digits == "" && utf8.RuneCountInString(t.raw) >= minAddressLen
}

func (e *Engine) takeQuantity(_ context.Context, t *turn) (reply, error) {
	product, ok := e.selected(t)
	if !ok {
		return e.lostSelection(t), nil
	}
	qty, err := strconv.Atoi(t.digits)
	if err != nil {
		return reply{text: e.text.BadQuantity, prompt: models.PromptQuantity}, nil
	}
	if qty < 1 {
		qty = 1
	}
	if !validQuantity(qty, product.PriceMinor) {
		return e.quantityRange(), nil
	}
	t.c.Quantity = qty

	subtotal := int64(qty) * product.PriceMinor
	text := fmt.Sprintf(e.text.PartialSummary, product.Name, qty, e.money(subtotal))
	return reply{text: text, prompt: models.PromptAddress}, nil
}

func (e *Engine) takeAddress(_ context.Context, t *turn) (reply, error) {
	t.c.Address = t.raw
	return e.slotQuestion(t.c.Address), nil
}

func (e *Engine) takeSlot(_ context.Context, t *turn) (reply, error) {
	n, err := strconv.Atoi(t.digits)
	if err != nil {
		n = 0
	}
	slot, ok := e.catalog.Slot(n)
	if !ok {
		text := fmt.Sprintf(e.text.SlotRange, len(e.catalog.DeliverySlots()))
		return reply{text: text, prompt: models.PromptSlot}, nil
	}

	product, ok := e.selected(t)
	if !ok {
		return e.lostSelection(t), nil
	}
	if !validQuantity(t.c.Quantity, product.PriceMinor) {
		return e.redoQuantity(t), nil
	}
	t.c.DeliverySlot = slot

	total := int64(t.c.Quantity) * product.PriceMinor
	text := fmt.Sprintf(e.text.Summary, product.Name, t.c.Quantity, t.c.Address, slot, e.money(total))
	return reply{
		text:    text,
		choices: e.text.ChoicesConfirm,
		payload: &models.TurnPayload{Total: utils.MinorToMajor(total), TotalMinor: total},
		prompt:  models.PromptConfirm,
	}, nil
}

func (e *Engine) pay(ctx context.Context, t *turn) (reply, error) {
	product, ok := e.selected(t)
	if !ok {
		return e.lostSelection(t), nil
	}
	if !validQuantity(t.c.Quantity, product.PriceMinor) {
		return e.redoQuantity(t), nil
	}
	req := models.CheckoutRequest{
		SessionID:    t.sess.ID,
		Product:      product,
		Quantity:     t.c.Quantity,
		Address:      t.c.Address,
		DeliverySlot: t.c.DeliverySlot,
	}

	text := e.text.PayRedirect
	res, err := e.bridge.CreateCheckout(ctx, req)
	switch {
	case errors.Is(err, checkout.ErrNotConfigured):
		res = checkout.MockResult(e.mockPath, t.sess.ID)
		text = e.text.PayDemo
	case err != nil:
		if !errors.Is(err, checkout.ErrBridgeFailure) {
			err = checkout.NewCheckoutError("bridge_error", "checkout bridge failed", err)
		}
		return reply{}, fmt.Errorf("create checkout for session %s: %w", t.sess.ID, err)
	}

	if e.notifier != nil {
		if err := e.notifier.CheckoutCreated(ctx, req, res); err != nil {
			e.logger.Warn("order event not published", sessionField(t), zap.Error(err))
		}
	}
	return reply{text: text, checkoutURL: res.URL, prompt: models.PromptCheckout}, nil
}

// payIncomplete answers a pay request that arrives before the order is
// complete by asking for the first missing piece.
func (e *Engine) payIncomplete(_ context.Context, t *turn) (reply, error) {
	if t.c.Address == "" {
		product, ok := e.selected(t)
		if !ok {
			return e.lostSelection(t), nil
		}
		r := e.quantityQuestion(product)
		r.text = e.text.PayBeforeSlot + r.text
		return r, nil
	}
	r := e.slotQuestion(t.c.Address)
	r.text = e.text.PayBeforeSlot + r.text
	return r, nil
}

func (e *Engine) change(_ context.Context, t *turn) (reply, error) {
	t.c.ResetKeepTopic()
	return e.preferenceQuestion(e.text.Restart), nil
}

// validQuantity bounds qty to 1..maxQuantity and keeps qty x price within int64.
func validQuantity(qty int, priceMinor int64) bool {
	if qty < 1 || qty > maxQuantity {
		return false
	}
	return priceMinor <= 0 || int64(qty) <= math.MaxInt64/priceMinor
}

func (e *Engine) quantityRange() reply {
	return reply{text: fmt.Sprintf(e.text.QuantityRange, maxQuantity), prompt: models.PromptQuantity}
}

// redoQuantity handles a stored quantity that is out of bounds: the order
// details collected after it are dropped and the quantity is asked again.
func (e *Engine) redoQuantity(t *turn) reply {
	e.logger.Warn("stored quantity out of range, asking again",
		sessionField(t), zap.Int("quantity", t.c.Quantity))
	t.c.Quantity = 1
	t.c.Address = ""
	t.c.DeliverySlot = ""
	return e.quantityRange()
}

func (e *Engine) slotQuestion(address string) reply {
	slots := e.catalog.DeliverySlots()
	lines := make([]string, len(slots))
	for i, s := range slots {
		lines[i] = fmt.Sprintf("%d) %s", i+1, s)
	}
	text := fmt.Sprintf(e.text.AddressSlots, address, strings.Join(lines, "<br>"), len(slots))
	return reply{text: text, prompt: models.PromptSlot}
}

// selected resolves the selected product. The context only ever holds catalog
// ids, so a miss means a stored session outlived a catalog change.
func (e *Engine) selected(t *turn) (models.CatalogItem, bool) {
	return e.catalog.Get(t.c.SelectedProductID)
}

// lostSelection restarts at the preference question, keeping the topic.
func (e *Engine) lostSelection(t *turn) reply {
	e.logger.Warn("selected product not in catalog, restarting",
		sessionField(t), zap.String("product_id", t.c.SelectedProductID))
	t.c.ResetKeepTopic()
	return e.preferenceQuestion(e.text.Restart)
}
