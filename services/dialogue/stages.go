package dialogue

import (
	"context"

	"antshop/models"
)

// StageName identifies a branch of the dialogue.
type StageName string

const (
	StageTopic         StageName = "topic"
	StagePreference    StageName = "preference"
	StageKidsOrPets    StageName = "kids_or_pets"
	StageCompare       StageName = "compare"
	StageCompareChoice StageName = "compare_choice"
	StageBuy           StageName = "buy"
	StageCheckout      StageName = "checkout"
	StageFallback      StageName = "fallback"

	StageAddressPrimed StageName = "address_primed"
	StageQuantity      StageName = "quantity"
	StageAddress       StageName = "address"
	StageDeliverySlot  StageName = "delivery_slot"
	StagePay           StageName = "pay"
	StagePayIncomplete StageName = "pay_incomplete"
	StageChange        StageName = "change"
)

// turn is the per-message view the stage guards and handlers work on.
type turn struct {
	sess       *models.Session
	c          *models.ChatContext
	raw        string // trimmed user text
	msg        string // lower-cased raw
	digits     string
	lastPrompt models.Prompt
}

func (t *turn) productSelected() bool { return t.c.SelectedProductID != "" }
func (t *turn) comparing() bool       { return t.c.Mode == models.ModeComparing }

// reply is what a stage produces; the engine turns it into a BotTurn.
type reply struct {
	text        string
	choices     []string
	payload     *models.TurnPayload
	checkoutURL string
	prompt      models.Prompt
}

type stage struct {
	name StageName
	when func(t *turn) bool
	run  func(ctx context.Context, t *turn) (reply, error)
}

// pick returns the first stage whose guard holds.
func pick(stages []stage, t *turn) (stage, bool) {
	for _, s := range stages {
		if s.when(t) {
			return s, true
		}
	}
	return stage{}, false
}

func names(stages []stage) []StageName {
	out := make([]StageName, len(stages))
	for i, s := range stages {
		out[i] = s.name
	}
	return out
}

// buildStages wires the precedence order. The first stage whose guard holds
// handles the turn; the slot-filling stages come first so later ones are
// unreachable until topic, preference and kids/pets are known.
func (e *Engine) buildStages() {
	e.checkoutStages = []stage{
		{StageAddressPrimed, e.wantsPrimedAddress, e.takeAddress},
		{StageQuantity, func(t *turn) bool { return t.digits != "" && t.c.Address == "" }, e.takeQuantity},
		{StageAddress, e.looksLikeAddress, e.takeAddress},
		{StageDeliverySlot, func(t *turn) bool { return t.c.Address != "" && t.c.DeliverySlot == "" && t.digits != "" }, e.takeSlot},
		{StagePay, func(t *turn) bool { return ContainsAny(t.msg, payKeywords) && t.c.DeliverySlot != "" }, e.pay},
		{StagePayIncomplete, func(t *turn) bool { return ContainsAny(t.msg, payKeywords) }, e.payIncomplete},
		{StageChange, func(t *turn) bool { return ContainsAny(t.msg, changeKeywords) }, e.change},
	}

	e.stages = []stage{
		{StageTopic, func(t *turn) bool { return t.c.Topic == models.TopicNone }, e.askTopic},
		{StagePreference, func(t *turn) bool { return t.c.Preference == models.PreferenceNone }, e.askPreference},
		{StageKidsOrPets, func(t *turn) bool { return t.c.KidsOrPets == nil }, e.askKidsOrPets},
		{StageCompare, func(t *turn) bool { return ContainsAny(t.msg, compareKeywords) }, e.compare},
		{StageCompareChoice, func(t *turn) bool {
			return (t.msg == compareChoiceOne || t.msg == compareChoiceTwo) && t.comparing()
		}, e.chooseCompared},
		{StageBuy, func(t *turn) bool { return ContainsAny(t.msg, buyKeywords) }, e.buy},
		{StageCheckout, e.inCheckout, e.runCheckout},
		{StageFallback, func(*turn) bool { return true }, e.fallback},
	}
}

// Stages lists the top-level stages in precedence order.
func (e *Engine) Stages() []StageName { return names(e.stages) }

// CheckoutStages lists the checkout sub-flow stages in precedence order.
func (e *Engine) CheckoutStages() []StageName { return names(e.checkoutStages) }

func (e *Engine) inCheckout(t *turn) bool {
	if !t.productSelected() || t.comparing() {
		return false
	}
	_, ok := pick(e.checkoutStages, t)
	return ok
}

func (e *Engine) runCheckout(ctx context.Context, t *turn) (reply, error) {
	s, _ := pick(e.checkoutStages, t)
	e.logger.Debug("checkout stage", sessionField(t), stageField(s.name))
	return s.run(ctx, t)
}
