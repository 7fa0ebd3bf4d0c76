package dialogue

import (
	"context"
	"fmt"
	"strings"

	"antshop/models"
	"antshop/services/catalog"
	"antshop/services/checkout"
	"antshop/utils"

	"go.uber.org/zap"
)

// OrderNotifier is told about every checkout URL handed to a user.
type OrderNotifier interface {
	CheckoutCreated(ctx context.Context, req models.CheckoutRequest, res *models.CheckoutResult) error
}

// Options tunes an Engine. Zero values pick the defaults.
type Options struct {
	Locale           string
	MockCheckoutPath string
	Notifier         OrderNotifier
}

// Engine is the slot-filling state machine. It holds no per-session state;
// everything it mutates lives in the Session passed to HandleTurn.
type Engine struct {
	catalog     *catalog.Catalog
	recommender *catalog.Recommender
	bridge      checkout.Bridge
	notifier    OrderNotifier
	mockPath    string
	text        messages
	logger      *zap.Logger

	stages         []stage
	checkoutStages []stage
}

// NewEngine fails when the catalog lacks a product the recommender needs or
// the locale is unknown. A nil bridge means checkout is unconfigured.
func NewEngine(cat *catalog.Catalog, bridge checkout.Bridge, opts Options, logger *zap.Logger) (*Engine, error) {
	rec, err := catalog.NewRecommender(cat)
	if err != nil {
		return nil, err
	}
	text, err := messagesFor(opts.Locale)
	if err != nil {
		return nil, err
	}
	if bridge == nil {
		bridge = checkout.Unconfigured{}
	}
	if opts.MockCheckoutPath == "" {
		opts.MockCheckoutPath = "/static/mock-payment.html"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		catalog:     cat,
		recommender: rec,
		bridge:      bridge,
		notifier:    opts.Notifier,
		mockPath:    opts.MockCheckoutPath,
		text:        text,
		logger:      logger,
	}
	e.buildStages()
	return e, nil
}

// HandleTurn advances sess by one user message. The user message and the
// reply are appended to the history. The only error is a checkout bridge
// failure, in which case no reply is recorded.
func (e *Engine) HandleTurn(ctx context.Context, sess *models.Session, message string) (models.BotTurn, error) {
	raw := strings.TrimSpace(message)
	t := &turn{
		sess:   sess,
		c:      &sess.Context,
		raw:    raw,
		msg:    strings.ToLower(raw),
		digits: ExtractDigits(raw),
	}
	if last, ok := sess.LastAssistant(); ok {
		t.lastPrompt = last.Prompt
	}
	sess.Append(models.Message{Role: models.RoleUser, Content: raw})

	s, _ := pick(e.stages, t)
	e.logger.Debug("dialogue stage", sessionField(t), stageField(s.name))

	r, err := s.run(ctx, t)
	if err != nil {
		return models.BotTurn{SessionID: sess.ID}, err
	}

	sess.Append(models.Message{Role: models.RoleAssistant, Content: r.text, Prompt: r.prompt})

	choices := r.choices
	if choices == nil {
		choices = []string{}
	}
	return models.BotTurn{
		Reply:       r.text,
		Choices:     choices,
		Done:        false,
		Payload:     r.payload,
		CheckoutURL: r.checkoutURL,
		SessionID:   sess.ID,
	}, nil
}

func (e *Engine) askTopic(_ context.Context, t *turn) (reply, error) {
	topic := MatchTopic(t.msg)
	if topic == models.TopicNone {
		return reply{text: e.text.AskTopic, prompt: models.PromptTopic}, nil
	}
	t.c.Topic = topic
	return e.preferenceQuestion(e.text.AskPreference), nil
}

func (e *Engine) askPreference(_ context.Context, t *turn) (reply, error) {
	pref := MatchPreference(t.msg)
	if pref == models.PreferenceNone {
		return e.preferenceQuestion(e.text.AskPreference), nil
	}
	t.c.Preference = pref
	return e.kidsPetsQuestion(), nil
}

func (e *Engine) askKidsOrPets(_ context.Context, t *turn) (reply, error) {
	answer := MatchYesNo(t.msg)
	if answer == nil {
		return e.kidsPetsQuestion(), nil
	}
	t.c.KidsOrPets = answer

	product := e.recommender.Recommend(t.c.Preference, t.c.KidsOrPets)
	t.c.SelectedProductID = product.ID

	text := fmt.Sprintf(e.text.Recommendation,
		product.Name,
		e.money(product.PriceMinor),
		strings.Join(product.Pros, ", "),
		strings.Join(product.Cons, ", "),
		product.KidsPetsNote,
	)
	return reply{
		text:    text,
		choices: e.text.ChoicesAction,
		payload: &models.TurnPayload{Product: &product},
		prompt:  models.PromptAction,
	}, nil
}

func (e *Engine) compare(_ context.Context, t *turn) (reply, error) {
	current, ok := e.catalog.Get(t.c.SelectedProductID)
	if !ok {
		return reply{text: e.text.NeedProductFirst}, nil
	}
	alt, ok := e.catalog.FirstOtherThan(current.ID)
	if !ok {
		return reply{text: e.text.NoAlternatives}, nil
	}

	t.c.Mode = models.ModeComparing
	t.c.CompareAlternativeID = alt.ID

	var sb strings.Builder
	sb.WriteString(e.text.ComparisonHeader)
	for _, item := range []models.CatalogItem{current, alt} {
		fmt.Fprintf(&sb, e.text.ComparisonLine, item.Name, e.money(item.PriceMinor), strings.Join(item.Pros, ", "))
	}
	sb.WriteString(e.text.ComparisonQuestion)

	return reply{text: sb.String(), choices: e.text.ChoicesCompare, prompt: models.PromptCompare}, nil
}

func (e *Engine) chooseCompared(_ context.Context, t *turn) (reply, error) {
	current, okCur := e.catalog.Get(t.c.SelectedProductID)
	alt, okAlt := e.catalog.Get(t.c.CompareAlternativeID)
	if !okCur || !okAlt {
		t.c.ClearComparison()
		e.logger.Warn("comparison state lost, resetting", sessionField(t))
		return reply{text: e.text.LostContext, choices: e.text.ChoicesAction, prompt: models.PromptAction}, nil
	}

	chosen := current
	if t.msg == compareChoiceTwo {
		chosen = alt
	}
	t.c.SelectedProductID = chosen.ID
	t.c.ClearComparison()
	return e.quantityQuestion(chosen), nil
}

func (e *Engine) buy(_ context.Context, t *turn) (reply, error) {
	product, ok := e.catalog.Get(t.c.SelectedProductID)
	if !ok {
		return reply{text: e.text.NeedProductFirst}, nil
	}
	// Buying settles any open comparison on the current product.
	t.c.ClearComparison()
	return e.quantityQuestion(product), nil
}

func (e *Engine) fallback(context.Context, *turn) (reply, error) {
	return reply{text: e.text.Fallback}, nil
}

func (e *Engine) preferenceQuestion(text string) reply {
	return reply{text: text, choices: e.text.ChoicesPreference, prompt: models.PromptPreference}
}

func (e *Engine) kidsPetsQuestion() reply {
	return reply{text: e.text.AskKidsPets, choices: e.text.ChoicesYesNo, prompt: models.PromptKidsPets}
}

func (e *Engine) quantityQuestion(product models.CatalogItem) reply {
	text := fmt.Sprintf(e.text.Selected, product.Name, e.money(product.PriceMinor)) + e.text.AskQuantity
	return reply{text: text, prompt: models.PromptQuantity}
}

func (e *Engine) money(minor int64) string {
	return fmt.Sprintf(e.text.Currency, utils.FormatMinor(minor))
}

func sessionField(t *turn) zap.Field { return zap.String("session_id", t.sess.ID) }

func stageField(name StageName) zap.Field { return zap.String("stage", string(name)) }
