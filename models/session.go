package models

import "time"

// Topic is the product area a conversation is about.
type Topic string

const (
	TopicNone Topic = ""
	TopicAnts Topic = "ants"
)

// Preference is what the user wants the product to achieve.
type Preference string

const (
	PreferenceNone   Preference = ""
	PreferenceFast   Preference = "fast"
	PreferenceColony Preference = "colony"
)

// Mode marks a temporary sub-dialogue.
type Mode string

const (
	ModeNone      Mode = ""
	ModeComparing Mode = "comparing"
)

// Role identifies the author of a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Prompt tags what an assistant message asked for, so the next turn can
// interpret the answer in that light.
type Prompt string

const (
	PromptNone       Prompt = ""
	PromptTopic      Prompt = "topic"
	PromptPreference Prompt = "preference"
	PromptKidsPets   Prompt = "kids_pets"
	PromptAction     Prompt = "compare_or_buy"
	PromptCompare    Prompt = "compare_choice"
	PromptQuantity   Prompt = "quantity"
	PromptAddress    Prompt = "address"
	PromptSlot       Prompt = "delivery_slot"
	PromptConfirm    Prompt = "pay_or_change"
	PromptCheckout   Prompt = "checkout"
)

// Message is one history entry.
type Message struct {
	Role    Role   `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
	Prompt  Prompt `json:"prompt,omitempty" bson:"prompt,omitempty"`
}

// ChatContext is the slot-filling state of a session. The zero value is the
// initial state except for Quantity, see NewChatContext.
type ChatContext struct {
	Topic                Topic      `json:"topic" bson:"topic"`
	Preference           Preference `json:"preference" bson:"preference"`
	KidsOrPets           *bool      `json:"kids_or_pets" bson:"kidsOrPets"`
	SelectedProductID    string     `json:"selected_product_id" bson:"selectedProductId"`
	Quantity             int        `json:"quantity" bson:"quantity"`
	Mode                 Mode       `json:"mode" bson:"mode"`
	CompareAlternativeID string     `json:"compare_alternative_id" bson:"compareAlternativeId"`
	Address              string     `json:"address" bson:"address"`
	DeliverySlot         string     `json:"delivery_slot" bson:"deliverySlot"`
}

// NewChatContext returns a context with every field unset and quantity 1.
func NewChatContext() ChatContext {
	return ChatContext{Quantity: 1}
}

// ResetKeepTopic clears every field but the topic.
func (c *ChatContext) ResetKeepTopic() {
	topic := c.Topic
	*c = NewChatContext()
	c.Topic = topic
}

// ClearComparison leaves compare mode.
func (c *ChatContext) ClearComparison() {
	c.Mode = ModeNone
	c.CompareAlternativeID = ""
}

// Session is a single user's conversation.
type Session struct {
	ID        string      `json:"id" bson:"_id"`
	CreatedAt time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updatedAt"`
	Context   ChatContext `json:"context" bson:"context"`
	History   []Message   `json:"history" bson:"history"`
}

// NewSession allocates an empty session with the given id.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Context:   NewChatContext(),
		History:   []Message{},
	}
}

// Append records a history entry.
func (s *Session) Append(msg Message) {
	s.History = append(s.History, msg)
}

// LastAssistant returns the most recent assistant message, if any.
func (s *Session) LastAssistant() (Message, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleAssistant {
			return s.History[i], true
		}
	}
	return Message{}, false
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Context.KidsOrPets != nil {
		v := *s.Context.KidsOrPets
		out.Context.KidsOrPets = &v
	}
	out.History = make([]Message, len(s.History))
	copy(out.History, s.History)
	return &out
}
