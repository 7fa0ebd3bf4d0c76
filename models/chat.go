package models

// ChatRequest is the payload coming from the frontend into /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"` // echoed from the previous BotTurn
}

// TurnPayload is the side-channel data attached to a reply.
type TurnPayload struct {
	Product    *CatalogItem `json:"product,omitempty"`
	Total      float64      `json:"total,omitempty"`
	TotalMinor int64        `json:"total_minor,omitempty"`
}

// BotTurn is what the chat handler returns to the frontend.
type BotTurn struct {
	Reply       string       `json:"reply"`
	Choices     []string     `json:"choices"`
	Done        bool         `json:"done"`
	Payload     *TurnPayload `json:"payload,omitempty"`
	CheckoutURL string       `json:"checkout_url,omitempty"`
	SessionID   string       `json:"session_id"`
}
