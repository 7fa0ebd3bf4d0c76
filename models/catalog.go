package models

// CatalogItem is a purchasable product. Prices are kept in minor units (cents).
type CatalogItem struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	PriceMinor   int64    `json:"price_minor" bson:"priceMinor"`
	Price        float64  `json:"price" bson:"-"`
	Pros         []string `json:"pros" bson:"pros"`
	Cons         []string `json:"cons" bson:"cons"`
	BestFor      []string `json:"best_for" bson:"bestFor"`
	KidsPetsNote string   `json:"kids_pets_note" bson:"kidsPetsNote"`
}

// DeliverySlot is a human-readable delivery window label.
type DeliverySlot = string
