package catalog

import "antshop/models"

// Recommender picks a product from the user's preference and the kids/pets answer.
type Recommender struct {
	spray, trap, gel models.CatalogItem
}

// NewRecommender resolves the three products it can recommend up front, so a
// broken catalog fails at startup instead of mid-conversation.
func NewRecommender(c *Catalog) (*Recommender, error) {
	if err := c.Require(SprayID, TrapID, GelID); err != nil {
		return nil, err
	}
	spray, _ := c.Get(SprayID)
	trap, _ := c.Get(TrapID)
	gel, _ := c.Get(GelID)
	return &Recommender{spray: spray, trap: trap, gel: gel}, nil
}

// Recommend: fast always gets the spray; otherwise kids or pets get the
// enclosed trap and everyone else the gel bait.
func (r *Recommender) Recommend(pref models.Preference, kidsOrPets *bool) models.CatalogItem {
	switch {
	case pref == models.PreferenceFast:
		return r.spray
	case kidsOrPets != nil && *kidsOrPets:
		return r.trap
	default:
		return r.gel
	}
}
