package catalog

import (
	"testing"

	"antshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, GelID, items[0].ID)

	gel, ok := c.Get(GelID)
	require.True(t, ok)
	assert.Equal(t, int64(590), gel.PriceMinor)
	assert.InDelta(t, 5.90, gel.Price, 1e-9)

	_, ok = c.Get("nope")
	assert.False(t, ok)

	assert.Len(t, c.DeliverySlots(), 5)
	assert.NoError(t, c.Require(GelID, TrapID, SprayID))
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	_, err := New([]models.CatalogItem{{ID: "a"}, {ID: "a"}}, []string{"x"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]models.CatalogItem{{ID: ""}}, []string{"x"})
	assert.Error(t, err)

	_, err = New([]models.CatalogItem{{ID: "a"}}, nil)
	assert.Error(t, err)
}

func TestFirstOtherThan(t *testing.T) {
	c := Default()

	alt, ok := c.FirstOtherThan(GelID)
	require.True(t, ok)
	assert.Equal(t, TrapID, alt.ID)

	alt, ok = c.FirstOtherThan(TrapID)
	require.True(t, ok)
	assert.Equal(t, GelID, alt.ID)

	single, err := New([]models.CatalogItem{{ID: "only"}}, []string{"x"})
	require.NoError(t, err)
	_, ok = single.FirstOtherThan("only")
	assert.False(t, ok)
}

func TestSlot(t *testing.T) {
	c := Default()
	slots := c.DeliverySlots()

	for _, n := range []int{0, -1, len(slots) + 1} {
		_, ok := c.Slot(n)
		assert.False(t, ok, "slot %d", n)
	}

	first, ok := c.Slot(1)
	require.True(t, ok)
	assert.Equal(t, slots[0], first)

	last, ok := c.Slot(len(slots))
	require.True(t, ok)
	assert.Equal(t, slots[len(slots)-1], last)
}

func TestRecommend(t *testing.T) {
	r, err := NewRecommender(Default())
	require.NoError(t, err)

	yes, no := true, false
	tests := []struct {
		name string
		pref models.Preference
		kids *bool
		want string
	}{
		{"fast with kids", models.PreferenceFast, &yes, SprayID},
		{"fast without kids", models.PreferenceFast, &no, SprayID},
		{"fast unknown", models.PreferenceFast, nil, SprayID},
		{"colony with kids", models.PreferenceColony, &yes, TrapID},
		{"colony without kids", models.PreferenceColony, &no, GelID},
		{"colony unknown", models.PreferenceColony, nil, GelID},
		{"no preference with kids", models.PreferenceNone, &yes, TrapID},
		{"no preference without kids", models.PreferenceNone, &no, GelID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Recommend(tt.pref, tt.kids).ID)
		})
	}
}

func TestNewRecommender_MissingProduct(t *testing.T) {
	c, err := New([]models.CatalogItem{{ID: GelID}, {ID: TrapID}}, []string{"x"})
	require.NoError(t, err)

	_, err = NewRecommender(c)
	assert.ErrorContains(t, err, SprayID)
}
