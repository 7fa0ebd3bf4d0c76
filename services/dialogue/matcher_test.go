package dialogue

import (
	"testing"

	"antshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTopic(t *testing.T) {
	tests := []struct {
		text string
		want models.Topic
	}{
		{"vull eliminar una colònia de formigues", models.TopicAnts},
		{"Tengo HORMIGAS en la cocina", models.TopicAnts},
		{"I have ants", models.TopicAnts},
		{"hola", models.TopicNone},
		{"", models.TopicNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchTopic(tt.text), tt.text)
	}
}

func TestMatchPreference(t *testing.T) {
	tests := []struct {
		text string
		want models.Preference
	}{
		{"eliminar", models.PreferenceColony},
		{"Eliminar colònia", models.PreferenceColony},
		{"Solució ràpida", models.PreferenceFast},
		{"algo rápido", models.PreferenceFast},
		{"Fast solution", models.PreferenceFast},
		{"Eliminate colony", models.PreferenceColony},
		{"eliminar ràpid", models.PreferenceNone},
		{"no ho sé", models.PreferenceNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchPreference(tt.text), tt.text)
	}
}

func TestMatchYesNo(t *testing.T) {
	yes := MatchYesNo("Sí")
	require.NotNil(t, yes)
	assert.True(t, *yes)

	yes = MatchYesNo("yes, a dog")
	require.NotNil(t, yes)
	assert.True(t, *yes)

	no := MatchYesNo("No")
	require.NotNil(t, no)
	assert.False(t, *no)

	assert.Nil(t, MatchYesNo("potser"))
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, "12", ExtractDigits("C/ Indústria 12, Granollers"))
	assert.Equal(t, "3", ExtractDigits("3"))
	assert.Equal(t, "0812", ExtractDigits("08-12"))
	assert.Equal(t, "", ExtractDigits("cap número"))
	assert.Equal(t, "", ExtractDigits("٣"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("PAGAR ARA", payKeywords))
	assert.True(t, ContainsAny("Pay now", payKeywords))
	assert.False(t, ContainsAny("comprar", compareKeywords))
	assert.True(t, ContainsAny("Comparar", compareKeywords))
	assert.False(t, ContainsAny("anything", nil))
}
