package dialogue

import (
	"strings"
	"unicode"

	"antshop/models"
)

// Keyword sets cover Catalan, Spanish and English so quick replies of either
// locale are understood.
var (
	topicKeywords    = []string{"formig", "hormig", "ants"}
	fastKeywords     = []string{"ràpid", "rapid", "rápida", "rápido", "fast", "quick"}
	colonyKeywords   = []string{"colònia", "colonia", "tota", "eliminar", "eliminate", "colony"}
	yesKeywords      = []string{"sí", "si", "yes"}
	noKeyword        = "no"
	compareKeywords  = []string{"compar"}
	buyKeywords      = []string{"comprar", "compro", "vull comprar", "buy"}
	payKeywords      = []string{"pagar", "pay"}
	changeKeywords   = []string{"canviar", "cambiar", "change"}
	compareChoiceOne = "1"
	compareChoiceTwo = "2"
)

// ContainsAny reports whether text contains any keyword, ignoring case.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// MatchTopic returns the supported topic mentioned in text, or TopicNone.
func MatchTopic(text string) models.Topic {
	if ContainsAny(text, topicKeywords) {
		return models.TopicAnts
	}
	return models.TopicNone
}

// MatchPreference returns fast or colony when exactly one keyword set matches.
func MatchPreference(text string) models.Preference {
	fast := ContainsAny(text, fastKeywords)
	colony := ContainsAny(text, colonyKeywords)
	switch {
	case fast && !colony:
		return models.PreferenceFast
	case colony && !fast:
		return models.PreferenceColony
	default:
		return models.PreferenceNone
	}
}

// MatchYesNo checks affirmative tokens first, then the negative one.
// A nil result means neither was found.
func MatchYesNo(text string) *bool {
	var v bool
	switch {
	case ContainsAny(text, yesKeywords):
		v = true
	case ContainsAny(text, []string{noKeyword}):
		v = false
	default:
		return nil
	}
	return &v
}

// ExtractDigits concatenates every decimal digit in text, in order.
func ExtractDigits(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
