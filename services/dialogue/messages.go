package dialogue

import "fmt"

// messages is the reply copy for one locale. Format verbs are documented on
// the fields that take arguments.
type messages struct {
	AskTopic      string
	AskPreference string
	AskKidsPets   string

	// name, price, pros, cons, note
	Recommendation string

	NeedProductFirst   string
	NoAlternatives     string
	ComparisonHeader   string
	ComparisonLine     string // name, price, pros
	ComparisonQuestion string
	LostContext        string

	// name, price
	Selected      string
	AskQuantity   string
	BadQuantity   string
	QuantityRange string // max units

	// name, quantity, subtotal
	PartialSummary string

	// address, numbered slots, N
	AddressSlots string
	SlotRange    string // N

	// name, quantity, address, slot, total
	Summary string

	PayBeforeSlot string
	PayRedirect   string
	PayDemo       string
	Restart       string
	Fallback      string

	Currency string

	ChoicesPreference []string
	ChoicesYesNo      []string
	ChoicesAction     []string
	ChoicesCompare    []string
	ChoicesConfirm    []string
}

var catalan = messages{
	AskTopic:      "En què t'ajudo a comprar avui? (p. ex. 'vull eliminar una colònia de formigues al jardí')",
	AskPreference: "Entesos. Vols <b>eliminar tota la colònia</b> o <b>una solució ràpida</b> per les que veus?",
	AskKidsPets:   "Hi ha <b>nens o mascotes</b> a la zona on ho aplicaràs?",

	Recommendation: "Et recomano <b>%s</b> — %s.<br><b>Pros</b>: %s.<br><b>Contres</b>: %s.<br><b>Nota</b>: %s<br><br>" +
		"Vols que et <b>compari</b> amb una alternativa o <b>compres aquest</b>?",

	NeedProductFirst:   "Primer necessito saber quin producte vols. Vols que te'n recomani un?",
	NoAlternatives:     "No tinc alternatives per comparar ara mateix.",
	ComparisonHeader:   "Comparativa ràpida:<br>",
	ComparisonLine:     "- <b>%s</b> (%s): %s.<br>",
	ComparisonQuestion: "<br>Quin prefereixes? (respon amb <b>1</b> pel primer o <b>2</b> pel segon)",
	LostContext:        "Sembla que s'ha perdut el context. Vols <b>comparar</b> de nou o <b>comprar</b> directament?",

	Selected:      "Perfecte. Has seleccionat <b>%s</b> (%s).<br>",
	AskQuantity:   "Quantes unitats vols?",
	BadQuantity:   "No he pogut entendre la quantitat. Quantes unitats vols?",
	QuantityRange: "Pots demanar entre <b>1</b> i <b>%d</b> unitats. Quantes en vols?",

	PartialSummary: "Resum parcial:<br>- Producte: <b>%s</b><br>- Quantitat: <b>%d</b><br>- Subtotal: <b>%s</b><br><br>" +
		"Escriu <b>l'adreça d'entrega</b> (ex: 'C/ Indústria 12, Granollers').",

	AddressSlots: "Perfecte. Adreça: <b>%s</b><br>Tria <b>franja d’entrega</b>:<br>%s<br>(Respon amb 1-%d)",
	SlotRange:    "Si us plau, tria un número entre <b>1</b> i <b>%d</b>.",

	Summary: "Resum:<br>- Producte: <b>%s</b><br>- Quantitat: <b>%d</b><br>- Adreça: <b>%s</b><br>" +
		"- Franja: <b>%s</b><br>- Total estimat: <b>%s</b><br><br>Vols <b>pagar ara</b> o <b>canviar</b> alguna cosa?",

	PayBeforeSlot: "Abans de pagar necessito completar la comanda.<br>",
	PayRedirect:   "Genial! 👇 Fes clic per pagar de forma segura.",
	PayDemo:       "Mode demo: pagament simulat.",
	Restart:       "Cap problema! Tornem a començar. Vols <b>eliminar colònia</b> o <b>solució ràpida</b>?",
	Fallback:      "Perdona, no t'he entès. Pots repetir-ho o escriure <b>ajuda</b>?",

	Currency: "%s €",

	ChoicesPreference: []string{"Eliminar colònia", "Solució ràpida"},
	ChoicesYesNo:      []string{"Sí", "No"},
	ChoicesAction:     []string{"Comparar", "Comprar"},
	ChoicesCompare:    []string{"1", "2"},
	ChoicesConfirm:    []string{"Pagar ara", "Canviar"},
}

var english = messages{
	AskTopic:      "What can I help you buy today? (e.g. 'I want to get rid of an ant colony in the garden')",
	AskPreference: "Got it. Do you want to <b>eliminate the whole colony</b> or <b>a fast solution</b> for the ones you see?",
	AskKidsPets:   "Are there <b>kids or pets</b> where you will apply it?",

	Recommendation: "I recommend <b>%s</b> — %s.<br><b>Pros</b>: %s.<br><b>Cons</b>: %s.<br><b>Note</b>: %s<br><br>" +
		"Shall I <b>compare</b> it with an alternative or do you want to <b>buy this one</b>?",

	NeedProductFirst:   "First I need to know which product you want. Shall I recommend one?",
	NoAlternatives:     "I have no alternatives to compare right now.",
	ComparisonHeader:   "Quick comparison:<br>",
	ComparisonLine:     "- <b>%s</b> (%s): %s.<br>",
	ComparisonQuestion: "<br>Which one do you prefer? (answer <b>1</b> for the first or <b>2</b> for the second)",
	LostContext:        "Looks like we lost track. Do you want to <b>compare</b> again or <b>buy</b> directly?",

	Selected:      "Great. You selected <b>%s</b> (%s).<br>",
	AskQuantity:   "How many units do you want?",
	BadQuantity:   "I could not read that quantity. How many units do you want?",
	QuantityRange: "You can order between <b>1</b> and <b>%d</b> units. How many do you want?",

	PartialSummary: "Partial summary:<br>- Product: <b>%s</b><br>- Quantity: <b>%d</b><br>- Subtotal: <b>%s</b><br><br>" +
		"Type the <b>delivery address</b> (e.g. 'C/ Indústria 12, Granollers').",

	AddressSlots: "Great. Address: <b>%s</b><br>Pick a <b>delivery slot</b>:<br>%s<br>(Answer 1-%d)",
	SlotRange:    "Please pick a number between <b>1</b> and <b>%d</b>.",

	Summary: "Summary:<br>- Product: <b>%s</b><br>- Quantity: <b>%d</b><br>- Address: <b>%s</b><br>" +
		"- Slot: <b>%s</b><br>- Estimated total: <b>%s</b><br><br>Do you want to <b>pay now</b> or <b>change</b> something?",

	PayBeforeSlot: "Before paying I need to complete the order.<br>",
	PayRedirect:   "Great! 👇 Click to pay securely.",
	PayDemo:       "Demo mode: simulated payment.",
	Restart:       "No problem! Let's start over. Do you want to <b>eliminate the colony</b> or a <b>fast solution</b>?",
	Fallback:      "Sorry, I did not understand. Can you rephrase or type <b>help</b>?",

	Currency: "€%s",

	ChoicesPreference: []string{"Eliminate colony", "Fast solution"},
	ChoicesYesNo:      []string{"Yes", "No"},
	ChoicesAction:     []string{"Compare", "Buy"},
	ChoicesCompare:    []string{"1", "2"},
	ChoicesConfirm:    []string{"Pay now", "Change"},
}

// messagesFor returns the copy for a locale code.
func messagesFor(locale string) (messages, error) {
	switch locale {
	case "", "ca":
		return catalan, nil
	case "en":
		return english, nil
	default:
		return messages{}, fmt.Errorf("dialogue: unsupported locale %q", locale)
	}
}
