// Package classifier maps an ordered sequence of OCR tokens recognized on a
// business card to a fixed ten-field contact record.
//
// Classification is a single left-to-right pass. Each token receives at most
// one primary classification (website, email, mobile number, company name,
// card holder or designation) from an ordered rule table, and is additionally
// tested against the address rule groups (area, city, state, pin code)
// regardless of the primary match. The heuristics are tuned to one observed
// card layout family; the literal patterns and offsets are intentional.
package classifier

// Record holds the classified contact fields. Fields that no rule matched
// stay empty; the classifier never fails on malformed input.
type Record struct {
	CompanyName  string `json:"company_name"`
	CardHolder   string `json:"card_holder"`
	Designation  string `json:"designation"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Area         string `json:"area"`
	City         string `json:"city"`
	State        string `json:"state"`
	PinCode      string `json:"pin_code"`
}

// Classify maps tokens to a Record. It is deterministic and pure: the same
// token sequence always yields the same record, and an empty sequence yields
// the zero Record.
func Classify(tokens []string) Record {
	rec, _ := run(tokens)
	return rec
}

// ClassifyLabeled is Classify plus, per token, the name of the primary rule
// that consumed it (empty string when none matched). The labels drive the
// field highlighting on the scanned-image overlay.
func ClassifyLabeled(tokens []string) (Record, []string) {
	return run(tokens)
}

func run(tokens []string) (Record, []string) {
	var rec Record
	var mobile mobileNumber
	labels := make([]string, len(tokens))

	// City is a scratch accumulator: later tokens often repeat or refine the
	// address line, so the last matching token wins, not the first.
	city := ""
	state := ""

	for i, tok := range tokens {
		for _, rule := range primaryRules {
			if rule.apply(&rec, &mobile, tokens, i) {
				labels[i] = rule.name
				break
			}
		}

		rec.Area = applyAreaRules(rec.Area, tok)
		city = applyCityRules(city, tok)
		state = applyStateRules(state, tok)
		rec.PinCode = applyPinRules(rec.PinCode, tok)
	}

	rec.MobileNumber = mobile.String()
	rec.City = city
	rec.State = state
	return rec, labels
}
