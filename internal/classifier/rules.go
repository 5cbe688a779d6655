package classifier

import (
	"strings"
)

// primaryRule pairs a name with a predicate+action over the token at index i.
// apply reports whether the rule matched; a match consumes the token's
// primary classification, so rule order is the precedence order.
type primaryRule struct {
	name  string
	apply func(rec *Record, mobile *mobileNumber, tokens []string, i int) bool
}

// primaryRules is evaluated top to bottom for every token; the first match
// wins and the remaining rules are skipped for that token.
var primaryRules = []primaryRule{
	{name: "website", apply: ruleWebsite},
	{name: "website_split", apply: ruleWebsiteSplit},
	{name: "email", apply: ruleEmail},
	{name: "mobile_number", apply: ruleMobileNumber},
	{name: "company_name", apply: ruleCompanyLast},
	{name: "card_holder", apply: ruleHolderFirst},
	{name: "designation", apply: ruleDesignationSecond},
}

// ruleWebsite matches a token that already carries a recognizable URL marker.
func ruleWebsite(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	lower := strings.ToLower(tokens[i])
	if !strings.Contains(lower, "www ") && !strings.Contains(lower, "www.") {
		return false
	}
	rec.Website = tokens[i]
	return true
}

// ruleWebsiteSplit handles OCR splitting a URL across two tokens, e.g.
// "WWW" followed by "example.com". The bare "WWW" fragment is joined with
// its neighbor through a literal dot: the previous token when one exists,
// otherwise the next one.
func ruleWebsiteSplit(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	tok := tokens[i]
	if !strings.Contains(tok, "WWW") {
		return false
	}
	switch {
	case i > 0:
		rec.Website = tokens[i-1] + "." + tok
	case len(tokens) > 1:
		rec.Website = tok + "." + tokens[i+1]
	default:
		rec.Website = tok
	}
	return true
}

func ruleEmail(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	if !strings.Contains(tokens[i], "@") {
		return false
	}
	rec.Email = tokens[i]
	return true
}

func ruleMobileNumber(_ *Record, mobile *mobileNumber, tokens []string, i int) bool {
	if !strings.Contains(tokens[i], "-") {
		return false
	}
	mobile.Add(tokens[i])
	return true
}

func ruleCompanyLast(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	if i != len(tokens)-1 {
		return false
	}
	rec.CompanyName = tokens[i]
	return true
}

func ruleHolderFirst(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	if i != 0 {
		return false
	}
	rec.CardHolder = tokens[i]
	return true
}

func ruleDesignationSecond(rec *Record, _ *mobileNumber, tokens []string, i int) bool {
	if i != 1 {
		return false
	}
	rec.Designation = tokens[i]
	return true
}
