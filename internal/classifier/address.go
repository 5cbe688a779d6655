package classifier

import (
	"regexp"
	"strings"
	"unicode"
)

// Address rule groups. These run on every token independently of the primary
// classification. The patterns mirror one observed card layout family:
// street lines end in "St" followed by the city, the state is a nine-letter
// word trailed by the pin code, and pin codes are six-digit runs.
var (
	reAreaLeadingDigits = regexp.MustCompile(`^[0-9].+, [a-zA-Z]+`)
	reAreaDigitSpace    = regexp.MustCompile(`[0-9] [a-zA-Z]+`)

	reCityAfterStreet    = regexp.MustCompile(`.+St , ([a-zA-Z]+).+`)
	reCityAfterStreetAlt = regexp.MustCompile(`.+St,, ([a-zA-Z]+).+`)
	reCityEastPrefix     = regexp.MustCompile(`^E.*`)

	reStateNineLetters = regexp.MustCompile(`[a-zA-Z]{9} +[0-9]`)
	reStateBeforeSemi  = regexp.MustCompile(`^[0-9].+, [a-zA-Z]+;`)
)

// statePrefixLen and pinOffset are literal constants from the layout family
// the heuristic was tuned on; they are not general.
const (
	statePrefixLen = 9
	pinOffset      = 10
	minPinDigits   = 6
)

// applyAreaRules keeps the first area value found: either the part of a
// "digits, letters" token before the comma, or a whole token containing a
// digit followed by a space and letters.
func applyAreaRules(area, tok string) string {
	if area != "" {
		return area
	}
	if reAreaLeadingDigits.MatchString(tok) {
		return strings.SplitN(tok, ",", 2)[0]
	}
	if reAreaDigitSpace.MatchString(tok) {
		return tok
	}
	return area
}

// applyCityRules folds a token into the city accumulator. The three patterns
// are tried in order and any match overwrites the previous value, so the
// final city is the last match across the whole scan.
func applyCityRules(city, tok string) string {
	if m := reCityAfterStreet.FindStringSubmatch(tok); m != nil {
		return m[1]
	}
	if m := reCityAfterStreetAlt.FindStringSubmatch(tok); m != nil {
		return m[1]
	}
	if m := reCityEastPrefix.FindString(tok); m != "" {
		return m
	}
	return city
}

// applyStateRules keeps the most recent state value: the original kept a
// two-slot list and discarded the earliest entry whenever a second one
// arrived, which reduces to last-match-wins.
func applyStateRules(state, tok string) string {
	if reStateNineLetters.MatchString(tok) {
		if r := []rune(tok); len(r) >= statePrefixLen {
			return string(r[:statePrefixLen])
		}
		return state
	}
	if reStateBeforeSemi.MatchString(tok) {
		if fields := strings.Fields(tok); len(fields) > 0 {
			return fields[len(fields)-1]
		}
	}
	return state
}

// applyPinRules keeps the first non-empty pin value: a token of six or more
// digits verbatim, or the tail of a nine-letters-then-digit token starting
// at the fixed offset (short tokens contribute nothing rather than faulting).
func applyPinRules(pin, tok string) string {
	if pin != "" {
		return pin
	}
	if r := []rune(tok); len(r) >= minPinDigits && allDigits(r) {
		return tok
	}
	if reStateNineLetters.MatchString(tok) {
		if r := []rune(tok); len(r) > pinOffset {
			return string(r[pinOffset:])
		}
	}
	return pin
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}
