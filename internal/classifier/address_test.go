package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaRuleLeadingDigitsComma(t *testing.T) {
	area := applyAreaRules("", "12, MainSt")
	assert.Equal(t, "12", area)
}

func TestAreaRuleDigitSpace(t *testing.T) {
	area := applyAreaRules("", "4 Park Lane")
	assert.Equal(t, "4 Park Lane", area)
}

func TestAreaRuleFirstWins(t *testing.T) {
	area := applyAreaRules("", "12 Elm St , Springfield")
	assert.Equal(t, "12 Elm St ", area)

	// A later match must not overwrite the retained value.
	assert.Equal(t, area, applyAreaRules(area, "4 Park Lane"))
}

func TestAreaRuleNoMatch(t *testing.T) {
	assert.Empty(t, applyAreaRules("", "Acme Inc"))
}

func TestCityRuleStreetPattern(t *testing.T) {
	// The trailing .+ in the pattern forces the capture to give up its last
	// letter; the heuristic inherits that quirk deliberately.
	city := applyCityRules("", "12 Elm St , Springfield")
	assert.Equal(t, "Springfiel", city)
}

func TestCityRuleDoubleCommaPattern(t *testing.T) {
	city := applyCityRules("", "12 Elm St,, Springfield TN")
	assert.Equal(t, "Springfield", city)
}

func TestCityRuleEastPrefix(t *testing.T) {
	city := applyCityRules("", "East Ridge")
	assert.Equal(t, "East Ridge", city)
}

func TestCityRuleLastMatchWins(t *testing.T) {
	city := ""
	city = applyCityRules(city, "12 Elm St , Springfield")
	assert.Equal(t, "Springfiel", city)

	city = applyCityRules(city, "East Ridge")
	assert.Equal(t, "East Ridge", city)

	// Non-matching tokens leave the accumulator untouched.
	city = applyCityRules(city, "Acme Inc")
	assert.Equal(t, "East Ridge", city)
}

func TestCityFoldThroughClassify(t *testing.T) {
	rec := Classify([]string{"12 Elm St , Springfield", "East Ridge"})
	assert.Equal(t, "East Ridge", rec.City)
}

func TestStateRuleNineLetters(t *testing.T) {
	state := applyStateRules("", "TamilNadu 600113")
	assert.Equal(t, "TamilNadu", state)
}

func TestStateRuleTrailingSemicolon(t *testing.T) {
	// The last whitespace-delimited word is retained verbatim, semicolon
	// included, mirroring the source heuristic.
	state := applyStateRules("", "12 Anna Salai, Chennai;")
	assert.Equal(t, "Chennai;", state)
}

func TestStateRuleMostRecentWins(t *testing.T) {
	state := applyStateRules("", "TamilNadu 600113")
	state = applyStateRules(state, "Karnataka 560001")
	assert.Equal(t, "Karnataka", state)
}

func TestStateRuleNoMatch(t *testing.T) {
	assert.Equal(t, "kept", applyStateRules("kept", "Acme Inc"))
}

func TestPinRuleAllDigits(t *testing.T) {
	assert.Equal(t, "560001", applyPinRules("", "560001"))
}

func TestPinRuleTooShort(t *testing.T) {
	assert.Empty(t, applyPinRules("", "56001"))
}

func TestPinRuleFixedOffset(t *testing.T) {
	assert.Equal(t, "600113", applyPinRules("", "TamilNadu 600113"))
	assert.Equal(t, "D 6", applyPinRules("", "SPRINGFIELD 6"))
}

func TestPinRuleFirstWins(t *testing.T) {
	pin := applyPinRules("", "560001")
	assert.Equal(t, "560001", applyPinRules(pin, "600113"))
}

func TestPinRuleShortTokenDoesNotFault(t *testing.T) {
	for _, tok := range []string{"", "1", "abc", "ABCDEFGHI", "123456789"} {
		assert.NotPanics(t, func() { applyPinRules("", tok) })
	}
}

func TestPinRuleUnicodeDigits(t *testing.T) {
	// str.isdigit-style semantics: unicode digits count.
	assert.Equal(t, "٠١٢٣٤٥", applyPinRules("", "٠١٢٣٤٥"))
}
