package classifier

// mobileSeparator joins the first and second recognized numbers.
const mobileSeparator = " & "

type mobileState int

const (
	mobileEmpty mobileState = iota
	mobileOne
	mobileJoined
)

// mobileNumber accumulates dash-bearing tokens. It holds at most two: the
// first transition stores the value, the second joins both with the
// separator, and once joined any further number is dropped so it cannot
// corrupt the combined value.
type mobileNumber struct {
	state mobileState
	value string
}

func (m *mobileNumber) Add(tok string) {
	switch m.state {
	case mobileEmpty:
		m.value = tok
		m.state = mobileOne
	case mobileOne:
		m.value = m.value + mobileSeparator + tok
		m.state = mobileJoined
	case mobileJoined:
		// already joined; drop the extra number
	}
}

// String returns the accumulated value: empty, a single number, or two
// numbers joined by the separator.
func (m *mobileNumber) String() string {
	return m.value
}
