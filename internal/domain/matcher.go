package domain

// AccountMatcher matches accounts by balance. It plugs into argument matchers
// such as testify's mock.MatchedBy(m.Matches).
type AccountMatcher struct {
	expected *Account
}

func NewAccountMatcher(expected *Account) *AccountMatcher {
	return &AccountMatcher{expected: expected}
}

func (m *AccountMatcher) SetExpected(expected *Account) {
	m.expected = expected
}

func (m *AccountMatcher) Matches(actual *Account) bool {
	return m.expected.Equal(actual)
}

func (m *AccountMatcher) String() string {
	if m.expected == nil {
		return "account matching <nil>"
	}
	return "account matching " + m.expected.String()
}
