package models

// Session is the authenticated-identity state of one client process.
// Invariant: Authenticated implies Token and User.ID are non-empty; the
// session store enforces this by treating any partial record as
// unauthenticated.
type Session struct {
	Authenticated bool
	Token         string
	User          UserSummary
}

// Unauthenticated returns the zero session used whenever the durable store
// is missing, partial, or unreadable.
func Unauthenticated() Session {
	return Session{}
}

// Valid reports whether the session satisfies the authenticated-state
// invariant.
func (s Session) Valid() bool {
	if !s.Authenticated {
		return true
	}
	return s.Token != "" && s.User.ID != ""
}
