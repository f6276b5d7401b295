// Package validation gate-keeps a registration draft before it reaches the
// network. Rules are declarative: every rule is evaluated (no short-circuit)
// so a form can show all violations at once. Validation is pure: no I/O,
// no server state; uniqueness checks stay a backend concern.
package validation

import (
	"net/mail"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"userdeck/internal/client/models"
)

// Errors maps a field name to the message for its violated rule. Each field
// appears at most once.
type Errors map[string]string

// Fields returns the violated field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error renders the violations in field-name order.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// rule pairs a field name with its predicate and failure message.
type rule struct {
	field   string
	message string
	ok      func(d models.RegistrationDraft) bool
}

var rules = []rule{
	{
		field:   "name",
		message: "Name must be at least 2 characters",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.Name) >= 2 },
	},
	{
		field:   "mobile",
		message: "Mobile number must be at least 10 digits",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.Mobile) >= 10 },
	},
	{
		field:   "mobile",
		message: "Mobile number must contain only digits",
		ok:      func(d models.RegistrationDraft) bool { return digitsOnly(d.Mobile) },
	},
	{
		field:   "email",
		message: "Invalid email address",
		ok:      func(d models.RegistrationDraft) bool { return emailValid(d.Email) },
	},
	{
		field:   "password",
		message: "Password must be at least 6 characters",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.Password) >= 6 },
	},
	{
		field:   "state",
		message: "State must be at least 2 characters",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.State) >= 2 },
	},
	{
		field:   "city",
		message: "City must be at least 2 characters",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.City) >= 2 },
	},
	{
		field:   "description",
		message: "Description must be at least 10 characters",
		ok:      func(d models.RegistrationDraft) bool { return utf8.RuneCountInString(d.Description) >= 10 },
	},
	// image is optional: no rule.
}

// Validate evaluates every rule against the draft. It returns nil when all
// rules hold, otherwise an Errors value with one entry per violated field;
// the first failing rule wins for a field, so "mobile too short" and
// "mobile not digits" never both appear.
func Validate(d models.RegistrationDraft) error {
	errs := Errors{}
	for _, r := range rules {
		if _, seen := errs[r.field]; seen {
			continue
		}
		if !r.ok(d) {
			errs[r.field] = r.message
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func emailValid(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
