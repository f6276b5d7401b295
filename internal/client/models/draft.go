package models

// RegistrationDraft is transient, in-memory form input. It lives from the
// moment the register prompt starts until a single submission attempt; a
// retry rebuilds a fresh draft.
type RegistrationDraft struct {
	Name        string
	Mobile      string
	Email       string
	Password    string
	State       string
	City        string
	Description string

	// ImagePath is the optional local file to attach as a profile picture.
	ImagePath string
}
