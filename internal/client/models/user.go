// Package models defines the client-side data types: user records, session
// state, registration drafts, and image assets.
package models

import "time"

// UserSummary is the client's cached copy of a directory record. The backend
// owns the record; the copy is only ever refreshed by re-fetching, never
// mutated in place.
type UserSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserUpdate carries a partial update for a directory record. Nil fields are
// omitted from the request body; the server owns merge semantics.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
	Email       *string `json:"email,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Mobile == nil && u.Email == nil &&
		u.State == nil && u.City == nil && u.Description == nil && u.Image == nil
}
