package models

import "time"

// Persona is a single user-research persona card. Every free-text field
// besides Name is optional and stored as NULL when absent.
type Persona struct {
	// ID is the internal unique identifier, assigned by the database.
	ID int64 `json:"id"`

	// UserID references the user that created the persona. It is set
	// once at creation time and never changed by an update.
	UserID int64 `json:"user_id"`

	// Name is the persona's display name. Mandatory.
	Name string `json:"name"`

	Quote       *string `json:"quote"`
	Description *string `json:"description"`
	Attitudes   *string `json:"attitudes"`
	PainPoints  *string `json:"pain_points"`
	JobsNeeds   *string `json:"jobs_needs"`
	Activities  *string `json:"activities"`
	AvatarURL   *string `json:"avatar_url"`

	// CreatedAt is set on insert and immutable afterwards.
	CreatedAt time.Time `json:"created_at"`

	// LastUpdated is refreshed on every successful update.
	LastUpdated time.Time `json:"last_updated"`
}

// TableName returns the name of the database table
// associated with the Persona model.
func (p Persona) TableName() string {
	return "personas"
}

// PersonaPatch carries the fields of a partial persona update. A nil
// field means "leave the stored value unchanged"; the repository turns
// each field into a COALESCE expression so omitted fields keep their
// prior values.
type PersonaPatch struct {
	Name        *string `json:"name"`
	Quote       *string `json:"quote"`
	Description *string `json:"description"`
	Attitudes   *string `json:"attitudes"`
	PainPoints  *string `json:"pain_points"`
	JobsNeeds   *string `json:"jobs_needs"`
	Activities  *string `json:"activities"`
	AvatarURL   *string `json:"avatar_url"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p PersonaPatch) IsEmpty() bool {
	return p.Name == nil && p.Quote == nil && p.Description == nil &&
		p.Attitudes == nil && p.PainPoints == nil && p.JobsNeeds == nil &&
		p.Activities == nil && p.AvatarURL == nil
}
