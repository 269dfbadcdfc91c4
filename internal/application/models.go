package application

import (
	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/roster"
)

// Principal identifies the authenticated account behind a request.
type Principal struct {
	AccountID string
	IsAdmin   bool
}

// AuthenticateParams carries login input.
type AuthenticateParams struct {
	Email    string
	Password string
}

// AuthenticateResult is a successful login: the account and its new session.
type AuthenticateResult struct {
	Account persistence.Account
	Session persistence.Session
}

// PersonnelInput carries create/update input for a person. Role is the
// comma-joined role tag list as entered.
type PersonnelInput struct {
	Name string
	Role string
}

// PersonnelView is a person together with their work-day pattern, if any.
type PersonnelView struct {
	ID       int64
	Name     string
	Role     string
	WorkDays string
}

// TeamInput carries create/update input for a team.
type TeamInput struct {
	Name     string
	Category string
}

// Configuration is the resolved roster state for one calendar date.
// EntryID is the backing history row id, zero when the teams are the
// synthesized blank fallback. Warning carries the user-facing data
// integrity message when a stored payload could not be decoded.
type Configuration struct {
	Date               string
	EntryID            int64
	Teams              []roster.TeamSnapshot
	AvailablePersonnel []PersonnelView
	Recovered          bool
	Warning            string
}

// SaveConfigurationParams carries the roster state to persist for a date.
type SaveConfigurationParams struct {
	Date  string
	Teams []roster.TeamSnapshot
}

// RandomizeParams carries the roster state to run assignment over.
type RandomizeParams struct {
	Date  string
	Teams []roster.TeamSnapshot
}
