package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/roster"
)

var (
	personnelCounter uint64
	teamCounter      uint64
	accountCounter   uint64
)

var referenceTime = time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
// March 18th 2024 is a Monday, so mon-fri and sun-thu personnel are on shift.
func ReferenceTime() time.Time {
	return referenceTime
}

// ReferenceDate returns ReferenceTime formatted as a canonical roster date.
func ReferenceDate() string {
	return referenceTime.Format(roster.CanonicalLayout)
}

// PersonnelOption configures a generated personnel fixture.
type PersonnelOption func(*persistence.Personnel)

// NewPersonnelFixture returns a deterministic personnel record with optional
// overrides. Generated people default to the tester role.
func NewPersonnelFixture(opts ...PersonnelOption) persistence.Personnel {
	idx := atomic.AddUint64(&personnelCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := persistence.Personnel{
		Name:      fmt.Sprintf("Person %03d", idx),
		Role:      "tester",
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithPersonnelName overrides the generated name.
func WithPersonnelName(name string) PersonnelOption {
	return func(p *persistence.Personnel) {
		p.Name = name
	}
}

// WithPersonnelRole overrides the generated role tag list.
func WithPersonnelRole(role string) PersonnelOption {
	return func(p *persistence.Personnel) {
		p.Role = role
	}
}

// TeamOption configures a generated team fixture.
type TeamOption func(*persistence.Team)

// NewTeamFixture returns a deterministic team record with optional overrides.
func NewTeamFixture(opts ...TeamOption) persistence.Team {
	idx := atomic.AddUint64(&teamCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := persistence.Team{
		Name:      fmt.Sprintf("Team %03d", idx),
		Category:  "Xbox",
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithTeamName overrides the generated team name.
func WithTeamName(name string) TeamOption {
	return func(t *persistence.Team) {
		t.Name = name
	}
}

// WithTeamCategory overrides the generated team category.
func WithTeamCategory(category string) TeamOption {
	return func(t *persistence.Team) {
		t.Category = category
	}
}

// AccountOption configures a generated account fixture.
type AccountOption func(*persistence.Account)

// NewAccountFixture returns a deterministic operator account with optional
// overrides.
func NewAccountFixture(opts ...AccountOption) persistence.Account {
	idx := atomic.AddUint64(&accountCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := persistence.Account{
		ID:           fmt.Sprintf("acct-%03d", idx),
		Email:        fmt.Sprintf("operator-%03d@example.com", idx),
		DisplayName:  fmt.Sprintf("Operator %03d", idx),
		PasswordHash: fmt.Sprintf("hash-%03d", idx),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithAccountID overrides the generated account ID.
func WithAccountID(id string) AccountOption {
	return func(a *persistence.Account) {
		a.ID = id
	}
}

// WithAccountEmail overrides the generated email address.
func WithAccountEmail(email string) AccountOption {
	return func(a *persistence.Account) {
		a.Email = email
	}
}

// WithAccountPasswordHash overrides the generated password hash.
func WithAccountPasswordHash(hash string) AccountOption {
	return func(a *persistence.Account) {
		a.PasswordHash = hash
	}
}

// WithAccountAdmin sets the admin flag on the generated fixture.
func WithAccountAdmin(isAdmin bool) AccountOption {
	return func(a *persistence.Account) {
		a.IsAdmin = isAdmin
	}
}

// NewTeamSnapshot builds a roster snapshot for a team with the provided slot
// assignments. Names and roles alternate: NewTeamSnapshot(1, "Alpha", "Alice",
// "lead", "Bob", "tester").
func NewTeamSnapshot(id int64, name string, pairs ...string) roster.TeamSnapshot {
	slots := make([]roster.Slot, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		slots = append(slots, roster.Slot{Name: pairs[i], Role: pairs[i+1]})
	}
	return roster.TeamSnapshot{ID: id, Name: name, Personnel: slots}
}
