package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Policyholder is a person named on a policy.
type Policyholder struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// NewPolicyholder validates and constructs a Policyholder. The date of birth
// must not be after today (per the supplied clock).
func NewPolicyholder(clock Clock, firstName, lastName string, dateOfBirth time.Time) (Policyholder, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return Policyholder{}, NewError("policyholder.invalid_name", "First and last names are required.")
	}
	if DateOnly(dateOfBirth).After(clock.Today()) {
		return Policyholder{}, NewError("policyholder.invalid_dob", "Date of birth cannot be in the future.")
	}
	return Policyholder{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: DateOnly(dateOfBirth),
	}, nil
}

// AgeAt returns the holder's age in whole years on the given date, adjusting
// for a birthday that has not yet occurred in that year.
func (ph Policyholder) AgeAt(date time.Time) int {
	date = DateOnly(date)
	age := date.Year() - ph.DateOfBirth.Year()
	if ph.DateOfBirth.After(date.AddDate(-age, 0, 0)) {
		age--
	}
	return age
}
