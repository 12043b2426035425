package domain

import "time"

// Adoption is an adoption request as exposed by the shelter API
// (/adocoes). Pet holds the nested pet object when the record carries one.
type Adoption struct {
	ID            string
	PetID         string
	Status        AdoptionStatus
	Date          string
	Reason        string
	AcceptedTerms bool
	Applicant     Applicant
	Pet           map[string]any

	Raw map[string]any
}

// Applicant is the user that requested an adoption.
type Applicant struct {
	Name  string
	Email string
}

// HasPet reports whether the nested pet object is present.
func (a Adoption) HasPet() bool {
	return len(a.Pet) > 0
}

// AdoptionRequest is a new adoption request submitted by a user.
type AdoptionRequest struct {
	PetID         string
	UserID        string
	Date          time.Time
	Reason        string
	AcceptedTerms bool
	Address       Address
}

// Address is where the applicant lives. Complement is optional.
type Address struct {
	ZipCode    string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Phone      string
}
