package adoption

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// SubmitInput holds an adoption request as typed by the applicant.
type SubmitInput struct {
	PetID         string
	UserID        string
	Date          time.Time
	Reason        string
	AcceptedTerms bool
	Address       AddressInput
}

// AddressInput is the applicant's address. Complement is optional.
type AddressInput struct {
	ZipCode    string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Phone      string
}

// Validate checks all fields and collects all errors.
func (i *SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.PetID) == "" {
		errs = append(errs, domain.FieldError{Field: "pet_id", Message: "required"})
	}
	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if utf8.RuneCountInString(i.Reason) > 2000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long (max 2000)"})
	}
	if !i.AcceptedTerms {
		errs = append(errs, domain.FieldError{Field: "accepted_terms", Message: "the adoption terms must be accepted"})
	}

	errs = append(errs, i.Address.validate()...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (a *AddressInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	if !isDigits(zipDigits(a.ZipCode), 8) {
		errs = append(errs, domain.FieldError{Field: "address.zip_code", Message: "must have 8 digits"})
	}
	required := []struct {
		field string
		value string
	}{
		{"address.street", a.Street},
		{"address.number", a.Number},
		{"address.district", a.District},
		{"address.city", a.City},
		{"address.phone", a.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "required"})
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(a.State)) != 2 {
		errs = append(errs, domain.FieldError{Field: "address.state", Message: "must have 2 letters"})
	}
	return errs
}

func (i *SubmitInput) request() domain.AdoptionRequest {
	a := i.Address
	return domain.AdoptionRequest{
		PetID:         strings.TrimSpace(i.PetID),
		UserID:        strings.TrimSpace(i.UserID),
		Date:          i.Date,
		Reason:        strings.TrimSpace(i.Reason),
		AcceptedTerms: i.AcceptedTerms,
		Address: domain.Address{
			ZipCode:    zipDigits(a.ZipCode),
			Street:     strings.TrimSpace(a.Street),
			Number:     strings.TrimSpace(a.Number),
			Complement: strings.TrimSpace(a.Complement),
			District:   strings.TrimSpace(a.District),
			City:       strings.TrimSpace(a.City),
			State:      strings.ToUpper(strings.TrimSpace(a.State)),
			Phone:      strings.TrimSpace(a.Phone),
		},
	}
}

// zipDigits drops the usual CEP separators.
func zipDigits(s string) string {
	return strings.NewReplacer("-", "", ".", "", " ", "").Replace(s)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
