package pet

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/miaudota/internal/domain"
)

const (
	minNameLen        = 2
	minDescriptionLen = 10
	maxDescriptionLen = 500
)

// CreateInput holds a new pet listing.
type CreateInput struct {
	Name        string
	BirthDate   string
	Species     string
	Sex         string
	Status      string
	Description string
}

// UpdateInput holds the fields to change on a pet listing. Nil fields keep
// their current value.
type UpdateInput struct {
	Name        *string
	BirthDate   *string
	Species     *string
	Sex         *string
	Status      *string
	Description *string
}

// Validate checks all fields and collects all errors. now bounds the
// birth date.
func (i *CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	errs = appendIf(errs, checkName(i.Name))
	errs = appendIf(errs, checkBirthDate(i.BirthDate, now))
	errs = appendIf(errs, checkSpecies(i.Species))
	errs = appendIf(errs, checkSex(i.Sex))
	errs = appendIf(errs, checkStatus(i.Status))
	errs = appendIf(errs, checkDescription(i.Description))

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Validate checks the fields that are set and collects all errors.
func (i *UpdateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = appendIf(errs, checkName(*i.Name))
	}
	if i.BirthDate != nil {
		errs = appendIf(errs, checkBirthDate(*i.BirthDate, now))
	}
	if i.Species != nil {
		errs = appendIf(errs, checkSpecies(*i.Species))
	}
	if i.Sex != nil {
		errs = appendIf(errs, checkSex(*i.Sex))
	}
	if i.Status != nil {
		errs = appendIf(errs, checkStatus(*i.Status))
	}
	if i.Description != nil {
		errs = appendIf(errs, checkDescription(*i.Description))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IsEmpty reports whether no field is set.
func (i *UpdateInput) IsEmpty() bool {
	return i.Name == nil && i.BirthDate == nil && i.Species == nil &&
		i.Sex == nil && i.Status == nil && i.Description == nil
}

func (i *CreateInput) draft() domain.PetDraft {
	return domain.PetDraft{
		Name:        strings.TrimSpace(i.Name),
		BirthDate:   strings.TrimSpace(i.BirthDate),
		Species:     parseSpecies(i.Species),
		Sex:         domain.Sex(code(i.Sex)),
		Status:      domain.PetStatus(code(i.Status)),
		Description: strings.TrimSpace(i.Description),
	}
}

// apply overlays the set fields on cur.
func (i *UpdateInput) apply(cur CreateInput) CreateInput {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cur.Name, i.Name)
	set(&cur.BirthDate, i.BirthDate)
	set(&cur.Species, i.Species)
	set(&cur.Sex, i.Sex)
	set(&cur.Status, i.Status)
	set(&cur.Description, i.Description)
	return cur
}

func appendIf(errs []domain.FieldError, fe *domain.FieldError) []domain.FieldError {
	if fe == nil {
		return errs
	}
	return append(errs, *fe)
}

func code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// parseSpecies reads a species code. CACHORRO is accepted for dogs.
func parseSpecies(s string) domain.Species {
	if c := code(s); c != "CACHORRO" {
		return domain.Species(c)
	}
	return domain.SpeciesDog
}

func checkName(name string) *domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLen {
		return &domain.FieldError{Field: "name", Message: "too short (min 2)"}
	}
	return nil
}

func checkBirthDate(s string, now time.Time) *domain.FieldError {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return &domain.FieldError{Field: "birth_date", Message: "must be YYYY-MM-DD"}
	}
	if d.After(now) {
		return &domain.FieldError{Field: "birth_date", Message: "cannot be in the future"}
	}
	return nil
}

func checkSpecies(s string) *domain.FieldError {
	if !parseSpecies(s).IsValid() {
		return &domain.FieldError{Field: "species", Message: "must be CAO or GATO"}
	}
	return nil
}

func checkSex(s string) *domain.FieldError {
	if !domain.Sex(code(s)).IsValid() {
		return &domain.FieldError{Field: "sex", Message: "must be MACHO or FEMEA"}
	}
	return nil
}

func checkStatus(s string) *domain.FieldError {
	if !domain.PetStatus(code(s)).IsValid() {
		return &domain.FieldError{Field: "status", Message: "must be DISPONIVEL, EM_ANALISE, ADOTADO or INDISPONIVEL"}
	}
	return nil
}

func checkDescription(s string) *domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n < minDescriptionLen:
		return &domain.FieldError{Field: "description", Message: "too short (min 10)"}
	case n > maxDescriptionLen:
		return &domain.FieldError{Field: "description", Message: "too long (max 500)"}
	}
	return nil
}
