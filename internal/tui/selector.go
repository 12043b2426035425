package tui

import "github.com/heartmarshall/miaudota/internal/domain"

type option struct {
	value string
	label string
}

// selector is a cyclic single-choice field. The first option is always
// "any" (empty value).
type selector struct {
	name    string
	options []option
	idx     int
}

func (s *selector) value() string { return s.options[s.idx].value }
func (s *selector) label() string { return s.options[s.idx].label }

func (s *selector) move(delta int) {
	n := len(s.options)
	s.idx = ((s.idx+delta)%n + n) % n
}

func (s *selector) reset() { s.idx = 0 }

const anyLabel = "Todos"

func statusSelector() selector {
	return selector{name: "Status", options: []option{
		{"", anyLabel},
		{domain.PetStatusAvailable.String(), domain.PetStatusAvailable.Label()},
		{domain.PetStatusInReview.String(), domain.PetStatusInReview.Label()},
		{domain.PetStatusAdopted.String(), domain.PetStatusAdopted.Label()},
		{domain.PetStatusUnavailable.String(), domain.PetStatusUnavailable.Label()},
	}}
}

func speciesSelector() selector {
	return selector{name: "Espécie", options: []option{
		{"", anyLabel},
		{domain.SpeciesDog.String(), domain.SpeciesDog.Label()},
		{domain.SpeciesCat.String(), domain.SpeciesCat.Label()},
	}}
}

func sexSelector() selector {
	return selector{name: "Sexo", options: []option{
		{"", anyLabel},
		{domain.SexMale.String(), domain.SexMale.Label()},
		{domain.SexFemale.String(), domain.SexFemale.Label()},
	}}
}
