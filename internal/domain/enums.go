package domain

// PetStatus represents the availability of a pet in the shelter catalog.
type PetStatus string

const (
	PetStatusAvailable   PetStatus = "DISPONIVEL"
	PetStatusInReview    PetStatus = "EM_ANALISE"
	PetStatusAdopted     PetStatus = "ADOTADO"
	PetStatusUnavailable PetStatus = "INDISPONIVEL"
)

func (s PetStatus) String() string { return string(s) }

func (s PetStatus) IsValid() bool {
	switch s {
	case PetStatusAvailable, PetStatusInReview, PetStatusAdopted, PetStatusUnavailable:
		return true
	}
	return false
}

// Label returns the display label; unknown values are shown as-is.
func (s PetStatus) Label() string {
	switch s {
	case PetStatusAvailable:
		return "Disponível"
	case PetStatusInReview:
		return "Em análise"
	case PetStatusAdopted:
		return "Adotado"
	case PetStatusUnavailable:
		return "Indisponível"
	}
	return string(s)
}

// Species represents the kind of animal.
type Species string

const (
	SpeciesDog Species = "CAO"
	SpeciesCat Species = "GATO"
)

func (s Species) String() string { return string(s) }

func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	}
	return false
}

// Label returns the display label. Some producers send CACHORRO for dogs.
func (s Species) Label() string {
	switch s {
	case SpeciesDog, "CACHORRO":
		return "Cachorro"
	case SpeciesCat:
		return "Gato"
	}
	return string(s)
}

// Sex represents the sex of a pet.
type Sex string

const (
	SexMale   Sex = "MACHO"
	SexFemale Sex = "FEMEA"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Macho"
	case SexFemale:
		return "Fêmea"
	}
	return string(s)
}

// AdoptionStatus represents the review state of an adoption request.
type AdoptionStatus string

const (
	AdoptionStatusPending  AdoptionStatus = "PENDENTE"
	AdoptionStatusApproved AdoptionStatus = "APROVADA"
	AdoptionStatusRejected AdoptionStatus = "REJEITADA"
)

func (s AdoptionStatus) String() string { return string(s) }

func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionStatusPending, AdoptionStatusApproved, AdoptionStatusRejected:
		return true
	}
	return false
}

// Message returns the applicant-facing explanation of the status.
func (s AdoptionStatus) Message() string {
	switch s {
	case AdoptionStatusApproved:
		return "Adoção aprovada! Em breve o abrigo entrará em contato para combinar a entrega do seu novo amigo."
	case AdoptionStatusPending:
		return "Sua solicitação está em análise. Aguarde o contato do abrigo para mais informações."
	case AdoptionStatusRejected:
		return "Infelizmente, sua solicitação foi rejeitada. Entre em contato com o abrigo para mais detalhes."
	}
	return "Status desconhecido. Aguarde atualizações."
}

// Role values carried in session tokens.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USUARIO"
)
