package domain

// PetDraft is the writable part of a pet listing, sent when an
// administrator creates or edits a pet. BirthDate is YYYY-MM-DD or empty.
type PetDraft struct {
	Name        string
	BirthDate   string
	Species     Species
	Sex         Sex
	Status      PetStatus
	Description string
}
