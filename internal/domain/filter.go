package domain

import "strings"

// FilterCriteria is one filter pass worth of user constraints.
// An empty field places no constraint on that dimension.
type FilterCriteria struct {
	Query   string
	Status  string
	Species string
	Sex     string
}

// NewFilterCriteria builds criteria from raw input state, trimming every
// value.
func NewFilterCriteria(query, status, species, sex string) FilterCriteria {
	return FilterCriteria{
		Query:   strings.TrimSpace(query),
		Status:  strings.TrimSpace(status),
		Species: strings.TrimSpace(species),
		Sex:     strings.TrimSpace(sex),
	}
}

// IsEmpty reports whether no dimension is constrained.
func (c FilterCriteria) IsEmpty() bool {
	return c.Query == "" && c.Status == "" && c.Species == "" && c.Sex == ""
}

// Params returns the non-empty criteria keyed by their query-parameter
// names (q, status, species, sex).
func (c FilterCriteria) Params() map[string]string {
	params := make(map[string]string, 4)
	if c.Query != "" {
		params["q"] = c.Query
	}
	if c.Status != "" {
		params["status"] = c.Status
	}
	if c.Species != "" {
		params["species"] = c.Species
	}
	if c.Sex != "" {
		params["sex"] = c.Sex
	}
	return params
}
