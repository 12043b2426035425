package domain

// Candidate is one gallery item (a bare pet or an adoption record wrapping
// a pet) resolved into a single canonical shape. Empty fields mean the
// upstream record did not carry the attribute.
type Candidate struct {
	ID          string
	Name        string
	Description string
	Species     string
	Sex         string
	Status      string

	// Raw is the decoded upstream object, re-emitted unchanged.
	Raw map[string]any
}

// SearchText is the haystack for free-text queries.
func (c Candidate) SearchText() string {
	switch {
	case c.Name == "":
		return c.Description
	case c.Description == "":
		return c.Name
	default:
		return c.Name + " " + c.Description
	}
}

// RawItems returns the upstream objects of the given candidates, in order.
func RawItems(items []Candidate) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, c := range items {
		out = append(out, c.Raw)
	}
	return out
}
