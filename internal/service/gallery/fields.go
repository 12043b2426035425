package gallery

import "github.com/heartmarshall/miaudota/internal/domain"

// Ordered key aliases per logical attribute. Upstream producers disagree on
// naming, so every candidate is resolved through this table exactly once,
// when it enters the engine.
var (
	idAliases          = []string{"id", "petId", "_id"}
	nameAliases        = []string{"nome", "name", "petName", "nomePet"}
	descriptionAliases = []string{"descricao", "description", "desc", "sobre"}
	speciesAliases     = []string{"especie", "species", "tipo", "type"}
	sexAliases         = []string{"sexo", "sex", "genero", "gender"}
	statusAliases      = []string{"status", "situacao", "disponibilidade"}
)

// petKey is the key under which adoption records nest their pet.
const petKey = "pet"

// ReadField returns the first present, non-null value among the given keys.
func ReadField(obj map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func readString(obj map[string]any, aliases []string) string {
	v, ok := ReadField(obj, aliases)
	if !ok {
		return ""
	}
	return domain.Stringify(v)
}

// petOf returns the nested pet object of a wrapper record, or the record
// itself when it is a bare pet.
func petOf(obj map[string]any) (map[string]any, bool) {
	if nested, ok := obj[petKey].(map[string]any); ok {
		return nested, true
	}
	return obj, false
}

// Ingest resolves a decoded JSON item into a Candidate. Items that are not
// JSON objects are not candidates.
func Ingest(item any) (domain.Candidate, bool) {
	obj, ok := item.(map[string]any)
	if !ok || obj == nil {
		return domain.Candidate{}, false
	}

	pet, wrapped := petOf(obj)

	c := domain.Candidate{
		ID:          readString(obj, idAliases),
		Name:        readString(pet, nameAliases),
		Description: readString(pet, descriptionAliases),
		Species:     readString(pet, speciesAliases),
		Sex:         readString(pet, sexAliases),
		Raw:         obj,
	}

	// The wrapper's status (adoption state) wins over the pet's own status.
	if v, ok := ReadField(obj, statusAliases); ok {
		c.Status = domain.Stringify(v)
	} else if wrapped {
		c.Status = readString(pet, statusAliases)
	}

	return c, true
}

// IngestAll resolves every object in a decoded JSON array. Anything other
// than an array yields an empty, non-nil slice.
func IngestAll(v any) []domain.Candidate {
	var items []any
	switch x := v.(type) {
	case []any:
		items = x
	case []map[string]any:
		items = make([]any, len(x))
		for i := range x {
			items[i] = x[i]
		}
	default:
		return []domain.Candidate{}
	}

	out := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		if c, ok := Ingest(item); ok {
			out = append(out, c)
		}
	}
	return out
}
