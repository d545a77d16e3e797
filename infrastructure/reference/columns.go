package reference

import (
	"strings"
)

const noColumn = -1

// Columns holds explicit header names from configuration. Empty fields fall back to header heuristics.
type Columns struct {
	Store  string
	Name   string
	City   string
	Area   string
	Target string
}

type columnIndex struct {
	store  int
	name   int
	city   int
	area   int
	target int
}

type tier func(header string) bool

func containsAll(words ...string) tier {
	return func(header string) bool {
		for _, w := range words {
			if !strings.Contains(header, w) {
				return false
			}
		}
		return true
	}
}

var (
	storeTiers = []tier{containsAll("store", "number"), containsAll("code")}
	nameTiers  = []tier{containsAll("outlet"), containsAll("name")}
)

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// resolveColumns maps the header row onto the logical columns. Store and name are mandatory.
func resolveColumns(source string, header []string, explicit Columns) (columnIndex, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	idx := columnIndex{store: noColumn, name: noColumn, city: noColumn, area: noColumn, target: noColumn}
	used := map[int]bool{}

	store, err := resolveMandatory(source, "store", normalized, header, explicit.Store, storeTiers, used)
	if err != nil {
		return idx, err
	}
	idx.store = store
	used[store] = true

	name, err := resolveMandatory(source, "name", normalized, header, explicit.Name, nameTiers, used)
	if err != nil {
		return idx, err
	}
	idx.name = name
	used[name] = true

	idx.city = resolveOptional(normalized, explicit.City, "city", used)
	idx.area = resolveOptional(normalized, explicit.Area, "area", used)
	idx.target = resolveOptional(normalized, explicit.Target, "target", used)

	return idx, nil
}

func resolveMandatory(source, column string, normalized, header []string, explicit string, tiers []tier, used map[int]bool) (int, error) {
	if explicit != "" {
		if i := indexOf(normalized, normalizeHeader(explicit), used); i != noColumn {
			return i, nil
		}
		return noColumn, &MappingError{
			Err:     ErrColumnNotFound,
			Source:  source,
			Column:  column,
			Details: "configured header " + explicit + " is not present",
		}
	}

	for _, match := range tiers {
		var hits []int
		for i, h := range normalized {
			if !used[i] && match(h) {
				hits = append(hits, i)
			}
		}

		switch len(hits) {
		case 0:
			continue
		case 1:
			return hits[0], nil
		default:
			candidates := make([]string, 0, len(hits))
			for _, i := range hits {
				candidates = append(candidates, header[i])
			}
			return noColumn, &MappingError{
				Err:        ErrAmbiguousColumn,
				Source:     source,
				Column:     column,
				Candidates: candidates,
			}
		}
	}

	return noColumn, &MappingError{Err: ErrColumnNotFound, Source: source, Column: column}
}

// resolveOptional takes the explicit header when configured, otherwise the first unused header containing word.
func resolveOptional(normalized []string, explicit, word string, used map[int]bool) int {
	var i int
	if explicit != "" {
		i = indexOf(normalized, normalizeHeader(explicit), used)
	} else {
		i = noColumn
		for j, h := range normalized {
			if !used[j] && strings.Contains(h, word) {
				i = j
				break
			}
		}
	}

	if i != noColumn {
		used[i] = true
	}
	return i
}

func indexOf(normalized []string, want string, used map[int]bool) int {
	for i, h := range normalized {
		if !used[i] && h == want {
			return i
		}
	}
	return noColumn
}
