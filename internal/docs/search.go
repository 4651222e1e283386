package docs

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Match is one Search hit.
type Match struct {
	Owner       string
	Name        string
	Description string
	// Type is the type-tag for properties and the signature for functions.
	Type       string
	IsFunction bool
}

// Search matches properties and functions whose owner, name or description
// contain every token of query, ignoring case. Results are ordered by owner,
// then name. A limit <= 0 means no limit.
func (d *Documentation) Search(query string, limit int) []Match {
	fold := cases.Fold()
	tokens := tokenize(fold.String(query))
	if len(tokens) == 0 {
		return []Match{}
	}
	s := d.current()

	out := []Match{}
	matches := func(fields ...string) bool {
		blob := fold.String(strings.Join(fields, "\n"))
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				return false
			}
		}
		return true
	}
	for _, p := range s.properties {
		if matches(p.Owner, p.Name, p.Description) {
			out = append(out, Match{Owner: p.Owner, Name: p.Name, Description: p.Description, Type: p.Type})
		}
	}
	for _, f := range s.functions {
		if matches(f.Owner, f.Name, f.Description) {
			out = append(out, Match{Owner: f.Owner, Name: f.Name, Description: f.Description, Type: f.String(), IsFunction: true})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Owner == out[j].Owner {
			return out[i].Name < out[j].Name
		}
		return out[i].Owner < out[j].Owner
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func tokenize(q string) []string {
	return strings.Fields(q)
}
