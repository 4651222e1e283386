package docs

// snapshot is one complete build. It is never modified after it is stored.
type snapshot struct {
	types      map[string]TypeDoc
	properties []PropertyDoc
	functions  []FunctionDoc

	propertiesByName  map[string][]PropertyDoc
	propertiesByOwner map[string][]PropertyDoc
	functionsByName   map[string][]FunctionDoc
	functionsByOwner  map[string][]FunctionDoc
}

var emptySnapshot = newSnapshot()

func newSnapshot() *snapshot {
	return &snapshot{
		types:             map[string]TypeDoc{},
		propertiesByName:  map[string][]PropertyDoc{},
		propertiesByOwner: map[string][]PropertyDoc{},
		functionsByName:   map[string][]FunctionDoc{},
		functionsByOwner:  map[string][]FunctionDoc{},
	}
}

// categorize buckets the flat lists by name and by owner. It must run after
// the flat lists are complete.
func (s *snapshot) categorize() {
	for _, p := range s.properties {
		s.propertiesByName[p.Name] = append(s.propertiesByName[p.Name], p)
		s.propertiesByOwner[p.Owner] = append(s.propertiesByOwner[p.Owner], p)
	}
	for _, f := range s.functions {
		s.functionsByName[f.Name] = append(s.functionsByName[f.Name], f)
		s.functionsByOwner[f.Owner] = append(s.functionsByOwner[f.Owner], f)
	}
}

func (d *Documentation) current() *snapshot {
	if s := d.snap.Load(); s != nil {
		return s
	}
	return emptySnapshot
}
