package catalog

// SynonymTable maps a canonical class name to its accepted aliases.
// Lookups are symmetric: any member of a group resolves to the whole group.
type SynonymTable map[string][]string

// DefaultSynonyms is the built-in table for calendar class abbreviations.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"TS": {"TRAT. SEMENTES", "TRAT SEMENTES", "TRATAMENTO DE SEMENTES", "TRATAMENTO SEMENTES"},
	}
}

// Merge returns a new table with the aliases of other appended to t.
func (t SynonymTable) Merge(other SynonymTable) SynonymTable {
	out := make(SynonymTable, len(t)+len(other))
	for k, v := range t {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range other {
		out[k] = append(out[k], v...)
	}
	return out
}

// groups builds normalized name -> normalized group members.
func (t SynonymTable) groups() map[string][]string {
	index := make(map[string][]string)
	for canonical, aliases := range t {
		members := []string{Normalize(canonical)}
		for _, a := range aliases {
			members = append(members, Normalize(a))
		}
		for _, m := range members {
			index[m] = appendUnique(index[m], members...)
		}
	}
	return index
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, d := range dst {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
