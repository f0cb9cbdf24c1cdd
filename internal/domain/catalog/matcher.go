package catalog

import (
	"strings"

	"github.com/schollz/closestmatch"
)

// ClassOthers is the catch-all calendar class that accepts every product.
const ClassOthers = "OUTROS"

// minFuzzyPrefix is how many leading characters a fuzzy candidate must share
// with the input before it is accepted.
const minFuzzyPrefix = 4

type MatchConfidence string

const (
	ConfidenceNone      MatchConfidence = "none"
	ConfidenceHeuristic MatchConfidence = "heuristic"
	ConfidenceSynonym   MatchConfidence = "synonym"
	ConfidenceExact     MatchConfidence = "exact"
)

// MatchResult is the outcome of matching free text against catalog groups.
// Group holds the catalog spelling, not the normalized form.
type MatchResult struct {
	Group      string          `json:"group,omitempty"`
	Confidence MatchConfidence `json:"confidence"`
}

func (r MatchResult) Matched() bool {
	return r.Confidence != ConfidenceNone && r.Confidence != ""
}

// AutoApply reports whether the match is strong enough to fill a form
// field without asking the user.
func (r MatchResult) AutoApply() bool {
	return r.Confidence == ConfidenceExact || r.Confidence == ConfidenceSynonym
}

// ClassMatcher resolves a free-text class against the known catalog groups.
type ClassMatcher interface {
	MatchClass(candidate string, groups []string) MatchResult
}

// Matcher implements ClassMatcher with a synonym table. It is safe for concurrent use.
type Matcher struct {
	synonyms map[string][]string
}

func NewMatcher(table SynonymTable) *Matcher {
	if table == nil {
		table = DefaultSynonyms()
	}
	return &Matcher{synonyms: table.groups()}
}

// MatchClass tries, in order: exact normalized equality, the text before a
// "-" delimiter, the synonym table, plural-insensitive equality and finally
// the closest fuzzy candidate.
func (m *Matcher) MatchClass(candidate string, groups []string) MatchResult {
	n := Normalize(candidate)
	if n == "" || len(groups) == 0 {
		return MatchResult{Confidence: ConfidenceNone}
	}

	byNorm := make(map[string]string, len(groups))
	for _, g := range groups {
		gn := Normalize(g)
		if gn == "" {
			continue
		}
		if _, exists := byNorm[gn]; !exists {
			byNorm[gn] = g
		}
	}

	if g, ok := byNorm[n]; ok {
		return MatchResult{Group: g, Confidence: ConfidenceExact}
	}

	keys := []string{n}
	if prefix, _, found := strings.Cut(n, "-"); found {
		prefix = strings.TrimSpace(prefix)
		if g, ok := byNorm[prefix]; ok {
			return MatchResult{Group: g, Confidence: ConfidenceHeuristic}
		}
		if prefix != "" {
			keys = append(keys, prefix)
		}
	}

	for _, k := range keys {
		for _, syn := range m.synonyms[k] {
			if g, ok := byNorm[syn]; ok {
				return MatchResult{Group: g, Confidence: ConfidenceSynonym}
			}
		}
	}

	for _, k := range keys {
		singular := NormalizeWithoutPlural(k)
		for _, g := range groups {
			if Normalize(g) != "" && NormalizeWithoutPlural(g) == singular {
				return MatchResult{Group: g, Confidence: ConfidenceHeuristic}
			}
		}
	}

	if g, ok := fuzzyGroup(n, byNorm); ok {
		return MatchResult{Group: g, Confidence: ConfidenceHeuristic}
	}

	return MatchResult{Confidence: ConfidenceNone}
}

func fuzzyGroup(n string, byNorm map[string]string) (string, bool) {
	if len(n) < minFuzzyPrefix || len(byNorm) == 0 {
		return "", false
	}
	names := make([]string, 0, len(byNorm))
	for gn := range byNorm {
		names = append(names, gn)
	}
	best := closestmatch.New(names, []int{3, 4}).Closest(n)
	if best == "" || commonPrefixLen(n, best) < minFuzzyPrefix {
		return "", false
	}
	return byNorm[best], true
}

func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// InferClass guesses a pesticide's calendar class from its catalog group.
func (m *Matcher) InferClass(p Pesticide, classes []string) MatchResult {
	if strings.TrimSpace(p.Group) == "" {
		return MatchResult{Confidence: ConfidenceNone}
	}
	return m.MatchClass(p.Group, classes)
}

// FilterProducts narrows the catalog to products of the given class and
// removes products already chosen for the same target and application.
// A product belongs to a class when its group equals the class or one of
// its synonyms, or when its item, brand or active ingredient contains it.
// An empty class or OUTROS keeps every product.
func (m *Matcher) FilterProducts(products []Pesticide, class string, chosen []string) []Pesticide {
	clsNorm := Normalize(class)
	needles := []string{clsNorm}
	if syn, ok := m.synonyms[clsNorm]; ok {
		needles = appendUnique(needles, syn...)
	}

	chosenKeys := make([]string, 0, len(chosen))
	for _, c := range chosen {
		if k := ProductKey(c); k != "" {
			chosenKeys = append(chosenKeys, k)
		}
	}

	out := make([]Pesticide, 0, len(products))
	for _, p := range products {
		if clsNorm != "" && clsNorm != ClassOthers && !belongsToClass(p, needles) {
			continue
		}
		if alreadyChosen(ProductKey(p.Item), chosenKeys) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func belongsToClass(p Pesticide, needles []string) bool {
	group := Normalize(p.Group)
	item := Normalize(p.Item)
	brand := Normalize(p.Brand)
	ingredient := Normalize(p.ActiveIngredient)

	for _, n := range needles {
		if group == n || strings.Contains(item, n) || strings.Contains(brand, n) || strings.Contains(ingredient, n) {
			return true
		}
	}
	return false
}

func alreadyChosen(key string, chosenKeys []string) bool {
	if key == "" {
		return false
	}
	for _, ck := range chosenKeys {
		if strings.Contains(key, ck) || strings.Contains(ck, key) {
			return true
		}
	}
	return false
}
