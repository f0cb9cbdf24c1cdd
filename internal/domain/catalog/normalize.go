package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// quantity followed by a packaging unit: "20LT", "5 KG", "1 BIG BAG"
	packagedQuantityRe = regexp.MustCompile(`(?i)\s*-?\s*\d+(?:[.,]\d+)?\s*(?:BIG\s*BAGS?|SACAS?|LITROS?|LT|L|KILOS?|KG|GRAMAS?|G|ML)\b\s*-?\s*`)
	packagingWordRe    = regexp.MustCompile(`(?i)\s*-?\s*\b(?:BIG\s*BAGS?|SACAS?|LITROS?|KILOS?|GRAMAS?)\b\s*-?\s*`)
	doubleDashRe       = regexp.MustCompile(`\s*-\s*-\s*`)
	edgeDashRe         = regexp.MustCompile(`^\s*-\s*|\s*-\s*$`)
)

// Normalize uppercases s, strips diacritics and collapses whitespace.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return collapseSpaces(strings.ToUpper(stripped))
}

// NormalizeWithoutPlural normalizes s and drops one trailing "S" when the
// decomposed uppercase form is longer than 3 runes. Combining marks count
// toward that length, so "GÁS" becomes "GA" while "GAS" is kept.
func NormalizeWithoutPlural(s string) string {
	decomposed := collapseSpaces(strings.ToUpper(norm.NFD.String(s)))
	if utf8.RuneCountInString(decomposed) > 3 && strings.HasSuffix(decomposed, "S") {
		decomposed = decomposed[:len(decomposed)-1]
	}
	return Normalize(decomposed)
}

// NormalizeProductName removes packaging terms ("20LT", "BIG BAG", "SACAS")
// so that the same product sold in different packages compares equal.
func NormalizeProductName(s string) string {
	out := collapseSpaces(strings.ToUpper(s))
	out = packagedQuantityRe.ReplaceAllString(out, " ")
	out = packagingWordRe.ReplaceAllString(out, " ")
	out = doubleDashRe.ReplaceAllString(out, " - ")
	out = collapseSpaces(out)
	out = edgeDashRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// ProductKey is the comparison key for product names: packaging removed,
// accents stripped and singularized.
func ProductKey(s string) string {
	return NormalizeWithoutPlural(NormalizeProductName(s))
}

// SameProduct reports whether two product names refer to the same product,
// ignoring packaging, accents and a plural "S". Empty names never match.
func SameProduct(a, b string) bool {
	ka := ProductKey(a)
	return ka != "" && ka == ProductKey(b)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
