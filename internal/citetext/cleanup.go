package citetext

import (
	"regexp"
	"strconv"
	"strings"
)

// unicodeEscapeRegex matches "<U+XXXX>" style escapes.
var unicodeEscapeRegex = regexp.MustCompile(`<U\+([0-9A-Fa-f]{4,6})>`)

// htmlTagRegex strips any "<...>" markup left after escape/entity decoding.
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// numericEntityRegex matches "&#NN;" numeric HTML entities.
var numericEntityRegex = regexp.MustCompile(`&#(\d+);`)

var namedEntities = map[string]string{
	"&lt;":   "<",
	"&gt;":   ">",
	"&amp;":  "&",
	"&quot;": `"`,
	"&apos;": "'",
}

// greekToASCII maps Greek letters (and the German sharp s, handled the
// same way as a Greek-style ligature substitution) to their closest
// ASCII equivalent, for comparison-only normalization.
var greekToASCII = map[rune]rune{
	'α': 'a', 'Α': 'a',
	'β': 'b', 'Β': 'b', 'ß': 'b',
	'γ': 'g', 'Γ': 'g',
	'δ': 'd', 'Δ': 'd',
	'ε': 'e', 'Ε': 'e',
	'ζ': 'z', 'Ζ': 'z',
	'η': 'e', 'Η': 'e',
	'θ': 't', 'Θ': 't',
	'ι': 'i', 'Ι': 'i',
	'κ': 'k', 'Κ': 'k',
	'λ': 'l', 'Λ': 'l',
	'μ': 'm', 'Μ': 'm',
	'ν': 'n', 'Ν': 'n',
	'ξ': 'x', 'Ξ': 'x',
	'ο': 'o', 'Ο': 'o',
	'π': 'p', 'Π': 'p',
	'ρ': 'r', 'Ρ': 'r',
	'σ': 's', 'ς': 's', 'Σ': 's',
	'τ': 't', 'Τ': 't',
	'υ': 'u', 'Υ': 'u',
	'φ': 'f', 'Φ': 'f',
	'χ': 'x', 'Χ': 'x',
	'ψ': 'p', 'Ψ': 'p',
	'ω': 'o', 'Ω': 'o',
}

// decodeUnicodeEscapes replaces "<U+XXXX>" escapes with their code point.
func decodeUnicodeEscapes(s string) string {
	return unicodeEscapeRegex.ReplaceAllStringFunc(s, func(m string) string {
		sub := unicodeEscapeRegex.FindStringSubmatch(m)
		code, err := strconv.ParseInt(sub[1], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
}

// decodeHTMLEntities replaces the standard named entities and numeric
// "&#NN;" entities with their literal characters.
func decodeHTMLEntities(s string) string {
	for entity, repl := range namedEntities {
		s = strings.ReplaceAll(s, entity, repl)
	}
	return numericEntityRegex.ReplaceAllStringFunc(s, func(m string) string {
		sub := numericEntityRegex.FindStringSubmatch(m)
		code, err := strconv.Atoi(sub[1])
		if err != nil {
			return m
		}
		return string(rune(code))
	})
}

// stripTags removes any "<...>" markup.
func stripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// StripMarkup decodes HTML entities and then strips any real markup
// tags, trimming the result. Entities are decoded before tags are
// stripped so that an entity-encoded tag like "&lt;sub&gt;" is treated
// as markup, the same as a literal "<sub>" would be. It does not
// perform the Greek-to-ASCII or "<U+XXXX>" comparison-only
// substitutions that CleanForComparison applies.
func StripMarkup(s string) string {
	s = decodeHTMLEntities(s)
	s = stripTags(s)
	return strings.TrimSpace(s)
}

// CleanForComparison is used only by the deduplicator's normalization
// pipeline; it is never applied to stored Citation fields. It decodes
// "<U+XXXX>" escapes, decodes HTML entities, strips HTML markup (in
// that order, so an entity-encoded tag like "&lt;sub&gt;" is treated as
// markup once decoded), and maps Greek letters (and German ß) to ASCII
// equivalents.
func CleanForComparison(s string) string {
	s = decodeUnicodeEscapes(s)
	s = decodeHTMLEntities(s)
	s = stripTags(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := greekToASCII[r]; ok {
			b.WriteRune(repl)
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
