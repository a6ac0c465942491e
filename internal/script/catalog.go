/**
 * Script catalog - Unicode block ranges for Indic script detection
 *
 * The catalog order is load-bearing: ties in character counts resolve to
 * the earlier entry, so detection stays deterministic across runs.
 */

package script

// ISO is the sentinel script identifier meaning "Latin or unclassified".
// It doubles as the key for the OCR backend's default language.
const ISO = "ISO"

// Span is an inclusive range of Unicode code points.
type Span struct {
	Lo rune
	Hi rune
}

// Range pairs a script identifier with the code point spans that belong to
// it. Spans of different catalog entries must not overlap.
type Range struct {
	Script string
	Spans  []Span
}

// Contains reports whether r falls inside any of the range's spans.
func (sr Range) Contains(r rune) bool {
	for _, s := range sr.Spans {
		if r >= s.Lo && r <= s.Hi {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the ordered catalog of supported scripts. Script
// identifiers follow Aksharamukha naming so they can be passed to the
// transliteration backend unchanged.
func DefaultCatalog() []Range {
	return []Range{
		{Script: "Devanagari", Spans: []Span{{0x0900, 0x097F}}},
		{Script: "Bengali", Spans: []Span{{0x0980, 0x09FF}}},
		{Script: "Gurmukhi", Spans: []Span{{0x0A00, 0x0A7F}}},
		{Script: "Gujarati", Spans: []Span{{0x0A80, 0x0AFF}}},
		{Script: "Oriya", Spans: []Span{{0x0B00, 0x0B7F}}},
		{Script: "Tamil", Spans: []Span{{0x0B80, 0x0BFF}}},
		{Script: "Telugu", Spans: []Span{{0x0C00, 0x0C7F}}},
		{Script: "Kannada", Spans: []Span{{0x0C80, 0x0CFF}}},
		{Script: "Malayalam", Spans: []Span{{0x0D00, 0x0D7F}}},
		{Script: "Sinhala", Spans: []Span{{0x0D80, 0x0DFF}}},
		{Script: ISO, Spans: []Span{{'A', 'Z'}, {'a', 'z'}}},
	}
}

// DefaultLanguageTable maps a script identifier to the Tesseract traineddata
// code used for the language-directed OCR pass. Unmapped scripts fall back
// to the default language.
func DefaultLanguageTable() map[string]string {
	return map[string]string{
		"Devanagari": "hin",
		"Bengali":    "ben",
		"Gurmukhi":   "pan",
		"Gujarati":   "guj",
		"Oriya":      "ori",
		"Tamil":      "tam",
		"Telugu":     "tel",
		"Kannada":    "kan",
		"Malayalam":  "mal",
		"Sinhala":    "sin",
		ISO:          "eng",
	}
}
