package theory

import (
	"strings"
	"unicode/utf8"
)

// Canonical accidental glyphs. Letters and degree tokens produced by this
// package always use these; the ASCII forms are accepted on input only.
const (
	Flat        = "♭"
	Sharp       = "♯"
	DoubleFlat  = "𝄫"
	DoubleSharp = "𝄪"
)

// accidentalValues maps every accepted accidental rune to its signed
// semitone contribution. Lowercase 'b' and 'x' are the ASCII spellings of
// flat and double sharp; letters are always uppercase so they never clash.
var accidentalValues = map[rune]int{
	'b': -1,
	'♭': -1,
	'#': 1,
	'♯': 1,
	'x': 2,
	'𝄪': 2,
	'𝄫': -2,
}

var canonicalGlyphs = map[rune]string{
	'b': Flat,
	'♭': Flat,
	'#': Sharp,
	'♯': Sharp,
	'x': DoubleSharp,
	'𝄪': DoubleSharp,
	'𝄫': DoubleFlat,
}

var asciiReplacer = strings.NewReplacer(
	Flat, "b",
	Sharp, "#",
	DoubleSharp, "x",
	DoubleFlat, "bb",
)

// IsFlat reports whether s (a letter or a degree token) carries a flat marker.
func IsFlat(s string) bool {
	return strings.ContainsAny(s, "b♭𝄫")
}

// IsSharp reports whether s carries a sharp marker.
func IsSharp(s string) bool {
	return strings.ContainsAny(s, "#♯x𝄪")
}

// IsNatural reports whether s carries neither a flat nor a sharp marker.
func IsNatural(s string) bool {
	return !IsFlat(s) && !IsSharp(s)
}

// Accidentals returns the signed sum of every accidental in s. Mixed
// markers are tolerated and simply cancel; unknown runes are ignored.
func Accidentals(s string) int {
	diff := 0
	for _, r := range s {
		diff += accidentalValues[r]
	}
	return diff
}

// NormalizeLetter converts a spelled letter in either alphabet ("bb", "F#",
// "B♭") to its canonical form. The base letter is case-insensitive.
func NormalizeLetter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return "", false
	}
	base := strings.ToUpper(string(first))
	if base < "A" || base > "G" {
		return "", false
	}

	var b strings.Builder
	b.WriteString(base)
	for _, r := range s[size:] {
		glyph, ok := canonicalGlyphs[r]
		if !ok {
			return "", false
		}
		b.WriteString(glyph)
	}
	return b.String(), true
}

// ASCII renders canonical glyphs in s with their ASCII spelling ("B♭" -> "Bb").
func ASCII(s string) string {
	return asciiReplacer.Replace(s)
}

// BaseLetter returns the natural letter a spelling is built on ("B♭" -> "B").
func BaseLetter(letter string) string {
	if letter == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(letter)
	return string(r)
}
