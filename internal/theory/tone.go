package theory

import (
	"fmt"
	"strconv"
	"strings"
)

const diatonicDegrees = 7

// Degree is a parsed scale-degree token such as "♭3" or "9".
type Degree struct {
	// Number is the 1-based degree; values above 7 extend into higher octaves.
	Number int
	// Accidentals is the signed semitone offset carried by the token.
	Accidentals int
}

// ParseError reports a degree token without a usable degree number.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid degree token %q: %s", e.Token, e.Reason)
}

// ParseDegree splits a degree token into its number and accidental offset.
// Accidentals may precede or follow the number ("♭3", "3b").
func ParseDegree(token string) (Degree, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, token)
	if digits == "" {
		return Degree{}, &ParseError{Token: token, Reason: "no degree number"}
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		return Degree{}, &ParseError{Token: token, Reason: err.Error()}
	}
	if number < 1 {
		return Degree{}, &ParseError{Token: token, Reason: "degree number must be at least 1"}
	}

	return Degree{Number: number, Accidentals: Accidentals(token)}, nil
}

// Step returns the absolute distance in semitones from the root, including
// octave extension: degree 8 is 12, degree 9 is 14.
func (d Degree) Step() int {
	octaves := (d.Number - 1) / diatonicDegrees
	baseIndex := (d.Number - 1) % diatonicDegrees
	return octaves*StepsPerOctave + naturalSteps[baseIndex] + d.Accidentals
}

// DegreeToStep parses token and returns its distance from the root.
func DegreeToStep(token string) (int, error) {
	d, err := ParseDegree(token)
	if err != nil {
		return 0, err
	}
	return d.Step(), nil
}

// NormalizeToken rewrites the accidentals of a degree token into canonical
// glyphs, keeping their position ("b3" -> "♭3"). Catalog tokens are compared
// by exact string match, so callers normalize before comparing.
func NormalizeToken(token string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(token) {
		if glyph, ok := canonicalGlyphs[r]; ok {
			b.WriteString(glyph)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
