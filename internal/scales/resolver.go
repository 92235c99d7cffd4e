package scales

import (
	"github.com/Conceptual-Machines/magda-scales/internal/logger"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

// Spelling selects how a black-key pitch class is spelled.
type Spelling int

const (
	// SpellingAuto prefers sharps when the key or the token is sharp.
	SpellingAuto Spelling = iota
	SpellingSharp
	SpellingFlat
)

func (s Spelling) String() string {
	switch s {
	case SpellingSharp:
		return "sharp"
	case SpellingFlat:
		return "flat"
	default:
		return "auto"
	}
}

func spellingFor(preferSharp bool) Spelling {
	if preferSharp {
		return SpellingSharp
	}
	return SpellingFlat
}

// LetterForDegree resolves a degree token against a key letter. The octave
// component of compound degrees is discarded.
func LetterForDegree(key, token string, spelling Spelling) (string, bool) {
	preferSharp := spelling == SpellingSharp
	if spelling == SpellingAuto {
		// A flat key leaves preferSharp false, same as no preference.
		preferSharp = theory.IsSharp(key) || theory.IsSharp(token)
	}

	keyStep, ok := theory.StepOf(key)
	if !ok {
		logger.Warn("Key letter not found", logger.Fields{"key": key, "tone": token})
		return "", false
	}

	toneStep, err := theory.DegreeToStep(token)
	if err != nil {
		logger.Warn("Degree token not parsed", logger.Fields{"key": key, "tone": token, "error": err.Error()})
		return "", false
	}

	letter, ok := theory.LetterOf(keyStep+toneStep, preferSharp)
	if !ok {
		logger.Warn("No letter for step", logger.Fields{"key": key, "tone": token, "step": theory.Normalize(keyStep + toneStep)})
		return "", false
	}
	return letter, true
}

// degreeBase returns the natural letter a degree is written on in key:
// degree 3 of E is written on G, whatever its accidental.
func degreeBase(key, token string) (string, bool) {
	keyLetter, ok := theory.NormalizeLetter(key)
	if !ok {
		return "", false
	}
	d, err := theory.ParseDegree(token)
	if err != nil {
		return "", false
	}
	return theory.NaturalAt(theory.NaturalIndex(theory.BaseLetter(keyLetter)) + d.Number - 1), true
}

// agreeWithDegree swaps an accidental letter for its enharmonic twin when
// only the twin sits on the degree's own base letter. Naturals are kept.
func agreeWithDegree(key, token, letter string) string {
	if letter == "" || theory.IsNatural(letter) {
		return letter
	}
	want, ok := degreeBase(key, token)
	if !ok || theory.BaseLetter(letter) == want {
		return letter
	}
	twin, ok := LetterForDegree(key, token, spellingFor(!theory.IsSharp(letter)))
	if ok && theory.BaseLetter(twin) == want {
		return twin
	}
	return letter
}

// TonalityLetter names the relative major key of the given scale in key.
// Scale types without a tonality report false.
func TonalityLetter(key, typeName string) (string, bool) {
	t, ok := TypeByName(typeName)
	if !ok || t.Tonality == "" {
		return "", false
	}
	return LetterForDegree(key, t.Tonality, SpellingAuto)
}

// ModeRoot is a declared mode of a scale together with the letter it starts on.
type ModeRoot struct {
	Name   string `json:"name"`
	Start  string `json:"start"`
	Letter string `json:"letter"`
}

// ModeRoots resolves every declared mode of typeName to its starting letter in key.
func ModeRoots(key, typeName string) ([]ModeRoot, error) {
	t, ok := TypeByName(typeName)
	if !ok {
		return nil, errNotFound(typeName)
	}

	roots := make([]ModeRoot, 0, len(t.Modes))
	for _, m := range t.Modes {
		letter, _ := LetterForDegree(key, m.Start, SpellingAuto)
		roots = append(roots, ModeRoot{Name: m.Name, Start: m.Start, Letter: letter})
	}
	return roots, nil
}
