package scales

import (
	"slices"

	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

// DefaultExtra is the wrap-around count used by callers that render the
// root again after the last degree.
const DefaultExtra = 1

// ScaleLetters spells every degree of the named scale type in key. Entries
// that cannot be resolved are left empty; the rest of the scale is still
// spelled. When extra > 0 the first extra letters are repeated at the end.
func ScaleLetters(key, typeName string, extra int) ([]string, error) {
	t, ok := TypeByName(typeName)
	if !ok {
		return nil, errNotFound(typeName)
	}
	return wrap(spellTones(key, t.Tones), extra), nil
}

// spellTones resolves tones one by one, then runs the adjacent respelling pass.
func spellTones(key string, tones []string) []string {
	keySharp := theory.IsSharp(key)
	values := make([]string, 0, len(tones))
	for _, tone := range tones {
		value, _ := LetterForDegree(key, tone, spellingFor(keySharp || theory.IsSharp(tone)))
		value = agreeWithDegree(key, tone, value)

		// A flat whose natural base was already emitted would name the same
		// base letter twice.
		if theory.IsFlat(value) && slices.Contains(values, theory.BaseLetter(value)) {
			if sharpValue, ok := LetterForDegree(key, tone, SpellingSharp); ok {
				value = sharpValue
			}
		}
		values = append(values, value)
	}
	return respellAdjacent(key, tones, values)
}

// respellAdjacent re-spells a flat degree as sharp when the next degree is
// the natural of the same base letter ("B♭" before "B"). Flat keys are left
// alone. Decisions are taken on the sequence as it was before this pass.
func respellAdjacent(key string, tones, values []string) []string {
	out := slices.Clone(values)
	if theory.IsFlat(key) {
		return out
	}

	for i := 0; i+1 < len(values); i++ {
		value, next := values[i], values[i+1]
		if !theory.IsFlat(value) || next == "" || !theory.IsNatural(next) {
			continue
		}
		if theory.BaseLetter(value) != next {
			continue
		}
		if sharpValue, ok := LetterForDegree(key, tones[i], SpellingSharp); ok {
			out[i] = sharpValue
		}
	}
	return out
}
