package scales

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-scales/internal/logger"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

// ErrNotFound is returned (wrapped) when a scale type cannot be resolved.
var ErrNotFound = errors.New("not found")

func errNotFound(name string) error {
	return fmt.Errorf("scale type %q: %w", name, ErrNotFound)
}

// Mode declares that starting a scale's pitch collection at Start yields
// the scale type called Name.
type Mode struct {
	Name  string `json:"name"`
	Start string `json:"start"`
}

// Reference is an informational cross-reference to another scale type.
type Reference struct {
	Name string `json:"name"`
}

// ScaleType is an immutable catalog entry.
type ScaleType struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	// Tones are degree tokens in ascending scale order.
	Tones []string `json:"tones"`
	// Tonality is the degree naming the relative major key; empty when unset.
	Tonality string      `json:"tonality,omitempty"`
	Modes    []Mode      `json:"modes,omitempty"`
	Included []Reference `json:"included,omitempty"`
}

func (t ScaleType) clone() ScaleType {
	t.Aliases = append([]string(nil), t.Aliases...)
	t.Tones = append([]string(nil), t.Tones...)
	t.Modes = append([]Mode(nil), t.Modes...)
	t.Included = append([]Reference(nil), t.Included...)
	return t
}

var scaleTypes = []ScaleType{
	{
		Name:     "major",
		Aliases:  []string{"ionian"},
		Tones:    []string{"1", "2", "3", "4", "5", "6", "7"},
		Tonality: "1",
		Modes: []Mode{
			{Name: "dorian", Start: "2"},
			{Name: "phrygian", Start: "3"},
			{Name: "lydian", Start: "4"},
			{Name: "mixolydian", Start: "5"},
			{Name: "minor", Start: "6"},
			{Name: "locrian", Start: "7"},
		},
	},
	{
		Name:     "dorian",
		Tones:    []string{"1", "2", "♭3", "4", "5", "6", "♭7"},
		Tonality: "♭7",
		Modes: []Mode{
			{Name: "phrygian", Start: "2"},
			{Name: "lydian", Start: "♭3"},
			{Name: "mixolydian", Start: "4"},
			{Name: "minor", Start: "5"},
			{Name: "locrian", Start: "6"},
			{Name: "major", Start: "♭7"},
		},
	},
	{
		Name:     "phrygian",
		Tones:    []string{"1", "♭2", "♭3", "4", "5", "♭6", "♭7"},
		Tonality: "♭6",
		Modes: []Mode{
			{Name: "lydian", Start: "♭2"},
			{Name: "mixolydian", Start: "♭3"},
			{Name: "minor", Start: "4"},
			{Name: "locrian", Start: "5"},
			{Name: "major", Start: "♭6"},
			{Name: "dorian", Start: "♭7"},
		},
	},
	{
		Name:     "lydian",
		Tones:    []string{"1", "2", "3", "♯4", "5", "6", "7"},
		Tonality: "5",
		Modes: []Mode{
			{Name: "mixolydian", Start: "2"},
			{Name: "minor", Start: "3"},
			{Name: "locrian", Start: "♯4"},
			{Name: "major", Start: "5"},
			{Name: "dorian", Start: "6"},
			{Name: "phrygian", Start: "7"},
		},
	},
	{
		Name:     "mixolydian",
		Aliases:  []string{"dominant"},
		Tones:    []string{"1", "2", "3", "4", "5", "6", "♭7"},
		Tonality: "4",
		Modes: []Mode{
			{Name: "minor", Start: "2"},
			{Name: "locrian", Start: "3"},
			{Name: "major", Start: "4"},
			{Name: "dorian", Start: "5"},
			{Name: "phrygian", Start: "6"},
			{Name: "lydian", Start: "♭7"},
		},
	},
	{
		Name:     "minor",
		Aliases:  []string{"aeolian"},
		Tones:    []string{"1", "2", "♭3", "4", "5", "♭6", "♭7"},
		Tonality: "♭3",
		Modes: []Mode{
			{Name: "locrian", Start: "2"},
			{Name: "major", Start: "♭3"},
			{Name: "dorian", Start: "4"},
			{Name: "phrygian", Start: "5"},
			{Name: "lydian", Start: "♭6"},
			{Name: "mixolydian", Start: "♭7"},
		},
	},
	{
		Name:     "locrian",
		Tones:    []string{"1", "♭2", "♭3", "4", "♭5", "♭6", "♭7"},
		Tonality: "♭2",
		Modes: []Mode{
			{Name: "major", Start: "♭2"},
			{Name: "dorian", Start: "♭3"},
			{Name: "phrygian", Start: "4"},
			{Name: "lydian", Start: "♭5"},
			{Name: "mixolydian", Start: "♭6"},
			{Name: "minor", Start: "♭7"},
		},
	},
	{
		Name:     "jazz minor",
		Aliases:  []string{"melodic minor ascending"},
		Tones:    []string{"1", "2", "♭3", "4", "5", "6", "7"},
		Tonality: "1",
	},
	{
		Name:     "harmonic minor",
		Tones:    []string{"1", "2", "♭3", "4", "5", "♭6", "7"},
		Tonality: "♭3",
		Modes: []Mode{
			{Name: "romanian minor", Start: "2"},
			{Name: "phrygian dominant", Start: "5"},
		},
	},
	{
		Name:     "romanian minor",
		Aliases:  []string{"dorian ♯4"},
		Tones:    []string{"1", "2", "♭3", "♯4", "5", "6", "♭7"},
		Tonality: "♭7",
		Modes: []Mode{
			{Name: "phrygian dominant", Start: "♯4"},
			{Name: "harmonic minor", Start: "♭7"},
		},
	},
	{
		Name:     "phrygian dominant",
		Aliases:  []string{"freygish"},
		Tones:    []string{"1", "♭2", "3", "4", "5", "♭6", "♭7"},
		Tonality: "♭6",
		Modes: []Mode{
			{Name: "harmonic minor", Start: "4"},
			{Name: "romanian minor", Start: "5"},
		},
	},
	{
		Name:     "double harmonic major",
		Aliases:  []string{"byzantine", "arabic", "gipsy major"},
		Tones:    []string{"1", "♭2", "3", "4", "5", "♭6", "7"},
		Tonality: "1",
		Modes: []Mode{
			{Name: "double harmonic minor", Start: "4"},
			{Name: "oriental", Start: "5"},
		},
	},
	{
		Name:     "double harmonic minor",
		Aliases:  []string{"hungarian minor", "gipsy minor"},
		Tones:    []string{"1", "2", "♭3", "♯4", "5", "♭6", "7"},
		Tonality: "♭3",
		Modes: []Mode{
			{Name: "oriental", Start: "2"},
			{Name: "double harmonic major", Start: "5"},
		},
	},
	{
		Name:     "oriental",
		Tones:    []string{"1", "♭2", "3", "4", "♭5", "6", "♭7"},
		Tonality: "4",
		Modes: []Mode{
			{Name: "double harmonic major", Start: "4"},
			{Name: "double harmonic minor", Start: "♭7"},
		},
	},
	{
		Name:     "blues",
		Aliases:  []string{"blues minor hexatonic"},
		Tones:    []string{"1", "♭3", "4", "♭5", "5", "♭7"},
		Tonality: "♭7",
	},
	{
		Name:     "bebop major",
		Aliases:  []string{"major sixth diminished"},
		Tones:    []string{"1", "2", "3", "4", "5", "♯5", "6", "7"},
		Tonality: "1",
		Modes:    []Mode{{Name: "bebop minor", Start: "6"}},
	},
	{
		Name:     "bebop minor",
		Aliases:  []string{"bebop natural minor", "bebop harmonic minor"},
		Tones:    []string{"1", "2", "♭3", "4", "5", "♭6", "♭7", "7"},
		Tonality: "♭3",
		Modes:    []Mode{{Name: "bebop major", Start: "♭3"}},
		Included: []Reference{{Name: "minor"}, {Name: "harmonic minor"}},
	},
	{
		Name:     "bebop melodic minor",
		Aliases:  []string{"minor sixth diminished scale"},
		Tones:    []string{"1", "2", "♭3", "4", "5", "♯5", "6", "7"},
		Tonality: "1",
	},
	{
		Name:     "bebop dominant",
		Tones:    []string{"1", "2", "3", "4", "5", "6", "♭7", "7"},
		Tonality: "4",
		Included: []Reference{{Name: "major"}, {Name: "mixolydian"}},
	},
}

// byName and byAlias are built once from scaleTypes and only read afterwards.
var byName, byAlias = indexScaleTypes(scaleTypes)

func indexScaleTypes(types []ScaleType) (map[string]int, map[string]int) {
	names := make(map[string]int, len(types))
	aliases := make(map[string]int)
	for i, t := range types {
		names[t.Name] = i
		for _, a := range t.Aliases {
			aliases[strings.ToLower(a)] = i
		}
	}
	return names, aliases
}

// TypeNames returns every scale type name in catalog order.
func TypeNames() []string {
	names := make([]string, 0, len(scaleTypes))
	for _, t := range scaleTypes {
		names = append(names, t.Name)
	}
	return names
}

// TypeByName returns the scale type with the exact given name.
func TypeByName(name string) (ScaleType, bool) {
	i, ok := byName[name]
	if !ok {
		logger.Warn("Scale type not found", logger.Fields{"name": name})
		return ScaleType{}, false
	}
	return scaleTypes[i].clone(), true
}

// Lookup resolves a name or an alias, case-insensitively. The engine itself
// only uses TypeByName; Lookup serves user-facing input.
func Lookup(name string) (ScaleType, bool) {
	if t, ok := byName[name]; ok {
		return scaleTypes[t].clone(), true
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if t, ok := byName[lower]; ok {
		return scaleTypes[t].clone(), true
	}
	if t, ok := byAlias[lower]; ok {
		return scaleTypes[t].clone(), true
	}
	logger.Warn("Scale type not found", logger.Fields{"name": name})
	return ScaleType{}, false
}

// ModalScaleOf returns the scale type obtained by starting t at token.
// Tokens are compared after glyph normalization, so "b3" matches "♭3".
func ModalScaleOf(t ScaleType, token string) (ScaleType, bool) {
	if len(t.Modes) == 0 {
		return ScaleType{}, false
	}
	start := theory.NormalizeToken(token)
	for _, m := range t.Modes {
		if m.Start != start {
			continue
		}
		modal, ok := TypeByName(m.Name)
		if !ok {
			logger.Warn("Modal scale not found", logger.Fields{"mode": m.Name, "base": t.Name})
			return ScaleType{}, false
		}
		return modal, true
	}
	return ScaleType{}, false
}

// Tones returns the degree tokens of the named scale type, with the first
// extra tokens appended again at the end.
func Tones(name string, extra int) ([]string, bool) {
	t, ok := TypeByName(name)
	if !ok {
		return nil, false
	}
	return wrap(t.Tones, extra), true
}

// wrap appends the first extra values of values again, cycling when extra
// exceeds the length.
func wrap[T any](values []T, extra int) []T {
	if len(values) == 0 {
		return values
	}
	for i := 0; i < extra; i++ {
		values = append(values, values[i])
	}
	return values
}
