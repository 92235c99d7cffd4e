package scales

import (
	"slices"
	"testing"

	"github.com/Conceptual-Machines/magda-scales/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	require.Len(t, names, 19)
	assert.Equal(t, "major", names[0])
	assert.Equal(t, "bebop dominant", names[len(names)-1])
	assert.Equal(t, names, TypeNames(), "catalog order is stable")
}

func TestTypeByName(t *testing.T) {
	major, ok := TypeByName("major")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, major.Tones)
	assert.Equal(t, "1", major.Tonality)
	assert.Equal(t, []string{"ionian"}, major.Aliases)

	_, ok = TypeByName("ionian")
	assert.False(t, ok, "aliases have no lookup role")

	_, ok = TypeByName("nope")
	assert.False(t, ok)
}

func TestTypeByName_ReturnsCopy(t *testing.T) {
	major, ok := TypeByName("major")
	require.True(t, ok)
	major.Tones[0] = "♭1"
	major.Modes[0].Name = "changed"

	again, _ := TypeByName("major")
	assert.Equal(t, "1", again.Tones[0])
	assert.Equal(t, "dorian", again.Modes[0].Name)
}

func TestCatalogConsistency(t *testing.T) {
	for _, name := range TypeNames() {
		t.Run(name, func(t *testing.T) {
			st, ok := TypeByName(name)
			require.True(t, ok)
			require.NotEmpty(t, st.Tones)

			for _, tone := range st.Tones {
				_, err := theory.ParseDegree(tone)
				assert.NoError(t, err, "tone %s", tone)
			}
			if st.Tonality != "" {
				_, err := theory.ParseDegree(st.Tonality)
				assert.NoError(t, err)
			}
			for _, m := range st.Modes {
				_, ok := TypeByName(m.Name)
				assert.True(t, ok, "mode %s", m.Name)
				assert.True(t, slices.Contains(st.Tones, m.Start), "mode %s starts on %s, not a tone of %s", m.Name, m.Start, name)
			}
			for _, ref := range st.Included {
				_, ok := TypeByName(ref.Name)
				assert.True(t, ok, "included %s", ref.Name)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"major", "major"},
		{"MAJOR", "major"},
		{"ionian", "major"},
		{"Aeolian", "minor"},
		{"freygish", "phrygian dominant"},
		{" byzantine ", "double harmonic major"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st, ok := Lookup(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expected, st.Name)
		})
	}

	_, ok := Lookup("klingon")
	assert.False(t, ok)
}

func TestModalScaleOf(t *testing.T) {
	major, _ := TypeByName("major")
	minor, _ := TypeByName("minor")
	jazz, _ := TypeByName("jazz minor")

	tests := []struct {
		name     string
		base     ScaleType
		token    string
		expected string
		ok       bool
	}{
		{"relative minor", major, "6", "minor", true},
		{"dorian on the second", major, "2", "dorian", true},
		{"relative major", minor, "♭3", "major", true},
		{"ascii token", minor, "b3", "major", true},
		{"every mode keeps its own start", major, "7", "locrian", true},
		{"no such start", major, "♭3", "", false},
		{"no modes declared", jazz, "2", "", false},
		{"empty scale type", ScaleType{}, "1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modal, ok := ModalScaleOf(tt.base, tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, modal.Name)
		})
	}
}

func TestModalScaleOf_DanglingMode(t *testing.T) {
	broken := ScaleType{Name: "broken", Modes: []Mode{{Name: "missing", Start: "2"}}}
	_, ok := ModalScaleOf(broken, "2")
	assert.False(t, ok)
}

func TestTones(t *testing.T) {
	tones, ok := Tones("blues", 1)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "♭3", "4", "♭5", "5", "♭7", "1"}, tones)

	tones, ok = Tones("blues", 0)
	require.True(t, ok)
	assert.Len(t, tones, 6)

	_, ok = Tones("nope", 1)
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 1}, wrap([]int{1, 2, 3}, 1))
	assert.Equal(t, []int{1, 2, 1, 2, 1}, wrap([]int{1, 2}, 3))
	assert.Equal(t, []int{1, 2}, wrap([]int{1, 2}, 0))
	assert.Equal(t, []int{1, 2}, wrap([]int{1, 2}, -1))
	assert.Empty(t, wrap([]int{}, 2))
}
