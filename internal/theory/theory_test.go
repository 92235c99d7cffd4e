package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		input   string
		flat    bool
		sharp   bool
		natural bool
	}{
		{"Bb", true, false, false},
		{"B♭", true, false, false},
		{"B", false, false, true},
		{"F#", false, true, false},
		{"F♯", false, true, false},
		{"b3", true, false, false},
		{"♯4", false, true, false},
		{"7", false, false, true},
		{"𝄪5", false, true, false},
		{"𝄫7", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.flat, IsFlat(tt.input))
			assert.Equal(t, tt.sharp, IsSharp(tt.input))
			assert.Equal(t, tt.natural, IsNatural(tt.input))
		})
	}
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"C", "C", true},
		{"Bb", "B♭", true},
		{"bb", "B♭", true},
		{"f#", "F♯", true},
		{" E♭ ", "E♭", true},
		{"H", "", false},
		{"C?", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeLetter(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestASCII(t *testing.T) {
	assert.Equal(t, "Bb", ASCII("B♭"))
	assert.Equal(t, "F#", ASCII("F♯"))
	assert.Equal(t, "bb7", ASCII("𝄫7"))
	assert.Equal(t, "C", ASCII("C"))
}

func TestAccidentals(t *testing.T) {
	assert.Equal(t, 0, Accidentals("3"))
	assert.Equal(t, -1, Accidentals("b3"))
	assert.Equal(t, -1, Accidentals("3b"))
	assert.Equal(t, 2, Accidentals("x4"))
	assert.Equal(t, -2, Accidentals("𝄫7"))
	assert.Equal(t, 0, Accidentals("#b5"), "mixed markers cancel")
	assert.Equal(t, 1, Accidentals("♯4?"), "unknown runes are ignored")
}

func TestStepOf(t *testing.T) {
	tests := []struct {
		letter string
		step   int
	}{
		{"C", 0},
		{"C♯", 1},
		{"Db", 1},
		{"E", 4},
		{"Fb", 4},
		{"E#", 5},
		{"B", 11},
		{"Cb", 11},
		{"B#", 0},
		{"A♭", 8},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			step, ok := StepOf(tt.letter)
			require.True(t, ok)
			assert.Equal(t, tt.step, step)
		})
	}

	_, ok := StepOf("H")
	assert.False(t, ok)
	_, ok = StepOf("C♭♭")
	assert.False(t, ok, "double accidentals are not part of the table")
}

func TestLetterOf(t *testing.T) {
	tests := []struct {
		name        string
		step        int
		preferSharp bool
		expected    string
	}{
		{"natural wins over sharp preference", 0, true, "C"},
		{"natural wins for B", 11, false, "B"},
		{"sharp preference", 1, true, "C♯"},
		{"flat by default", 1, false, "D♭"},
		{"black key flat", 10, false, "B♭"},
		{"black key sharp", 10, true, "A♯"},
		{"negative step", -1, false, "B"},
		{"negative black key", -2, true, "A♯"},
		{"above octave", 13, false, "D♭"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LetterOf(tt.step, tt.preferSharp)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLetterOfRoundTrip(t *testing.T) {
	for step := 0; step < StepsPerOctave; step++ {
		for _, preferSharp := range []bool{true, false} {
			letter, ok := LetterOf(step, preferSharp)
			require.True(t, ok)
			back, ok := StepOf(letter)
			require.True(t, ok, "letter %s", letter)
			assert.Equal(t, step, back%StepsPerOctave)
		}
	}
}

func TestChromaticLetters(t *testing.T) {
	letters := ChromaticLetters()
	require.Len(t, letters, StepsPerOctave)
	for i, l := range letters {
		step, ok := StepOf(l)
		require.True(t, ok)
		assert.Equal(t, i, step)
	}

	letters[0] = "X"
	assert.Equal(t, "C", ChromaticLetters()[0], "callers get a copy")

	assert.Equal(t, []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}, ChromaticScale(true))
	assert.Equal(t, []string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}, ChromaticScale(false))
}

func TestRespell(t *testing.T) {
	got, ok := Respell("C♯", false)
	require.True(t, ok)
	assert.Equal(t, "D♭", got)

	got, ok = Respell("Eb", true)
	require.True(t, ok)
	assert.Equal(t, "D♯", got)

	got, ok = Respell("E#", false)
	require.True(t, ok)
	assert.Equal(t, "F", got)

	got, ok = Respell("G", true)
	require.True(t, ok)
	assert.Equal(t, "G", got)

	_, ok = Respell("Q", true)
	assert.False(t, ok)
}

func TestParseDegree(t *testing.T) {
	tests := []struct {
		token    string
		expected Degree
	}{
		{"1", Degree{Number: 1}},
		{"b3", Degree{Number: 3, Accidentals: -1}},
		{"3b", Degree{Number: 3, Accidentals: -1}},
		{"♯4", Degree{Number: 4, Accidentals: 1}},
		{"13", Degree{Number: 13}},
		{"𝄫7", Degree{Number: 7, Accidentals: -2}},
		{"x5", Degree{Number: 5, Accidentals: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d, err := ParseDegree(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseDegree_Errors(t *testing.T) {
	for _, token := range []string{"", "b", "♯", "0", "b0"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseDegree(token)
			require.Error(t, err)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
			assert.Equal(t, token, parseErr.Token)
		})
	}
}

func TestDegreeToStep(t *testing.T) {
	tests := []struct {
		token string
		step  int
	}{
		{"1", 0},
		{"2", 2},
		{"3", 4},
		{"b3", 3},
		{"4", 5},
		{"♯4", 6},
		{"5", 7},
		{"6", 9},
		{"7", 11},
		{"b7", 10},
		{"8", 12},
		{"9", 14},
		{"b9", 13},
		{"11", 17},
		{"13", 21},
		{"15", 24},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			step, err := DegreeToStep(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.step, step)
		})
	}

	_, err := DegreeToStep("x")
	assert.Error(t, err)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "♭3", NormalizeToken("b3"))
	assert.Equal(t, "♯4", NormalizeToken("#4"))
	assert.Equal(t, "7", NormalizeToken(" 7 "))
	assert.Equal(t, "♭7", NormalizeToken("♭7"))
}
