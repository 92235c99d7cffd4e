package theory

// StepsPerOctave is the number of tempered chromatic steps in an octave.
const StepsPerOctave = 12

var (
	naturalLetters = [...]string{"C", "D", "E", "F", "G", "A", "B"}
	naturalSteps   = [...]int{0, 2, 4, 5, 7, 9, 11}

	// chromaticLetters is the display list used by pickers: naturals plus the
	// most common spelling of each black key.
	chromaticLetters = [StepsPerOctave]string{
		"C", "C♯", "D", "E♭", "E", "F", "F♯", "G", "A♭", "A", "B♭", "B",
	}
)

type spelling struct {
	letter string
	step   int
}

// chromaticTable is the bidirectional letter/step mapping. It is built once
// at package init and never mutated afterwards.
type chromaticTable struct {
	byLetter map[string]int
	byStep   [StepsPerOctave][]string
}

var table = newChromaticTable()

func newChromaticTable() *chromaticTable {
	// Naturals first, then flats, then sharps: byStep preserves this order.
	spellings := make([]spelling, 0, len(naturalLetters)*3)
	for i, l := range naturalLetters {
		spellings = append(spellings, spelling{l, naturalSteps[i]})
	}
	for i, l := range naturalLetters {
		spellings = append(spellings, spelling{l + Flat, Normalize(naturalSteps[i] - 1)})
	}
	for i, l := range naturalLetters {
		spellings = append(spellings, spelling{l + Sharp, Normalize(naturalSteps[i] + 1)})
	}

	t := &chromaticTable{byLetter: make(map[string]int, len(spellings))}
	for _, s := range spellings {
		t.byLetter[s.letter] = s.step
		t.byStep[s.step] = append(t.byStep[s.step], s.letter)
	}
	return t
}

// Normalize brings any integer step into [0,12).
func Normalize(step int) int {
	return ((step % StepsPerOctave) + StepsPerOctave) % StepsPerOctave
}

// NaturalIndex returns the position of a natural letter in C D E F G A B,
// or -1 for anything else.
func NaturalIndex(letter string) int {
	for i, l := range naturalLetters {
		if l == letter {
			return i
		}
	}
	return -1
}

// NaturalAt returns the natural letter at index i, cycling through C..B.
func NaturalAt(i int) string {
	n := len(naturalLetters)
	return naturalLetters[((i%n)+n)%n]
}

// StepOf returns the pitch class of a spelled letter. Both accidental
// alphabets are accepted.
func StepOf(letter string) (int, bool) {
	canonical, ok := NormalizeLetter(letter)
	if !ok {
		return 0, false
	}
	step, ok := table.byLetter[canonical]
	return step, ok
}

// LetterOf spells a pitch class. The natural spelling wins whenever one
// exists; otherwise the sharp spelling is used if preferSharp is set and the
// flat spelling if not.
func LetterOf(step int, preferSharp bool) (string, bool) {
	values := table.byStep[Normalize(step)]
	if len(values) == 0 {
		return "", false
	}
	for _, v := range values {
		if IsNatural(v) {
			return v, true
		}
	}
	if preferSharp {
		for _, v := range values {
			if IsSharp(v) {
				return v, true
			}
		}
	}
	return values[0], true
}

// ChromaticLetters returns the 12-entry display spelling of the chromatic scale.
func ChromaticLetters() []string {
	out := make([]string, len(chromaticLetters))
	copy(out, chromaticLetters[:])
	return out
}

// ChromaticScale spells all twelve steps from C with a uniform preference.
func ChromaticScale(preferSharp bool) []string {
	out := make([]string, 0, StepsPerOctave)
	for step := 0; step < StepsPerOctave; step++ {
		l, _ := LetterOf(step, preferSharp)
		out = append(out, l)
	}
	return out
}

// Respell returns the enharmonic spelling of letter under the given
// preference. Natural letters are returned unchanged; accidentals resolve
// through LetterOf, so "E♯" becomes "F".
func Respell(letter string, preferSharp bool) (string, bool) {
	canonical, ok := NormalizeLetter(letter)
	if !ok {
		return "", false
	}
	step, ok := table.byLetter[canonical]
	if !ok {
		return "", false
	}
	if IsNatural(canonical) {
		return canonical, true
	}
	return LetterOf(step, preferSharp)
}
