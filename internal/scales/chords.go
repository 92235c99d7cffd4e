package scales

// Shift presets in scale-degree units.
const (
	ShiftUnison   = 0
	ShiftThirds   = 2
	ShiftFourths  = 3
	ShiftFifths   = 4
	ShiftSevenths = 6
	ShiftSixths   = -5
)

var (
	// TriadShifts stacks root, third and fifth on every degree.
	TriadShifts = []int{ShiftUnison, ShiftThirds, ShiftFifths}
	// SeventhShifts adds the seventh to TriadShifts.
	SeventhShifts = []int{ShiftUnison, ShiftThirds, ShiftFifths, ShiftSevenths}
)

// ShiftedLetters rotates the spelled scale by shift degrees: entry i is the
// letter shift degrees above degree i. Negative shifts rotate downwards.
func ShiftedLetters(key, typeName string, shift, extra int) ([]string, error) {
	base, err := ScaleLetters(key, typeName, 0)
	if err != nil {
		return nil, err
	}

	n := len(base)
	if n == 0 {
		return base, nil
	}

	shifted := make([]string, 0, n+max(extra, 0))
	offset := shift % n
	for i := 0; i < n; i++ {
		// i+offset stays within (-n, 2n) for any shift
		index := ((i+offset)%n + n) % n
		shifted = append(shifted, base[index])
	}
	return wrap(shifted, extra), nil
}

// ChordsFromShifts builds one chord per scale position by taking the letter
// at that position from every shifted sequence, in the order of shifts.
// shifts [0, 2, 4] harmonizes the scale in diatonic triads.
func ChordsFromShifts(key, typeName string, shifts []int, extra int) ([][]string, error) {
	table := make([][]string, 0, len(shifts))
	for _, shift := range shifts {
		row, err := ShiftedLetters(key, typeName, shift, extra)
		if err != nil {
			return nil, err
		}
		table = append(table, row)
	}

	if len(table) == 0 {
		if _, ok := TypeByName(typeName); !ok {
			return nil, errNotFound(typeName)
		}
		return [][]string{}, nil
	}
	return transpose(table), nil
}

func transpose(table [][]string) [][]string {
	chords := make([][]string, len(table[0]))
	for col := range chords {
		chord := make([]string, len(table))
		for row := range table {
			chord[row] = table[row][col]
		}
		chords[col] = chord
	}
	return chords
}
