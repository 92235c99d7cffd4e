package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-scales/internal/scales"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

var (
	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List the scale types in the catalog",
		Args:  cobra.NoArgs,
		RunE:  runTypes,
	}

	lettersCmd = &cobra.Command{
		Use:   "letters [KEY] [TYPE]",
		Short: "Spell a scale in a key",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runLetters,
	}

	shiftedCmd = &cobra.Command{
		Use:   "shifted [KEY] [TYPE]",
		Short: "Spell a scale rotated by a number of degrees",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runShifted,
	}

	chordsCmd = &cobra.Command{
		Use:   "chords [KEY] [TYPE]",
		Short: "Stack shifted scales into chords, one per degree",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runChords,
	}

	modesCmd = &cobra.Command{
		Use:   "modes [KEY] [TYPE]",
		Short: "Show where each mode of a scale starts in a key",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runModes,
	}

	respellCmd = &cobra.Command{
		Use:   "respell LETTER...",
		Short: "Print the enharmonic spelling of letters",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRespell,
	}

	chromaticCmd = &cobra.Command{
		Use:   "chromatic",
		Short: "Print the twelve chromatic letters",
		Args:  cobra.NoArgs,
		RunE:  runChromatic,
	}
)

func init() {
	shiftedCmd.Flags().Int("shift", scales.ShiftThirds, "degrees to rotate by (negative rotates down)")
	chordsCmd.Flags().IntSlice("shifts", scales.TriadShifts, "shift per chord voice")
	chordsCmd.Flags().Bool("sevenths", false, "use seventh-chord shifts (0,2,4,6)")
	chromaticCmd.Flags().Bool("sharp", false, "spell black keys as sharps")
	respellCmd.Flags().Bool("sharp", false, "respell as sharps instead of flats")

	rootCmd.AddCommand(typesCmd, lettersCmd, shiftedCmd, chordsCmd, modesCmd, respellCmd, chromaticCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	r := newRenderer()
	var b strings.Builder
	for _, name := range scales.TypeNames() {
		t, _ := scales.TypeByName(name)
		b.WriteString(r.typeLine(t))
		b.WriteString("\n")
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

func runLetters(cmd *cobra.Command, args []string) error {
	key, t, err := selection(args)
	if err != nil {
		return err
	}
	n, err := extra()
	if err != nil {
		return err
	}

	letters, err := scales.ScaleLetters(key, t.Name, n)
	if err != nil {
		return fmt.Errorf("letters: %w", err)
	}

	r := newRenderer()
	out := r.title(key, t.Name) + "\n" + r.row(letters) + "\n"
	if tonality, ok := scales.TonalityLetter(key, t.Name); ok {
		out += r.label("tonality") + " " + r.letter(tonality) + " major\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runShifted(cmd *cobra.Command, args []string) error {
	key, t, err := selection(args)
	if err != nil {
		return err
	}
	n, err := extra()
	if err != nil {
		return err
	}
	shift, _ := cmd.Flags().GetInt("shift")

	letters, err := scales.ShiftedLetters(key, t.Name, shift, n)
	if err != nil {
		return fmt.Errorf("shifted: %w", err)
	}

	r := newRenderer()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", r.title(key, t.Name), r.label(fmt.Sprintf("shift %d", shift)), r.row(letters))
	return nil
}

func runChords(cmd *cobra.Command, args []string) error {
	key, t, err := selection(args)
	if err != nil {
		return err
	}
	n, err := extra()
	if err != nil {
		return err
	}

	shifts, _ := cmd.Flags().GetIntSlice("shifts")
	if sevenths, _ := cmd.Flags().GetBool("sevenths"); sevenths {
		shifts = scales.SeventhShifts
	}

	chords, err := scales.ChordsFromShifts(key, t.Name, shifts, n)
	if err != nil {
		return fmt.Errorf("chords: %w", err)
	}

	r := newRenderer()
	fmt.Fprintln(cmd.OutOrStdout(), r.title(key, t.Name))
	fmt.Fprint(cmd.OutOrStdout(), r.table(chords))
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	key, t, err := selection(args)
	if err != nil {
		return err
	}

	roots, err := scales.ModeRoots(key, t.Name)
	if err != nil {
		return fmt.Errorf("modes: %w", err)
	}

	r := newRenderer()
	fmt.Fprintln(cmd.OutOrStdout(), r.title(key, t.Name))
	if len(roots) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), r.label("(no modes)"))
		return nil
	}
	for _, m := range roots {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s %s\n", r.text(m.Start), r.letter(m.Letter), m.Name)
	}
	return nil
}

func runRespell(cmd *cobra.Command, args []string) error {
	sharp, _ := cmd.Flags().GetBool("sharp")
	letters := make([]string, 0, len(args))
	for _, arg := range args {
		letter, ok := theory.Respell(arg, sharp)
		if !ok {
			return fmt.Errorf("respell: unknown letter %q", arg)
		}
		letters = append(letters, letter)
	}
	fmt.Fprintln(cmd.OutOrStdout(), newRenderer().row(letters))
	return nil
}

func runChromatic(cmd *cobra.Command, _ []string) error {
	letters := theory.ChromaticLetters()
	if cmd.Flags().Changed("sharp") {
		sharp, _ := cmd.Flags().GetBool("sharp")
		letters = theory.ChromaticScale(sharp)
	}
	fmt.Fprintln(cmd.OutOrStdout(), newRenderer().row(letters))
	return nil
}
