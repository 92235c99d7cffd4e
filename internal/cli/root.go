package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Conceptual-Machines/magda-scales/internal/scales"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

var rootCmd = &cobra.Command{
	Use:   "scales",
	Short: "Spell musical scales, modes and chords",
	Long: `scales resolves a key letter and a scale type into concrete note letters.
Flats and sharps may be typed as b and # (or x for double sharp); output uses
♭ and ♯ unless --ascii is set.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .scales.yaml)")
	rootCmd.PersistentFlags().Int("extra", scales.DefaultExtra, "letters repeated from the start at the end")
	rootCmd.PersistentFlags().Bool("ascii", false, "print b/# instead of ♭/♯")

	_ = viper.BindPFlag("extra", rootCmd.PersistentFlags().Lookup("extra"))
	_ = viper.BindPFlag("ascii", rootCmd.PersistentFlags().Lookup("ascii"))

	viper.SetDefault("key", "C")
	viper.SetDefault("type", "major")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".scales")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SCALES")
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// selection resolves [KEY] [TYPE] positional arguments, falling back to the
// configured key and scale type.
func selection(args []string) (string, scales.ScaleType, error) {
	rawKey := viper.GetString("key")
	typeName := viper.GetString("type")
	if len(args) > 0 {
		rawKey = args[0]
	}
	if len(args) > 1 {
		typeName = args[1]
	}

	key, ok := theory.NormalizeLetter(rawKey)
	if ok {
		_, ok = theory.StepOf(key)
	}
	if !ok {
		return "", scales.ScaleType{}, fmt.Errorf("unknown key %q", rawKey)
	}

	t, ok := scales.Lookup(typeName)
	if !ok {
		return "", scales.ScaleType{}, fmt.Errorf("unknown scale type %q (see 'scales types')", typeName)
	}
	return key, t, nil
}

func extra() (int, error) {
	n := viper.GetInt("extra")
	if n < 0 {
		return 0, fmt.Errorf("--extra must not be negative, got %d", n)
	}
	return n, nil
}

func newRenderer() renderer {
	return renderer{ascii: viper.GetBool("ascii")}
}
