package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorconv/internal/color"
	"github.com/MeKo-Tech/colorconv/internal/swatch"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Convert a single color",
	Long: `Convert a hex code or rgb(R,G,B) string and print both canonical forms,
its brightness and the matching theme.

Invalid input prints the fallback result unless --strict is set.`,
	Example: `  colorconv convert '#fff'
  colorconv convert 'rgb(255,0,34)' --format json
  colorconv convert ff0022 --swatch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	convertCmd.Flags().Bool("swatch", false, "Render a color swatch after the text output")
	convertCmd.Flags().Int("swatch-width", swatch.MinWidth, "Swatch width in cells")
	convertCmd.Flags().Bool("strict", false, "Fail on invalid input instead of printing the fallback")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.format", "format"},
		{"convert.swatch", "swatch"},
		{"convert.swatch_width", "swatch-width"},
		{"convert.strict", "strict"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	format := viper.GetString("convert.format")
	showSwatch := viper.GetBool("convert.swatch")
	swatchWidth := viper.GetInt("convert.swatch_width")
	strict := viper.GetBool("convert.strict")

	if logger == nil {
		initLogging()
	}

	if err := validateFormat(format); err != nil {
		return err
	}

	// Shells split unquoted rgb(1, 2, 3); rejoin so the parser sees one value.
	input := strings.Join(args, " ")

	if strict {
		if _, err := color.Parse(input); err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	res := conv.Convert(input)
	logger.Debug("Converted color", "input", res.Input, "valid", res.Valid, "kind", res.Kind.String())

	out := cmd.OutOrStdout()
	if err := writeResult(out, res, format); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if showSwatch && format == "text" {
		fmt.Fprintln(out, swatch.Render(res, swatchWidth))
	}
	return nil
}
