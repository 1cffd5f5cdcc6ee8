package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/colorconv/internal/converter"
)

// validateFormat checks an output format flag value.
func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be 'text', 'json' or 'yaml'", format)
	}
}

// writeResult renders a single conversion in the given format.
func writeResult(w io.Writer, res converter.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		return writeYAML(w, res)
	default:
		return writeText(w, res)
	}
}

// writeResults renders many conversions: a JSON array, a YAML sequence or one
// tab-separated line per result.
func writeResults(w io.Writer, results []converter.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		return writeYAML(w, results)
	default:
		for _, res := range results {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\n", res.Input, displayColor(res), res.Background, res.Brightness); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, res converter.Result) error {
	if !res.Valid {
		_, err := fmt.Fprintf(w, "input:      %s\nvalid:      false\nbackground: %s\ntheme:      %s\n",
			res.Input, res.Background, res.Theme)
		return err
	}
	_, err := fmt.Fprintf(w, "input:      %s\nkind:       %s\nhex:        %s\nrgb:        %s\nbrightness: %.4f\ntheme:      %s\n",
		res.Input, res.Kind, res.Hex, res.RGB, res.Brightness, res.Theme)
	return err
}

func displayColor(res converter.Result) string {
	if !res.Valid {
		return "-"
	}
	return res.Color
}
