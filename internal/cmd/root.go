package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorconv/internal/converter"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "colorconv",
	Short: "Convert colors between hex and rgb() notation",
	Long: `colorconv converts colors between hex codes (#fff, ff0022) and rgb(R,G,B) strings.

It reports the canonical form of both notations, the color's brightness (HSL
lightness) and the light or dark theme that reads best on it. The serve command
hosts a live converter page backed by the same logic.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("default-color", converter.DefaultColor, "Background color used when the input is not a color")
	rootCmd.PersistentFlags().Float64("theme-threshold", converter.DefaultThemeThreshold, "Brightness at or above which the light theme is used")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	for _, key := range []string{"default-color", "theme-threshold", "verbose", "log-format"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COLORCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newConverter builds a converter from the resolved configuration.
func newConverter() (*converter.Converter, error) {
	return converter.New(converter.Config{
		DefaultColor:   viper.GetString("default-color"),
		ThemeThreshold: converter.Threshold(viper.GetFloat64("theme-threshold")),
	}, logger)
}
