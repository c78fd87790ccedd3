package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AdamWu1979/mrtrix3/internal/applog"
	"github.com/AdamWu1979/mrtrix3/internal/mrinfo"
)

// cfgFile stores an optional explicit path to a config file
// (if not provided we try ./mrscript.config.json by default).
var cfgFile string

// cfgBin and cfgOut back the persistent flags; reads go through viper so
// env/config values win the usual precedence contest.
var cfgBin string
var cfgOut string

// Standard options shared by every subcommand, mirroring the suite's
// -quiet/-info/-debug convention.
var (
	flagQuiet bool
	flagInfo  bool
	flagDebug bool
)

// verbosity and logger are derived once in the pre-run and read by the
// subcommands; 0=quiet, 1=default, 2=info, 3=debug.
var verbosity int
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "mrscript",
	Short: "Scripting helpers for the imaging toolkit (algorithm discovery, header queries)",
	// PersistentPreRunE executes before any subcommand; we use it to load
	// config/env and build the logger.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// If --config was provided, take it; else look for ./mrscript.config.{json,yaml,toml}
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigName("mrscript.config")
			// Let viper detect the extension (json/yaml/toml) automatically.
		}

		// Read env vars with prefix MRTRIX_, e.g. MRTRIX_BIN
		viper.SetEnvPrefix("MRTRIX")
		viper.AutomaticEnv()

		// Read config file if present; it's ok if none is found.
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}

		verbosity = applog.Default
		switch {
		case flagDebug:
			verbosity = applog.Debug
		case flagInfo:
			verbosity = applog.Info
		case flagQuiet:
			verbosity = applog.Quiet
		}
		logger = applog.New(verbosity)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute is called from main.go and starts the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveBinDir prefers the merged config/env/flag value and falls back to
// the conventional location relative to this executable.
func resolveBinDir() (string, error) {
	if bin := viper.GetString("bin"); bin != "" {
		return bin, nil
	}
	return mrinfo.DefaultBinDir()
}

func init() {
	// Define persistent flags that apply to all subcommands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./mrscript.config.{json,yaml,toml})")
	rootCmd.PersistentFlags().StringVar(&cfgBin, "bin", "", "directory containing the suite binaries (default: ../../release/bin relative to this executable)")
	rootCmd.PersistentFlags().StringVar(&cfgOut, "out", "", "write command output JSON to file")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "do not display information messages")
	rootCmd.PersistentFlags().BoolVar(&flagInfo, "info", false, "display information messages")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "display debugging messages, including subprocess command lines")

	// Bind these flags to viper keys so config/env/flags merge cleanly.
	_ = viper.BindPFlag("bin", rootCmd.PersistentFlags().Lookup("bin"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
}
