package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AdamWu1979/mrtrix3/internal/algorithm"
)

var algorithmsJSON bool

// algorithmsCmd enumerates the algorithm implementations available to a
// script, found under its src/<name>/ convention directory.
var algorithmsCmd = &cobra.Command{
	Use:   "algorithms <script>",
	Short: "List the algorithm implementations available to a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		algos, err := algorithm.List(script)
		if err != nil {
			return fmt.Errorf("list algorithms for %s: %w", args[0], err)
		}

		out := viper.GetString("out")
		if !algorithmsJSON && out == "" {
			for _, a := range algos {
				fmt.Println(a)
			}
			return nil
		}

		payload := struct {
			Script     string   `json:"script"`
			Algorithms []string `json:"algorithms"`
		}{Script: filepath.Base(script), Algorithms: algos}

		// Write to file or stdout, same output logic as the other commands.
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(payload); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", out)
			return nil
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
	algorithmsCmd.Flags().BoolVar(&algorithmsJSON, "json", false, "emit JSON instead of one identifier per line")
}
