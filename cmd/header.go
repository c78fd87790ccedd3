package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AdamWu1979/mrtrix3/internal/mrinfo"
)

// headerCmd queries one or more header items of an image via the suite's
// mrinfo binary.
var headerCmd = &cobra.Command{
	Use:   "header <image> <item>...",
	Short: "Query header metadata fields of an image via mrinfo",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bin, err := resolveBinDir()
		if err != nil {
			return fmt.Errorf("locate suite binaries: %w", err)
		}
		runner := mrinfo.New(bin, logger)

		image, items := args[0], args[1:]
		for _, item := range items {
			value, err := runner.Header(cmd.Context(), image, item)
			if err != nil {
				return err
			}
			if len(items) == 1 {
				fmt.Println(value)
			} else {
				fmt.Printf("%s: %s\n", item, value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
