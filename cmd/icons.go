package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/palette"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Lists the icon names and color tokens accepted in data files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Icons:")
		for _, name := range icon.Names() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "Colors:")
		for _, tok := range palette.Tokens() {
			fmt.Fprintf(out, "  %s\n", tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}
