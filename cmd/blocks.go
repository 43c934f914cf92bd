package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/blockdeco/internal/loader"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the available block decorators",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, name := range loader.BuiltinNames() {
			state := "disabled"
			if slices.ContainsFunc(cfg.Blocks, func(b string) bool { return strings.EqualFold(b, name) }) {
				state = "enabled"
			}
			fmt.Fprintf(w, "%-10s %s\n", name, state)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}
