package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/blockdeco/internal/loader"
)

var decorateCmd = &cobra.Command{
	Use:   "decorate [file]",
	Short: "Decorate a single page",
	Long: `Decorates the blocks of one HTML page or fragment and writes the result.
Reads standard input when no file (or "-") is given. Complete documents
keep their head; fragments are written back as fragments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecorate,
}

func init() {
	decorateCmd.Flags().StringP("out", "o", "", "write output to file instead of stdout")
	decorateCmd.Flags().Bool("markdown", false, "treat the input as markdown with block tables")
	rootCmd.AddCommand(decorateCmd)
}

func runDecorate(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, r, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	if md, _ := cmd.Flags().GetBool("markdown"); md {
		if input, err = r.Render(input); err != nil {
			return err
		}
	}

	var out bytes.Buffer
	var report loader.Report
	if loader.IsDocument(input) {
		report, err = l.DecoratePage(bytes.NewReader(input), &out)
	} else {
		report, err = l.DecorateHTML(bytes.NewReader(input), &out)
	}
	if err != nil {
		return err
	}
	for _, b := range report.Blocks {
		logger.Debug("block", "name", b.Name, "status", b.Status)
	}

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		_, err = cmd.OutOrStdout().Write(out.Bytes())
		return err
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote decorated page", "path", path, "blocks", report.Count(loader.StatusDecorated))
	return nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}
