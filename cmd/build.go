package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/blockdeco/internal/loader"
	"github.com/ziadkadry99/blockdeco/internal/progress"
	"github.com/ziadkadry99/blockdeco/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from the content directory",
	Long:  `Renders every markdown and HTML page under the content directory, decorates its blocks, and writes the site to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("content", "", "override content directory")
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("clean", false, "remove the output directory before building")
	buildCmd.Flags().Bool("strict", false, "fail when a page uses a block with no decorator")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("content"); dir != "" {
		cfg.ContentDir = dir
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if clean, _ := cmd.Flags().GetBool("clean"); clean {
		cfg.Build.Clean = true
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Build.FailOnUnknown = true
	}

	l, r, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	t := newTimer(logger)
	gen := site.NewGenerator(cfg, l, r, logger)
	result, err := gen.Generate(ctx, progress.NewReporter())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	t.done(fmt.Sprintf("Built %s", cfg.OutputDir))

	fmt.Println()
	fmt.Println("Site build complete!")
	fmt.Printf("  Pages:     %d\n", result.Pages)
	fmt.Printf("  Assets:    %d\n", result.Assets)
	fmt.Printf("  Decorated: %d blocks\n", result.Report.Count(loader.StatusDecorated))
	if n := result.Report.Count(loader.StatusUnknown); n > 0 {
		fmt.Printf("  Unknown:   %d blocks (left undecorated)\n", n)
	}
	fmt.Printf("  Output:    %s\n", cfg.OutputDir)
	return nil
}
