package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// contentDirCandidates are directories checked, in order, for existing content.
var contentDirCandidates = []string{"content", "docs", "pages", "src/content"}

// detectContentDir returns the first candidate directory that exists.
func detectContentDir() string {
	for _, dir := range contentDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "content"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to blockdeco! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	contentDir := detectContentDir()
	if contentDir != defaults.ContentDir {
		fmt.Printf("Detected content directory: %s\n\n", contentDir)
	}

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: defaults.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory",
		Default: contentDir,
	}
	contentDir, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Enabled blocks, one confirmation each.
	var enabled []string
	for _, name := range KnownBlocks {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Enable the %s block", name),
			IsConfirm: true,
			Default:   "y",
		}
		if _, err := confirm.Run(); err == nil {
			enabled = append(enabled, name)
		} else if err != promptui.ErrAbort {
			return nil, fmt.Errorf("block %s: %w", name, err)
		}
	}

	// 5. Code highlighting style.
	stylePrompt := promptui.Select{
		Label: "Code highlighting style",
		Items: HighlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight style: %w", err)
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := defaults
	cfg.SiteName = siteName
	cfg.ContentDir = contentDir
	cfg.OutputDir = outputDir
	cfg.Blocks = enabled
	cfg.HighlightStyle = style
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
