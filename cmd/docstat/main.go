// Package main provides the CLI entrypoint for docstat.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/docstat/internal/aggregate"
	"github.com/verte-zerg/docstat/internal/config"
	"github.com/verte-zerg/docstat/internal/corpus"
	"github.com/verte-zerg/docstat/internal/metrics"
	"github.com/verte-zerg/docstat/internal/model"
	"github.com/verte-zerg/docstat/internal/report"
	"github.com/verte-zerg/docstat/internal/reportui"
)

const (
	defaultDir = "documents"
	defaultExt = ".txt"

	terminalWidthBackup = 80
	reservedTableWidth  = 60
	minColumnWidth      = 20
)

var (
	flagDir           string
	flagExt           string
	flagMinWordLength int
	flagMaxWordLength int
	flagCommonWords   int
	flagColumnWidth   int
	flagWorkers       int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "docstat",
		Short:         "Descriptive statistics for a directory of text documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagDir, "dir", defaultDir, "directory of documents to analyze")
	flags.StringVar(&flagExt, "ext", defaultExt, "file extension to include")
	flags.IntVar(&flagMinWordLength, "min-word-length", 0, "smallest word length to keep (with --max-word-length)")
	flags.IntVar(&flagMaxWordLength, "max-word-length", 0, "largest word length to keep (with --min-word-length)")
	flags.IntVar(&flagCommonWords, "common-words", 0, "number of most common words to show")
	flags.IntVar(&flagColumnWidth, "column-width", 0, "maximum width of the words column (0 = terminal width)")
	flags.IntVar(&flagWorkers, "workers", runtime.NumCPU(), "parallel document workers")

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	rep, cfg, err := buildReport(cmd)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), rep, cfg)
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the report interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	rep, cfg, err := buildReport(cmd)
	if err != nil {
		return err
	}
	model := reportui.NewModel(rep, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report browser: %w", err)
	}
	return nil
}

func buildReport(cmd *cobra.Command) (model.Report, model.Config, error) {
	cfg, err := buildAnalysisConfig(cmd)
	if err != nil {
		return model.Report{}, model.Config{}, err
	}
	docs, loadErrs, err := corpus.Load(cfg.Dir, cfg.Ext)
	if err != nil {
		return model.Report{}, model.Config{}, err
	}
	all := metrics.ComputeAll(docs, cfg.Workers)
	rep, err := aggregate.Build(docs, all, loadErrs, cfg)
	if err != nil {
		return model.Report{}, model.Config{}, err
	}
	return rep, cfg, nil
}

func buildAnalysisConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dir", &flagDir, fileCfg.Analysis.Dir)
	applyStringConfig(cmd, "ext", &flagExt, fileCfg.Analysis.Ext)
	applyIntConfig(cmd, "column-width", &flagColumnWidth, fileCfg.Analysis.ColumnWidth)
	applyIntConfig(cmd, "workers", &flagWorkers, fileCfg.Analysis.Workers)

	minSet := cmd.Flags().Changed("min-word-length")
	if !minSet && fileCfg.Analysis.MinWordLength != nil {
		flagMinWordLength = *fileCfg.Analysis.MinWordLength
		minSet = true
	}
	maxSet := cmd.Flags().Changed("max-word-length")
	if !maxSet && fileCfg.Analysis.MaxWordLength != nil {
		flagMaxWordLength = *fileCfg.Analysis.MaxWordLength
		maxSet = true
	}
	if minSet != maxSet {
		return model.Config{}, fmt.Errorf("--min-word-length and --max-word-length must be set together")
	}
	commonSet := cmd.Flags().Changed("common-words")
	if !commonSet && fileCfg.Analysis.CommonWords != nil {
		flagCommonWords = *fileCfg.Analysis.CommonWords
		commonSet = true
	}

	cfg := model.Config{
		Dir:         flagDir,
		Ext:         flagExt,
		ColumnWidth: flagColumnWidth,
		Workers:     flagWorkers,
	}
	if minSet {
		cfg.WordLengthInterval = &model.Interval{Min: flagMinWordLength, Max: flagMaxWordLength}
	}
	if commonSet {
		n := flagCommonWords
		cfg.CommonWords = &n
	}
	if cfg.ColumnWidth == 0 && !cmd.Flags().Changed("column-width") {
		cfg.ColumnWidth = defaultColumnWidth()
	}
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// defaultColumnWidth sizes the words column from the terminal, leaving room
// for the name and numeric columns.
func defaultColumnWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = terminalWidthBackup
	}
	width -= reservedTableWidth
	if width < minColumnWidth {
		width = minColumnWidth
	}
	return width
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, fileVal *string) {
	if cmd.Flags().Changed(name) || fileVal == nil {
		return
	}
	*target = *fileVal
}

func applyIntConfig(cmd *cobra.Command, name string, target *int, fileVal *int) {
	if cmd.Flags().Changed(name) || fileVal == nil {
		return
	}
	*target = *fileVal
}

func defaultConfigTemplate() string {
	return strings.Join([]string{
		"# docstat configuration",
		"# Values here are defaults; command-line flags always win.",
		"",
		"[analysis]",
		"# dir = \"documents\"",
		"# ext = \".txt\"",
		"# min-word-length = 6",
		"# max-word-length = 8",
		"# common-words = 5",
		"# column-width = 160",
		"# workers = 4",
		"",
	}, "\n")
}
