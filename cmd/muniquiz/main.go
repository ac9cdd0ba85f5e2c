// Package main provides the CLI entrypoint for muniquiz.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/muniquiz/internal/completion"
	"github.com/verte-zerg/muniquiz/internal/config"
	"github.com/verte-zerg/muniquiz/internal/facts"
	"github.com/verte-zerg/muniquiz/internal/lineedit"
	"github.com/verte-zerg/muniquiz/internal/logging"
	"github.com/verte-zerg/muniquiz/internal/picker"
	"github.com/verte-zerg/muniquiz/internal/quiz"
)

var (
	quizFacts     string
	quizSeed      int64
	quizDelims    string
	quizListLimit int
	quizLogLevel  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "muniquiz",
		Short:         "Municipality to county quiz trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runQuizCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&quizFacts, "facts", "", "fact set: .tsv file, .db/.sqlite database, or name under the facts dir (default: builtin New Jersey)")
	flags.StringVar(&quizLogLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().Int64Var(&quizSeed, "seed", 0, "random seed for reproducible question order (0: time based)")
	rootCmd.Flags().StringVar(&quizDelims, "delims", lineedit.DefaultDelimiters, "characters that end the completion token")
	rootCmd.Flags().IntVar(&quizListLimit, "list-limit", lineedit.DefaultListLimit, "maximum alternatives listed on a repeated Tab")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCountiesCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), quizLogLevel)
	if err != nil {
		return err
	}
	if quizListLimit < 0 {
		return fmt.Errorf("--list-limit must be >= 0")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, err := loadFacts(ctx, logger)
	if err != nil {
		return err
	}
	engine, err := completion.New(src.Vocabulary())
	if err != nil {
		return fmt.Errorf("invalid vocabulary in %s: %w", src.Name(), err)
	}

	p := picker.New()
	if quizSeed != 0 {
		p = picker.NewSeeded(quizSeed)
	}

	out := cmd.OutOrStdout()
	reader := lineedit.New(os.Stdin, out, engine, lineedit.Config{
		Delimiters: quizDelims,
		ListLimit:  quizListLimit,
	})
	if closer, ok := reader.(io.Closer); ok {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				logger.Debug("failed to close line reader", "err", cerr)
			}
		}()
	}

	session, err := quiz.New(quiz.Options{
		Facts:          src,
		Reader:         reader,
		Out:            out,
		Picker:         p,
		Logger:         logger,
		Banner:         banner(src, lineedit.TerminalWidth(out)),
		CategorySuffix: categorySuffix(src),
	})
	if err != nil {
		return err
	}
	return session.Run(ctx)
}

// applyFileConfig fills flags the user did not set from the config file.
func applyFileConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "facts", &quizFacts, fileCfg.Quiz.Facts)
	applyConfig(cmd, "log-level", &quizLogLevel, fileCfg.Quiz.LogLevel)
	applyConfig(cmd, "seed", &quizSeed, fileCfg.Quiz.Seed)
	applyConfig(cmd, "delims", &quizDelims, fileCfg.Quiz.Delims)
	applyConfig(cmd, "list-limit", &quizListLimit, fileCfg.Quiz.ListLimit)
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func loadFacts(ctx context.Context, logger *log.Logger) (*facts.Set, error) {
	path := config.ResolveFactsPath(quizFacts)
	src, err := facts.Load(ctx, path)
	if err != nil {
		if path == "" {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load facts from %s: %w", path, err)
	}
	logger.Info("loaded facts", "source", src.Name(), "facts", src.Len(), "categories", len(src.Vocabulary()))
	return src, nil
}

func categorySuffix(src facts.Source) string {
	if src.Name() == facts.BuiltinName {
		return " County"
	}
	return ""
}

func newCountiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "counties",
		Aliases: []string{"categories"},
		Short:   "List the answers the quiz accepts",
		Args:    cobra.NoArgs,
		RunE:    runCountiesCmd,
	}
}

func runCountiesCmd(cmd *cobra.Command, _ []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), quizLogLevel)
	if err != nil {
		return err
	}
	src, err := loadFacts(cmd.Context(), logger)
	if err != nil {
		return err
	}
	for _, category := range src.Vocabulary() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), category); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the selected fact set to a .tsv file or SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCmd,
	}
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	if err := applyFileConfig(cmd); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), quizLogLevel)
	if err != nil {
		return err
	}
	src, err := loadFacts(cmd.Context(), logger)
	if err != nil {
		return err
	}
	dest := args[0]
	if err := facts.Save(cmd.Context(), dest, src); err != nil {
		return fmt.Errorf("failed to export facts to %s: %w", dest, err)
	}
	logger.Info("exported facts", "dest", dest, "facts", src.Len())
	return nil
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# muniquiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# facts = "pa"            # .tsv file, .db/.sqlite database, or name under %s
# seed = 0                # Random seed (0: time based)
# delims = %q           # Characters that end the completion token
# list-limit = %d         # Alternatives listed on a repeated Tab
# log-level = %q      # debug, info, warn, error
`,
		config.DefaultFactsDir(),
		lineedit.DefaultDelimiters,
		lineedit.DefaultListLimit,
		logging.DefaultLevel,
	)
}
