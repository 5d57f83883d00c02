package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/config"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/manifest"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/pipeline"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/watch"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "i18n-pipeline",
		Short: "Compile resource-bundle message files into JavaScript assets",
		Long: `Converts .i18n asset request files plus Java-style .properties/XML
message bundles into scripts exposing $L(code, ...args) / msg(code, ...args)
lookup functions, with locale-suffix bundle resolution.`,
	}

	rootCmd.AddCommand(compileCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func compileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <source-dir> <output-dir>",
		Short: "Compile all .i18n assets under a source tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return runCompile(args[0], args[1], force)
		},
	}
	cmd.Flags().Bool("force", false, "Recompile every asset, ignoring digests")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <source-dir> <output-dir>",
		Short: "Compile, then recompile whenever i18n sources change",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			debounceMs, _ := cmd.Flags().GetInt("debounce")
			return runWatch(args[0], args[1], time.Duration(debounceMs)*time.Millisecond)
		},
	}
	cmd.Flags().Int("debounce", 300, "Change debounce in milliseconds")
	return cmd
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <asset-file>",
		Short: "Compile a single .i18n asset to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0])
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <source-dir>",
		Short: "Report {n} placeholder mismatches between bundle locale variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// buildCompiler merges environment config with the source tree's
// manifest (the manifest wins where set) into pipeline options.
func buildCompiler(srcDir, outDir string, force bool) (*pipeline.Compiler, error) {
	cfg := config.Load()
	applyLogLevel(cfg.LogLevel)

	m, err := manifest.Load(srcDir)
	if err != nil {
		return nil, err
	}

	dirs := cfg.BundleDirs
	if len(m.Bundle.Dirs) > 0 {
		dirs = m.Bundle.Dirs
	}
	locale := cfg.DefaultLocale
	if m.Bundle.DefaultLocale != "" {
		locale = m.Bundle.DefaultLocale
	}
	workers := cfg.WorkerCount
	if m.Build.Workers > 0 {
		workers = m.Build.Workers
	}

	var cache *pipeline.DigestCache
	if cfg.CacheEnabled && outDir != "" {
		cache = pipeline.LoadDigestCache(filepath.Join(outDir, pipeline.CacheFileName))
	}

	return pipeline.NewCompiler(pipeline.Options{
		BundleDirs:    dirs,
		DefaultLocale: locale,
		Cache:         cache,
		Force:         force,
		Workers:       workers,
	}), nil
}

func applyLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("Unknown log level, keeping default")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

// runCompile handles the `compile` command.
func runCompile(srcDir, outDir string, force bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	compiler, err := buildCompiler(srcDir, outDir, force)
	if err != nil {
		return err
	}

	sum, err := compiler.CompileTree(ctx, srcDir, outDir)
	if err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d asset(s) failed to compile", sum.Failed)
	}
	return nil
}

// runWatch handles the `watch` command.
func runWatch(srcDir, outDir string, debounce time.Duration) error {
	ctx, cancel := setupContext()
	defer cancel()

	compiler, err := buildCompiler(srcDir, outDir, false)
	if err != nil {
		return err
	}

	if _, err := compiler.CompileTree(ctx, srcDir, outDir); err != nil {
		return err
	}

	w := watch.New(debounce, func() {
		if _, err := compiler.CompileTree(ctx, srcDir, outDir); err != nil {
			log.Error().Err(err).Msg("Recompile failed")
		}
	})

	if err := w.Run(ctx, srcDir); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// runRender handles the `render` command.
func runRender(assetPath string) error {
	compiler, err := buildCompiler(filepath.Dir(assetPath), "", false)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(assetPath)
	if err != nil {
		return fmt.Errorf("resolve asset path: %w", err)
	}

	out, err := compiler.CompileAssetFile(abs)
	if err != nil {
		return err
	}

	fmt.Print(out.JS)
	return nil
}

// runCheck handles the `check` command.
func runCheck(srcDir string) error {
	cfg := config.Load()
	applyLogLevel(cfg.LogLevel)

	issues, err := pipeline.CheckPlaceholders(srcDir)
	if err != nil {
		return err
	}

	for _, issue := range issues {
		log.Warn().
			Str("resource", issue.Resource).
			Str("key", issue.Key).
			Ints("missing", issue.Missing).
			Ints("extra", issue.Extra).
			Msg("Placeholder mismatch")
	}

	if n := len(issues); n > 0 {
		return fmt.Errorf("%d placeholder mismatch(es) found", n)
	}

	log.Info().Msg("Placeholder check passed")
	return nil
}
