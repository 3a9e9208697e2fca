// Command pbrdump is the CLI entrypoint for the PBR material dump tool.
//
// It loads configuration from defaults, PBRDUMP_* environment variables and
// flags, then converts every material folder under the root directory into
// a resolution pyramid under <root>/_dump.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/backmassage/pbrdump/internal/check"
	"github.com/backmassage/pbrdump/internal/config"
	"github.com/backmassage/pbrdump/internal/display"
	"github.com/backmassage/pbrdump/internal/logging"
	"github.com/backmassage/pbrdump/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errAborted is returned by the root command once the failure has already
// been logged; main exits non-zero without printing it again.
var errAborted = errors.New("run aborted")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: the logger doesn't exist yet, so errors go straight to
	// stderr until NewLogger succeeds.
	cfg := config.DefaultConfig()
	cfg.RootDir = config.DefaultRootDir()
	if err := config.LoadEnv(&cfg, nil); err != nil {
		fmt.Fprintf(os.Stderr, "pbrdump: %v\n", err)
		return 1
	}

	cmd := newRootCmd(&cfg)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintf(os.Stderr, "pbrdump: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pbrdump [flags]",
		Short:         "Build a resolution pyramid for every PBR material folder",
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.PersistentFlags(), cfg)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		flags.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return convert(cmd.Context(), cfg)
	}
	cmd.AddCommand(newCheckCmd(cfg, flags))
	return cmd
}

// newCheckCmd returns the read-only preflight. It shares the root command's
// flags so "pbrdump check --dir X" inspects exactly what "pbrdump --dir X"
// would convert.
func newCheckCmd(cfg *config.Config, flags *config.FlagState) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report what a conversion would do without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.Apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logging.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			rootAbs, err := absDir(cfg.RootDir)
			if err != nil {
				log.Error("Root directory not usable: %v", err)
				return errAborted
			}
			log.Info("Root: %s", rootAbs)
			if _, err := check.RunCheck(cfg, osfs.New(rootAbs), log); err != nil {
				return errAborted
			}
			return nil
		},
	}
}

// convert runs the batch converter against cfg.RootDir.
func convert(parent context.Context, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	// Logger available: all output goes through log from here on.
	display.PrintBanner(os.Stdout)

	rootAbs, err := absDir(cfg.RootDir)
	if err != nil {
		log.Error("Root directory not usable: %v", err)
		return errAborted
	}

	log.Info("=== pbrdump v%s (%s) ===", version, commit)
	log.Info("Root:    %s", rootAbs)
	log.Info("Dump:    %s", filepath.Join(rootAbs, cfg.DumpDirName))
	log.Info("Buckets: %v from %s (%s filter)", cfg.Resolutions, cfg.MasterBucket(), cfg.Filter)
	log.Info("")

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Stop between materials on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current material…")
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := pipeline.Run(ctx, cfg, osfs.New(rootAbs), log); err != nil {
		return errAborted
	}
	return nil
}

// absDir returns the absolute, symlink-resolved path of dir and checks it
// is a directory.
func absDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
