package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"hippo/internal/config"
	"hippo/internal/metrics/inmemory"
	"hippo/internal/metrics/prom"
	"hippo/internal/storage"
	"hippo/internal/store"
)

const Version = "v0.1.0"

var errNoHippo = errors.New("no hippo yet. Run 'hippo onboard' first")

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath  string
	verbose     bool
	showMetrics bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "hippo",
		Short:         "Raise a hippo in your terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/hippo/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log state changes to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.showMetrics, "metrics", false, "Print the counters collected during this run on exit")

	rootCmd.AddCommand(
		newUICmd(opts),
		newStatsCmd(opts),
		newOnboardCmd(opts),
		newStatusCmd(opts),
		newShopCmd(opts),
		newEquipCmd(opts),
		newUnequipCmd(opts),
		newGameCmd(opts),
		newBubbleCmd(opts),
		newResetCmd(opts),
	)
	for _, c := range newActionCmds(opts) {
		rootCmd.AddCommand(c)
	}
	return rootCmd
}

// app is everything a command needs, opened from the config.
type app struct {
	cfg   config.Config
	kv    storage.Store
	store *store.Store

	dumpMetrics func(io.Writer) error
	logFile     *os.File
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openApp loads the config, points the log where it belongs and opens the
// storage backend and the store.
func openApp(ctx context.Context, opts *rootOptions, interactive bool) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if err := a.setupLogging(opts, interactive); err != nil {
		return nil, err
	}

	metrics, dump, err := newMetrics(cfg.Metrics)
	if err != nil {
		a.closeLog()
		return nil, err
	}
	a.dumpMetrics = dump

	kv, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		a.closeLog()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	a.kv = kv
	a.store = store.Open(ctx, kv,
		store.WithDecayInterval(cfg.DecayInterval()),
		store.WithRewardPolicy(cfg.Policy()),
		store.WithMetrics(metrics),
	)
	return a, nil
}

func (a *app) setupLogging(opts *rootOptions, interactive bool) error {
	if interactive {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		f, err := tea.LogToFile(filepath.Join(dir, config.LogFileName), "hippo")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		return nil
	}
	if opts.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

func (a *app) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// close writes pending changes and releases the backend.
func (a *app) close(opts *rootOptions, w io.Writer) error {
	var errs []error
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save hippo: %w", err))
	}
	if err := a.kv.Close(); err != nil {
		errs = append(errs, err)
	}
	if opts.showMetrics && a.dumpMetrics != nil {
		if err := a.dumpMetrics(w); err != nil {
			errs = append(errs, err)
		}
	}
	a.closeLog()
	return errors.Join(errs...)
}

// withStore runs fn against an opened app and always closes it.
func withStore(cmd *cobra.Command, opts *rootOptions, fn func(a *app) error) error {
	return withApp(cmd, opts, false, fn)
}

// withApp is withStore for commands that take over the terminal; their log
// goes to the log file so it cannot draw over the screen.
func withApp(cmd *cobra.Command, opts *rootOptions, interactive bool, fn func(a *app) error) (err error) {
	a, err := openApp(cmd.Context(), opts, interactive)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.close(opts, cmd.ErrOrStderr()); err == nil {
			err = cerr
		}
	}()
	return fn(a)
}

// newMetrics builds the configured recorder and a function that prints
// what it collected.
func newMetrics(backend string) (store.Metrics, func(io.Writer) error, error) {
	switch backend {
	case config.MetricsOff:
		return nil, nil, nil
	case config.MetricsPrometheus:
		reg := prometheus.NewRegistry()
		rec, err := prom.NewRecorder(reg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		return rec, func(w io.Writer) error {
			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
					return err
				}
			}
			return nil
		}, nil
	default:
		rec := inmemory.NewRecorder()
		return rec, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rec.Snapshot())
		}, nil
	}
}
