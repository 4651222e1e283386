package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kamusis/rnadoc/internal/config"
	"github.com/kamusis/rnadoc/internal/ctxlog"
	"github.com/kamusis/rnadoc/internal/docs"
	"github.com/kamusis/rnadoc/internal/registry"
	"github.com/spf13/cobra"
)

var (
	flagRegistry string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:          "rnadoc",
	Short:        "rnadoc — browse the host application's runtime type documentation",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `rnadoc indexes a registry dump exported from the host application and
answers documentation lookups: type descriptions, the properties and functions
of a type, and every type a property name may belong to.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		level := slog.LevelWarn
		if flagDebug || env.Debug {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "Registry dump to read (default: $RNADOC_REGISTRY or registry_path in ~/.rnadoc/rnadoc.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug logs to stderr")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDocumentation reads the configured registry dump and builds the index.
func loadDocumentation(ctx context.Context) (*docs.Documentation, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	path, err := config.ResolveRegistryPath(cfg, env, flagRegistry)
	if err != nil {
		return nil, err
	}

	var opts []docs.Option
	for _, p := range config.ManualPropertyTables(cfg, env) {
		extra, err := docs.LoadManualProperties(p)
		if err != nil {
			return nil, err
		}
		opts = append(opts, docs.WithManualProperties(extra...))
	}

	log := ctxlog.FromContext(ctx)
	log.Debug("loading registry dump", "path", path)
	reg, err := registry.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w\nExport a registry dump from the host first, or pass --registry.", err)
	}

	d := docs.New(opts...)
	if err := d.Build(ctx, reg); err != nil {
		return nil, fmt.Errorf("index build failed: %w", err)
	}
	return d, nil
}
