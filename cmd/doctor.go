package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/rnadoc/internal/config"
	"github.com/kamusis/rnadoc/internal/docs"
	"github.com/kamusis/rnadoc/internal/registry"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that rnadoc's config, registry dump and manual property tables
are usable. Run this command when a lookup fails unexpectedly.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("rnadoc doctor")

	// ── Check 1: config ───────────────────────────────────────────────────────
	fmt.Fprintln(stdout, "\n[ rnadoc.yaml ]")
	cfgPath, _ := config.ConfigPath()
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printInfo("", "no config file — using defaults (run 'rnadoc init' to create one)")
	}
	cfg, err := config.Load()
	if err != nil {
		failD("cannot load config: %v", err)
		cfg = &config.Config{}
	} else {
		printOK("", "config ok")
	}
	env, err := config.LoadEnv()
	if err != nil {
		failD("cannot load env: %v", err)
		env = &config.Env{}
	}
	tables := config.ManualPropertyTables(cfg, env)

	// ── Check 2: manual property tables ───────────────────────────────────────
	fmt.Fprintln(stdout, "\n[ Manual properties ]")
	if builtin, err := docs.DefaultManualProperties(); err != nil {
		failD("%v", err)
	} else {
		printOK("", fmt.Sprintf("built-in table: %d properties", len(builtin)))
	}
	if len(tables) == 0 {
		printInfo("", "no extra manual tables")
	}
	for _, p := range tables {
		extra, err := docs.LoadManualProperties(p)
		if err != nil {
			failD("%v", err)
			continue
		}
		printOK("", fmt.Sprintf("%s: %d properties", p, len(extra)))
	}

	// ── Check 3: registry dump ────────────────────────────────────────────────
	fmt.Fprintln(stdout, "\n[ Registry dump ]")
	path, err := config.ResolveRegistryPath(cfg, env, flagRegistry)
	if err != nil {
		failD("%v", err)
	} else if _, err := os.Stat(path); err != nil {
		failD("registry dump not found: %s", path)
	} else if reg, err := registry.Load(cmd.Context(), path); err != nil {
		failD("%v", err)
	} else {
		d := docs.New()
		if err := d.Build(cmd.Context(), reg); err != nil {
			failD("index build failed: %v", err)
		} else {
			s := d.Stats()
			printOK("", fmt.Sprintf("%s: %d types, %d properties, %d functions", path, s.Types, s.Properties, s.Functions))
		}
	}

	fmt.Fprintln(stdout)
	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	printOK("", "all checks passed")
	return nil
}
