package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/rnadoc/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.rnadoc with a default config and .env template",
	Long: `Create ~/.rnadoc/rnadoc.yaml and ~/.rnadoc/.env if they are missing.

Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("rnadoc directory ready: %s", dir))

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	} else {
		printInfo("", fmt.Sprintf("config already exists: %s", cfgPath))
	}

	envPath, err := config.EnvPath()
	if err != nil {
		return err
	}
	created, err := config.WriteEnvTemplate()
	if err != nil {
		printErr("", err.Error())
		return err
	}
	if created {
		printOK("", fmt.Sprintf("env template written: %s", envPath))
	} else {
		printInfo("", fmt.Sprintf("env file already exists: %s", envPath))
	}
	return nil
}
