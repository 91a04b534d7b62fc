package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmans/gradebook/internal/config"
)

var initForce bool

var errConfigExists = errors.New("config file already exists")

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes gradebook.toml (or the file named by --config) with the default port
and seed paths. An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.Default()
		if dataDir != "" {
			c.Data = config.DataInDir(dataDir)
		}
		if err := writeConfig(c, configPath, initForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
		return nil
	},
}

// writeConfig saves c to path, refusing to replace an existing file unless force is set.
func writeConfig(c *config.Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w (use --force to overwrite)", path, errConfigExists)
		}
	}
	if err := c.Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
