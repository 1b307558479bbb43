package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/utils"
)

// InitCommand returns the CLI command for initializing critic
func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize or update the critic environment",
		Description: "Sets up the critic configuration directory and extracts the " +
			"sample .env file. Use this command for first-time setup; an existing " +
			".env is backed up with a dated suffix before being replaced.",
		Action: func(c *cli.Context) error {
			utils.PrintHeading("Initializing critic")

			// Get user's home directory
			homeDir, err := os.UserHomeDir()
			if err != nil {
				utils.PrintError(fmt.Sprintf("Failed to get user home directory: %s", err))
				return fmt.Errorf("failed to get user home directory: %w", err)
			}

			// Set up config directory (typically ~/.critic)
			configDir := filepath.Join(homeDir, ".critic")
			utils.PrintInfo("Configuration directory: " + color.YellowString("%s", configDir))

			// Extract the default environment file (with backup if needed)
			utils.PrintInfo("Extracting default configuration file")
			if err := config.SetupConfigDirectory(configDir); err != nil {
				utils.PrintError(fmt.Sprintf("Failed to set up configuration files: %s", err))
				return fmt.Errorf("failed to set up configuration files: %w", err)
			}

			configFilePath := filepath.Join(configDir, ".env")
			utils.PrintSuccess("critic initialized successfully!")
			utils.PrintInfo("Configuration file: " + color.YellowString("%s", configFilePath))
			utils.PrintInfo("Set " + color.CyanString("CRITIC_CLAUDE_API_KEY") +
				" (or switch to the ollama provider) before running a review.")

			return nil
		},
	}
}
