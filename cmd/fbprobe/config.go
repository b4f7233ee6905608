package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fbprobe/pkg/config"
	"fbprobe/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage fbprobe configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (FBPROBE_*)
  - Configuration file
  - Default values (lowest priority)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Create a configuration file populated with the default settings.

The file is written to $HOME/.config/fbprobe/config.yaml unless a
different path is given with the --config flag.`,
	Run: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration the probe would run with, merged from all
sources: command line flags, environment variables, the configuration
file and defaults. The YAML goes to stdout.`,
	Run: runConfigShow,
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which configuration file is in use",
	Run:   runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Never clobber an existing file
	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists", configPath)
		os.Exit(1)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		ui.PrintError("Failed to create configuration file", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	ui.PrintPlain("")
	ui.PrintPlain("Next steps:")
	ui.PrintPlain("1. Edit the page list and probe budget to taste")
	ui.PrintPlain("2. Run 'fbprobe config show' to review the effective configuration")
	ui.PrintPlain("3. Start probing with 'fbprobe scrape'")
}

func runConfigShow(cmd *cobra.Command, args []string) {
	// Load configuration from every source except command line flags
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		ui.PrintError("Failed to format configuration", err.Error())
		os.Exit(1)
	}

	ui.PrintHighlight("Current Configuration")
	fmt.Print(string(data))

	ui.PrintPlain("")
	ui.PrintPlain("Configuration sources (in order of priority):")
	ui.PrintPlain("1. Command line flags")
	ui.PrintPlain("2. Environment variables (FBPROBE_*)")
	if configFile != "" {
		ui.PrintPlain(fmt.Sprintf("3. Configuration file: %s", configFile))
	} else if found := config.FindConfigFile(); found != "" {
		ui.PrintPlain(fmt.Sprintf("3. Configuration file: %s", found))
	} else {
		ui.PrintPlain("3. Configuration file: (none found)")
	}
	ui.PrintPlain("4. Default values")
}

func runConfigPath(cmd *cobra.Command, args []string) {
	path := configFile
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		ui.PrintWarning("No configuration file found, showing the default location")
		path = config.DefaultConfigPath()
	}

	fmt.Println(path)
}
