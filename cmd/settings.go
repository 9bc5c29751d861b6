package cmd

import (
	logger "github.com/PolarWolf314/confgen/internal/logging"
	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	SettingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Generate and inspect settings files with encrypted values",
		Long:  `Provides generation of settings files from templates, single-value encryption and decryption, and the audit log of past runs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing settings command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SettingsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SettingsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	SettingsCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a confgen.toml config file")

	SettingsCmd.AddCommand(initCmd)
	SettingsCmd.AddCommand(generateCmd)
	SettingsCmd.AddCommand(encryptCmd)
	SettingsCmd.AddCommand(decryptCmd)
	SettingsCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetSettingsCmd returns the SettingsCmd for testing.
func GetSettingsCmd() *cobra.Command {
	return SettingsCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configPath = ""
	resetInitCommandState()
	resetGenerateCommandState()
	resetValueCommandState()
	resetLogCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// SetPrompter makes every command read its answers from p instead of the
// terminal. Returns a function restoring the terminal prompter.
func SetPrompter(p prompt.Prompter) func() {
	original := newPrompter
	newPrompter = func() prompt.Prompter { return p }
	return func() { newPrompter = original }
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}
