package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/confgen/cmd"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "confgen - generate settings files with encrypted values from templates",
	Long: `confgen turns an INI settings template into a settings file.

Placeholders in the template are filled in interactively: plain values are
written as typed, sensitive values are encrypted under a master secret, and the
master secret itself is generated or entered.

Usage:
  confgen <command> [flags]

Available Commands:
  settings   Generate settings files and encrypt or decrypt values

Run 'confgen help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		figure.NewColorFigure("confgen", "small", "cyan", true).Print()
		fmt.Println()
		fmt.Println("Run 'confgen --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.SettingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
