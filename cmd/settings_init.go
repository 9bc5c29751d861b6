package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/ui"
	"github.com/PolarWolf314/confgen/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	initTemplate   string
	initOutput     string
	initForceKey   bool
	initStrict     bool
	initMaxRetries int
	initUser       bool
	initOverwrite  bool
)

func init() {
	initCmd.Flags().StringVar(&initTemplate, "template", "", "default settings template path")
	initCmd.Flags().StringVar(&initOutput, "output", "", "default settings output path")
	initCmd.Flags().BoolVar(&initForceKey, "force-secret-key", false, "always generate the secret key")
	initCmd.Flags().BoolVar(&initStrict, "strict", false, "fail on unknown template directives")
	initCmd.Flags().IntVar(&initMaxRetries, "max-retries", configs.DefaultMaxRetries, "how many times a generated secret key is replaced")
	initCmd.Flags().BoolVar(&initUser, "user", false, "write the user-level config instead of ./"+configs.ConfigFileName)
	initCmd.Flags().BoolVarP(&initOverwrite, "force", "f", false, "overwrite an existing config file")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initTemplate = ""
	initOutput = ""
	initForceKey = false
	initStrict = false
	initMaxRetries = configs.DefaultMaxRetries
	initUser = false
	initOverwrite = false
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a starter confgen.toml with defaults for generate",
	Long: `Writes a config file holding the defaults of the generate command.

The file goes to ./confgen.toml, to the path given with --config, or with
--user to the user config directory.

Examples:
  confgen settings init --template settings.ini.template --output settings.ini
  confgen settings init --user --force-secret-key`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		path := configPath
		if initUser {
			path = configs.UserConfigPath()
			if path == "" {
				err := fmt.Errorf("no user config directory available")
				fmt.Println(fail(err.Error()))
				return err
			}
		}
		Logger.Debugf("Config path: %q", path)

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			Path: path,
			Config: configs.Config{
				TemplatePath:     initTemplate,
				OutputPath:       initOutput,
				ForceSecretKey:   initForceKey,
				StrictDirectives: initStrict,
				MaxRetries:       initMaxRetries,
			},
			Overwrite: initOverwrite,
		})
		if err != nil {
			fmt.Println(formatInitError(err))
			return err
		}

		Logger.Infof("Init command completed")
		fmt.Println(ui.Success.Sprint("✓") + " Config written to " + ui.Path.Sprint(result.Path) + "\n" +
			hint("Run "+ui.Code.Sprint("confgen settings generate")+" to use it"))
		return nil
	},
}

func formatInitError(err error) string {
	if errors.Is(err, kerrors.ErrConfigExists) {
		return fail(err.Error()) + "\n" +
			hint("To override, run: "+ui.Code.Sprint("confgen settings init --force"))
	}
	return fail("Failed to write config: " + err.Error())
}
