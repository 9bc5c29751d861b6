package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/PolarWolf314/confgen/internal/ui"
	"github.com/PolarWolf314/confgen/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var forceSecretKey bool

func init() {
	bindGenerateFlags(generateCmd.Flags())
}

func bindGenerateFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&forceSecretKey, "force-secret-key", false, "generate the secret key without asking")
}

// resetGenerateCommandState resets the generate command's global state for testing.
func resetGenerateCommandState() {
	forceSecretKey = false
}

// newPrompter is replaced in tests.
var newPrompter = func() prompt.Prompter {
	t := prompt.NewTerminal()
	t.OnEchoFallback = func() {
		Logger.WarnfUser("stdin is not a terminal, encrypted values will be echoed")
	}
	return t
}

var generateCmd = &cobra.Command{
	Use:   "generate [template] [output]",
	Short: "Generates a settings file from a template, encrypting sensitive values",
	Long: `Reads an INI template whose values may be placeholders and writes a
settings file with every placeholder resolved.

Placeholders:
  {DJANGO_SECRET_KEY}      the master secret (generated or entered)
  {USER_VALUE}             asked for and written as typed
  {ENCRYPTED_USER_VALUE}   asked for without echo and written encrypted

Every encrypted value is checked to decrypt back to what was typed before the
file is written. A generated secret that fails the check is replaced.

Template and output paths default to the values in confgen.toml.

Examples:
  confgen settings generate settings.ini.template settings.ini
  confgen settings generate --force-secret-key`,
	Args: cobra.MaximumNArgs(2),
	// Failures are reported by the command itself.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		config, err := configs.LoadConfig(configPath)
		if err != nil {
			fmt.Println(fail(err.Error()))
			return Logger.ErrorfAndReturn("failed to load config: %w", err)
		}
		if config.Source != "" {
			Logger.Infof("Using config file %s", config.Source)
		}

		var templateArg, outputArg string
		if len(args) > 0 {
			templateArg = args[0]
		}
		if len(args) > 1 {
			outputArg = args[1]
		}
		resolved := config.WithArgs(templateArg, outputArg, forceSecretKey)
		Logger.Debugf("Template: %s, output: %s, force: %t, retries: %d",
			resolved.TemplatePath, resolved.OutputPath, resolved.ForceSecretKey, resolved.MaxRetries)

		ctx := context.Background()
		opts := workflows.GenerateOptionsFromConfig(resolved, newPrompter())

		plan, err := workflows.PrepareGenerate(ctx, opts)
		if err != nil {
			fmt.Println(formatGenerateError(err))
			return err
		}

		for _, f := range plan.UnknownFields {
			Logger.WarnfUser("Unknown directive %s at %s, writing an empty value", ui.Highlight.Sprint("{"+string(f.Directive)+"}"), ui.FieldRef(f.Section, f.Key))
		}
		Logger.Infof("Collected %d encrypted value(s), secret %s", len(plan.EncryptedFields()), plan.SecretSource)

		finish := startSpinner("Encrypting and writing settings...", !verbose && !debug)

		result, err := workflows.Generate(ctx, plan)
		if err != nil {
			finish(formatGenerateError(err))
			return err
		}

		Logger.Infof("Generate command completed after %d attempt(s)", result.Attempts)
		finish(formatGenerateSuccess(result))
		return nil
	},
}

func formatGenerateSuccess(result *workflows.GenerateResult) string {
	var b strings.Builder
	b.WriteString(ui.Success.Sprint("✓") + " Settings written to " + ui.Path.Sprint(result.OutputPath) + "\n")

	for _, f := range result.EncryptedFields {
		b.WriteString("    encrypted: " + ui.FieldRef(f.Section, f.Key) + "\n")
	}
	for _, f := range result.UnknownFields {
		b.WriteString("    empty:     " + ui.FieldRef(f.Section, f.Key) + " " + ui.Muted.Sprint("unknown directive") + "\n")
	}

	if result.SecretSource == workflows.SecretGenerated {
		if len(result.SecretFields) > 0 {
			b.WriteString(hint("The generated secret key is stored in " + ui.FieldRef(result.SecretFields[0].Section, result.SecretFields[0].Key)))
		} else {
			b.WriteString(hint("The generated secret key is not stored in the file, keep it elsewhere to decrypt values"))
		}
	}
	return b.String()
}

func formatGenerateError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrMissingTemplatePath):
		return fail("Settings template path undefined") + "\n" +
			hint("Pass it as the first argument or set "+ui.Code.Sprint("template_path")+" in confgen.toml")

	case errors.Is(err, kerrors.ErrMissingOutputPath):
		return fail("Settings output path undefined") + "\n" +
			hint("Pass it as the second argument or set "+ui.Code.Sprint("output_path")+" in confgen.toml")

	case errors.Is(err, kerrors.ErrTemplateNotFound):
		return fail(err.Error())

	case errors.Is(err, kerrors.ErrGenerationCancelled):
		return fail("Generation cancelled, the existing file was left untouched")

	case errors.Is(err, kerrors.ErrEmptySecretKey):
		return fail("Secret key is needed for encryption") + "\n" +
			hint("Answer "+ui.Code.Sprint("y")+" to generate one, or pass "+ui.Flag.Sprint("--force-secret-key"))

	case errors.Is(err, kerrors.ErrUnknownDirective):
		return fail(err.Error()) + "\n" +
			hint("Remove it from the template or unset "+ui.Code.Sprint("strict_directives")+" in confgen.toml")

	case errors.Is(err, kerrors.ErrRetriesExhausted):
		return fail("Error while encoding / decoding values with the secret key") + "\n" +
			ui.Muted.Sprint(err.Error())

	default:
		return fail("Failed to generate settings: " + err.Error())
	}
}
