package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/ui"
	"github.com/PolarWolf314/confgen/internal/utils"
	"github.com/PolarWolf314/confgen/internal/workflows"
	"github.com/spf13/cobra"
)

var valueSecret string

func init() {
	encryptCmd.Flags().StringVar(&valueSecret, "secret", "", "master secret (prompted without echo when omitted)")
	decryptCmd.Flags().StringVar(&valueSecret, "secret", "", "master secret (prompted without echo when omitted)")
}

// resetValueCommandState resets the encrypt and decrypt commands' global state for testing.
func resetValueCommandState() {
	valueSecret = ""
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [value]",
	Short: "Encrypts a single value for pasting into a settings file",
	Long: `Encrypts a value with the same envelope the generate command writes.

The value is read from the argument or, when omitted, from piped stdin.
When stdin carries the value the secret must be passed with --secret.

Examples:
  confgen settings encrypt hunter2
  echo -n hunter2 | confgen settings encrypt --secret "$SECRET_KEY"`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		value, secret, err := readValueAndSecret(args)
		if err != nil {
			fmt.Println(fail(err.Error()))
			return err
		}

		result, err := workflows.EncryptValue(context.Background(), workflows.EncryptOptions{
			Value:  value,
			Secret: secret,
		})
		if err != nil {
			fmt.Println(formatValueError(err))
			return err
		}

		Logger.Infof("Encrypt command completed")
		fmt.Fprintln(cmd.OutOrStdout(), result.Ciphertext)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext]",
	Short: "Decrypts a single value taken from a settings file",
	Long: `Decrypts a value written by the generate or encrypt commands.

The ciphertext is read from the argument or, when omitted, from piped stdin.
When stdin carries the ciphertext the secret must be passed with --secret.

Examples:
  confgen settings decrypt 'q0Zp...=='
  echo 'q0Zp...==' | confgen settings decrypt --secret "$SECRET_KEY"`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		ciphertext, secret, err := readValueAndSecret(args)
		if err != nil {
			fmt.Println(fail(err.Error()))
			return err
		}

		result, err := workflows.DecryptValue(context.Background(), workflows.DecryptOptions{
			Ciphertext: ciphertext,
			Secret:     secret,
		})
		if err != nil {
			fmt.Println(formatValueError(err))
			return err
		}

		Logger.Infof("Decrypt command completed")
		fmt.Fprintln(cmd.OutOrStdout(), result.Plaintext)
		return nil
	},
}

// readValueAndSecret takes the value from args or piped stdin and the secret
// from --secret or a masked prompt.
func readValueAndSecret(args []string) (string, string, error) {
	var value string
	stdinUsed := false
	if len(args) > 0 {
		value = args[0]
	} else {
		Logger.Debugf("No value argument, reading stdin")
		v, err := utils.ReadStdin()
		if err != nil {
			return "", "", fmt.Errorf("no value given: %w", err)
		}
		value = v
		stdinUsed = true
	}

	if valueSecret != "" {
		return value, valueSecret, nil
	}
	if stdinUsed {
		return "", "", fmt.Errorf("%s is required when the value is piped on stdin", ui.Flag.Sprint("--secret"))
	}

	secret, err := newPrompter().AskMasked("Secret key : ")
	if err != nil {
		return "", "", fmt.Errorf("reading secret key: %w", err)
	}
	return value, secret, nil
}

func formatValueError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrEmptySecretKey):
		return fail("Secret key is needed for encryption")

	case errors.Is(err, kerrors.ErrDecryptFailed):
		return fail("Error in decryption") + "\n" +
			hint("Check that the value was encrypted with this secret key")

	default:
		return fail(err.Error())
	}
}
