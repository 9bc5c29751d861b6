package workflows

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/confgen/internal/audit"
	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/prompt"
	"github.com/PolarWolf314/confgen/internal/secrets"
	"github.com/PolarWolf314/confgen/internal/template"
	"github.com/PolarWolf314/confgen/internal/utils"
)

// SecretSource tells how the master secret was obtained.
type SecretSource string

const (
	SecretGenerated SecretSource = "generated"
	SecretEntered   SecretSource = "entered"
)

// FieldRef is a (section, key) location in a template.
type FieldRef struct {
	Section string
	Key     string
}

func (f FieldRef) String() string {
	return f.Section + "." + f.Key
}

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// TemplatePath is the INI template to read.
	TemplatePath string

	// OutputPath is where the settings file is written.
	OutputPath string

	// ForceSecretKey generates the master secret without asking.
	ForceSecretKey bool

	// StrictDirectives rejects unknown directives before any value is prompted.
	StrictDirectives bool

	// MaxRetries bounds secret regeneration. Ignored for an entered secret.
	MaxRetries int

	// Prompter asks the operator for values. Required.
	Prompter prompt.Prompter

	// Cipher defaults to AESCipher.
	Cipher Cipher

	// GenerateSecret defaults to secrets.GenerateSecretKey.
	GenerateSecret func() (string, error)
}

// GenerateOptionsFromConfig builds options from a resolved config.
func GenerateOptionsFromConfig(config configs.Config, p prompt.Prompter) GenerateOptions {
	return GenerateOptions{
		TemplatePath:     config.TemplatePath,
		OutputPath:       config.OutputPath,
		ForceSecretKey:   config.ForceSecretKey,
		StrictDirectives: config.StrictDirectives,
		MaxRetries:       config.MaxRetries,
		Prompter:         p,
	}
}

// GeneratePlan holds everything collected from the operator. It is produced by
// PrepareGenerate and consumed by Generate.
type GeneratePlan struct {
	TemplatePath string
	OutputPath   string

	// Overwrite is true when the operator agreed to replace an existing file.
	Overwrite bool

	SecretSource SecretSource

	// UnknownFields hold directives that resolve to an empty value.
	UnknownFields []template.Field

	template     *template.Template
	secret       string
	values       map[FieldRef]string
	encrypted    []FieldRef
	secretFields []FieldRef
	maxRetries   int
	cipher       Cipher
	generate     func() (string, error)
}

// EncryptedFields returns the fields that will be written encrypted, in template order.
func (p *GeneratePlan) EncryptedFields() []FieldRef {
	return append([]FieldRef(nil), p.encrypted...)
}

// SecretFields returns the fields that receive the master secret, in template order.
func (p *GeneratePlan) SecretFields() []FieldRef {
	return append([]FieldRef(nil), p.secretFields...)
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	OutputPath      string
	SecretSource    SecretSource
	EncryptedFields []FieldRef
	SecretFields    []FieldRef
	UnknownFields   []template.Field

	// Attempts is the number of candidate secrets tried, at least 1.
	Attempts int
}

// PrepareGenerate runs every interactive step of settings generation:
//  1. Checks the template and output paths
//  2. Asks before overwriting an existing output file
//  3. Asks whether to generate the master secret or reads it
//  4. Prompts for every USER_VALUE and ENCRYPTED_USER_VALUE field in template order
//
// Nothing is encrypted or written here.
//
// Returns ErrMissingTemplatePath or ErrMissingOutputPath when a path is empty.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrGenerationCancelled if the operator declines to overwrite.
// Returns ErrEmptySecretKey if the operator enters an empty secret.
// Returns ErrUnknownDirective for unknown directives when StrictDirectives is set.
func PrepareGenerate(ctx context.Context, opts GenerateOptions) (*GeneratePlan, error) {
	if opts.TemplatePath == "" {
		return nil, kerrors.ErrMissingTemplatePath
	}
	if opts.OutputPath == "" {
		return nil, kerrors.ErrMissingOutputPath
	}
	if !utils.FileExists(opts.TemplatePath) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrTemplateNotFound, opts.TemplatePath)
	}
	if opts.Prompter == nil {
		return nil, fmt.Errorf("generate requires a prompter")
	}

	plan := &GeneratePlan{
		TemplatePath: opts.TemplatePath,
		OutputPath:   opts.OutputPath,
		values:       make(map[FieldRef]string),
		maxRetries:   opts.MaxRetries,
		cipher:       cipherOrDefault(opts.Cipher),
		generate:     opts.GenerateSecret,
	}
	if plan.generate == nil {
		plan.generate = secrets.GenerateSecretKey
	}

	if utils.FileExists(opts.OutputPath) {
		answer, err := opts.Prompter.AskVisible(fmt.Sprintf(
			"A configuration file already exists at %s. Would you override it ? (y/N) : ", opts.OutputPath))
		if err != nil {
			return nil, fmt.Errorf("reading overwrite confirmation: %w", err)
		}
		if !isYes(answer) {
			return nil, kerrors.ErrGenerationCancelled
		}
		plan.Overwrite = true
	}

	tmpl, err := template.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	plan.template = tmpl

	fields := tmpl.Fields()
	if opts.StrictDirectives {
		for _, f := range fields {
			if !f.Directive.Known() {
				return nil, fmt.Errorf("%w: {%s} at [%s] %s", kerrors.ErrUnknownDirective, f.Directive, f.Section, f.Key)
			}
		}
	}

	if err := plan.chooseSecret(opts); err != nil {
		return nil, err
	}

	if err := plan.resolve(ctx, fields, opts.Prompter); err != nil {
		return nil, err
	}

	return plan, nil
}

func (p *GeneratePlan) chooseSecret(opts GenerateOptions) error {
	p.SecretSource = SecretGenerated
	if opts.ForceSecretKey {
		return nil
	}

	answer, err := opts.Prompter.AskVisible("Do you want to generate the secret key? (Y/n) : ")
	if err != nil {
		return fmt.Errorf("reading secret key choice: %w", err)
	}
	if !isNo(answer) {
		return nil
	}

	secret, err := opts.Prompter.AskVisible("Enter your secret key : ")
	if err != nil {
		return fmt.Errorf("reading secret key: %w", err)
	}
	if secret == "" {
		return kerrors.ErrEmptySecretKey
	}

	p.SecretSource = SecretEntered
	p.secret = secret
	return nil
}

// Generate validates the master secret against every encrypted field, fills
// the template and writes the settings file. The file is written only when
// every step succeeded.
//
// Returns ErrRetriesExhausted if no candidate secret passes round-trip validation.
func Generate(ctx context.Context, plan *GeneratePlan) (*GenerateResult, error) {
	entry := audit.LogWithUser("generate")
	entry.TemplatePath = plan.TemplatePath
	entry.OutputPath = plan.OutputPath
	entry.SecretSource = string(plan.SecretSource)
	for _, f := range plan.encrypted {
		entry.EncryptedFields = append(entry.EncryptedFields, f.String())
	}

	acc, err := plan.acceptSecret(ctx)
	if err != nil {
		entry.Outcome = "failed"
		audit.Log(entry)
		return nil, err
	}
	entry.Attempts = acc.attempts

	out, err := plan.fill(acc)
	if err != nil {
		return nil, err
	}

	err = utils.WriteFileAtomic(plan.OutputPath, 0600, func(w io.Writer) error {
		_, err := out.WriteTo(w)
		return err
	})
	if err != nil {
		entry.Outcome = "failed"
		audit.Log(entry)
		return nil, fmt.Errorf("writing settings file: %w", err)
	}

	entry.Outcome = "success"
	audit.Log(entry)

	return &GenerateResult{
		OutputPath:      plan.OutputPath,
		SecretSource:    plan.SecretSource,
		EncryptedFields: plan.EncryptedFields(),
		SecretFields:    plan.SecretFields(),
		UnknownFields:   plan.UnknownFields,
		Attempts:        acc.attempts,
	}, nil
}

// fill substitutes resolved values into a copy of the template.
func (p *GeneratePlan) fill(acc *acceptance) (*template.Template, error) {
	out, err := p.template.Clone()
	if err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	for ref, value := range p.values {
		out.Set(ref.Section, ref.Key, value)
	}
	for _, ref := range p.encrypted {
		out.Set(ref.Section, ref.Key, acc.encrypted[ref])
	}
	for _, ref := range p.secretFields {
		out.Set(ref.Section, ref.Key, acc.secret)
	}
	for _, f := range p.UnknownFields {
		out.Set(f.Section, f.Key, "")
	}

	return out, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func isNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return true
	}
	return false
}
