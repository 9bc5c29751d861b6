package errors

import "errors"

// Precondition errors are raised before any value is resolved or any file is written.
var (
	// ErrMissingTemplatePath indicates no template path was given on the command line or in the config.
	ErrMissingTemplatePath = errors.New("settings template path undefined")

	// ErrMissingOutputPath indicates no output path was given on the command line or in the config.
	ErrMissingOutputPath = errors.New("settings output path undefined")

	// ErrTemplateNotFound indicates the settings template file does not exist.
	ErrTemplateNotFound = errors.New("settings template file does not exist")

	// ErrEmptySecretKey indicates the operator chose to enter the secret key but left it empty.
	ErrEmptySecretKey = errors.New("secret key is needed for encryption")

	// ErrGenerationCancelled indicates the operator declined to overwrite an existing file.
	ErrGenerationCancelled = errors.New("generation cancelled")
)

// Template errors indicate a template that cannot be turned into a settings file.
var (
	// ErrInvalidTemplate indicates the template could not be parsed as INI.
	ErrInvalidTemplate = errors.New("settings template is invalid")

	// ErrUnknownDirective indicates a placeholder whose directive is not recognized.
	ErrUnknownDirective = errors.New("unknown template directive")
)

// Cryptographic errors indicate an envelope that failed validation.
var (
	// ErrDecryptFailed is the umbrella error for every decryption validation failure.
	ErrDecryptFailed = errors.New("error in decryption")

	// ErrInvalidCiphertext indicates the envelope is not valid base64 or has a bad length.
	ErrInvalidCiphertext = errors.New("invalid ciphertext envelope")

	// ErrInvalidPadding indicates the PKCS#7 padding of the decrypted block is malformed.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrRoundTripMismatch indicates a value decrypted to something other than its plaintext.
	ErrRoundTripMismatch = errors.New("round-trip value does not match plaintext")

	// ErrRetriesExhausted indicates every candidate secret key failed round-trip validation.
	ErrRetriesExhausted = errors.New("error while encoding / decoding values with the secret key")
)

// Prompt errors indicate the interactive console could not be used.
var (
	// ErrNotATerminal indicates a masked prompt was requested but stdin is not a terminal.
	ErrNotATerminal = errors.New("stdin is not a terminal")
)

// Audit errors indicate issues reading the audit trail.
var (
	// ErrNoAuditLog indicates no run has been recorded yet.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrInvalidDateFormat indicates a --since date that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

// Configuration errors indicate a confgen config file that cannot be used.
var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file is malformed or holds invalid values.
	ErrInvalidConfig = errors.New("config file is invalid")

	// ErrConfigExists indicates init would overwrite an existing config file.
	ErrConfigExists = errors.New("config file already exists")
)
