package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/confgen/internal/configs"
	kerrors "github.com/PolarWolf314/confgen/internal/errors"
	"github.com/PolarWolf314/confgen/internal/utils"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Path is the config file to write. Defaults to ./confgen.toml.
	Path string

	// Config holds the values to write.
	Config configs.Config

	// Overwrite replaces an existing file.
	Overwrite bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	Path   string
	Config configs.Config
}

// Init writes a starter confgen.toml for the generate command.
//
// Returns ErrConfigExists if the file exists and Overwrite is false.
// Returns ErrInvalidConfig if MaxRetries is negative.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	path := opts.Path
	if path == "" {
		path = configs.ConfigFileName
	}

	if opts.Config.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: max_retries must not be negative", kerrors.ErrInvalidConfig)
	}
	if !opts.Overwrite && utils.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := configs.SaveConfig(path, opts.Config); err != nil {
		return nil, err
	}

	return &InitResult{Path: path, Config: opts.Config}, nil
}
