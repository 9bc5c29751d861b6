// Package configs manages confgen's configuration.
//
// The generate command reads its defaults from a TOML file:
//
//	[settings]
//	template_path = "conf/settings_template.ini"
//	output_path = "conf/settings.ini"
//	force_secret_key = false
//	strict_directives = false
//	max_retries = 3
//
// The file is looked up in this order:
//
//  1. The path passed with --config
//  2. ./confgen.toml
//  3. <user config dir>/confgen/config.toml
//
// When no file exists the defaults from DefaultConfig are used. Relative
// paths in a config file are resolved against the directory holding it.
// Positional arguments and flags override the file through Config.WithArgs.
//
// # Settings
//
// UserConfgenSettings is initialized at startup with the user config
// directory (also home of the audit log) and the system username.
package configs
