package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/confgen/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

var UserConfgenSettings *UserSettings

func init() {
	// Without a config dir the user-level config and the audit log are skipped.
	configDir, err := os.UserConfigDir()
	if err == nil {
		configDir = filepath.Join(configDir, "confgen")
	} else {
		configDir = ""
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = os.Getenv("USER")
	}

	UserConfgenSettings = &UserSettings{
		UserConfigsPath: configDir,
		Username:        username,
	}
}

// UserConfigPath returns the path of the user-level config file, or "" if there is no config dir.
func UserConfigPath() string {
	if UserConfgenSettings.UserConfigsPath == "" {
		return ""
	}
	return filepath.Join(UserConfgenSettings.UserConfigsPath, "config.toml")
}
