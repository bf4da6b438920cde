package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	APP_NAME    = "rerec"
	CONFIG_FILE = "config.toml"
)

// UserConfigFile is the config file looked up when no --config is given.
func UserConfigFile() (string, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE), nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	return configDir, nil
}
