// Package platform holds the OS-specific glue: launch-at-login, user idle
// detection and the single-instance lock.
package platform

import (
	"fmt"
	"os"
	"strings"
)

const defaultAppName = "vibeflo"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns the implementation for the current OS.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory, falling
// back to the conventional per-OS location when the environment does not
// provide one.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// sanitizedAppName lowercases the name for use in file names and labels.
func sanitizedAppName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		return defaultAppName
	}
	return name
}
