// Package config resolves runtime configuration from Viper, which in turn
// merges flags, environment variables, and the optional config file.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/umleo/schedview/pkg/constants"
)

// Configuration keys.
const (
	// KeyDataDir locates the directory holding the term extracts.
	KeyDataDir = "data_dir"

	// KeyBuildingsURL overrides the building-name mapping URL.
	KeyBuildingsURL = "buildings_url"

	// KeyServerAddr sets the serve listen address.
	KeyServerAddr = "server_addr"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// DataDir returns the extract directory, defaulting to the current
// directory.
func DataDir() string {
	if dir := GetString(KeyDataDir); dir != "" {
		return dir
	}
	return "."
}

// BuildingsURL returns the building-name mapping URL.
func BuildingsURL() string {
	if url := GetString(KeyBuildingsURL); url != "" {
		return url
	}
	return constants.BuildingsURL
}

// ServerAddr returns the serve listen address.
func ServerAddr() string {
	if addr := GetString(KeyServerAddr); addr != "" {
		return addr
	}
	return constants.DefaultServerAddr
}
