package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/create-next-stack/internal/messages"
)

// EnvConfigHome is the XDG base directory consulted for the default preferences file.
const EnvConfigHome = "XDG_CONFIG_HOME"

// appDirName is the directory under the config home holding config.toml.
const appDirName = "create-next-stack"

var homeDir = homedir.Dir
var lookupEnv = os.LookupEnv

// DefaultPath returns the preferences file path used when --config is not given.
func DefaultPath() (string, error) {
	if base, ok := lookupEnv(EnvConfigHome); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, appDirName, "config.toml"), nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName, "config.toml"), nil
}

// Load reads preferences from path on top of Defaults.
// An empty path means the default location, which may be absent.
// An explicit path that does not exist is an error.
func Load(path string) (Preferences, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			// No home directory: run with defaults only.
			return Defaults(), nil
		}
		path = def
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return Preferences{}, fmt.Errorf(messages.ConfigResolvePathFailedFmt, path, err)
		}
		path = expanded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Preferences{}, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML preferences over Defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte, source string) (Preferences, error) {
	prefs := Defaults()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&prefs); err != nil {
		return Preferences{}, fmt.Errorf(messages.ConfigParseFailedFmt, source, err)
	}
	if err := prefs.Validate(); err != nil {
		return Preferences{}, fmt.Errorf(messages.ConfigParseFailedFmt, source, err)
	}
	return prefs, nil
}
