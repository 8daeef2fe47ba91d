package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/synthgui/guigen/internal/manifest"
)

// userConfig loads only the user config file, without env or manifest layers.
func userConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	if err := readIfExists(v, FilePath(), v.ReadInConfig); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns a key from the user config file. Returns empty string if not set.
func Get(key string) (string, error) {
	if !IsKey(key) {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	v, err := userConfig()
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// All returns the effective value of every key: the user config file on
// top of the defaults.
func All() (map[string]string, error) {
	v, err := userConfig()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(defaults))
	for _, k := range Keys() {
		if v.IsSet(k) {
			out[k] = v.GetString(k)
		} else {
			out[k] = fmt.Sprint(defaults[k])
		}
	}
	return out, nil
}

// Set writes a config key-value pair and saves the config file. The file is
// validated like a project manifest before it is written.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	v, err := userConfig()
	if err != nil {
		return err
	}

	var typed interface{} = value
	if _, ok := defaults[key].(bool); ok {
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
		typed = b
	}
	if err := validateEntry(key, typed); err != nil {
		return err
	}
	v.Set(key, typed)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// validateEntry runs a single key through the manifest schema.
func validateEntry(key string, value interface{}) error {
	data, err := yaml.Marshal(map[string]interface{}{key: value})
	if err != nil {
		return fmt.Errorf("encoding config key %q: %w", key, err)
	}
	result, err := manifest.Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &ManifestError{Path: FilePath(), Issues: result.Issues}
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected a boolean, got %q", s)
}
