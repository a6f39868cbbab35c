// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads interrogator settings from config files, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "interrogator"
	envPrefix = "INTERROGATOR"
)

// Config holds the settings shared by all commands.
type Config struct {
	Language  string `mapstructure:"language" yaml:"language" validate:"omitempty,bcp47_language_tag"`
	Debug     bool   `mapstructure:"debug" yaml:"debug"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	Output    string `mapstructure:"output" yaml:"output" validate:"oneof=yaml json"`
	OnCancel  string `mapstructure:"on_cancel" yaml:"on_cancel" validate:"oneof=abort skip retry"`
	AltScreen bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// Defaults returns the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"debug":      false,
		"log_file":   "",
		"output":     "yaml",
		"on_cancel":  "abort",
		"alt_screen": false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Interrogator")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(userDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig merges defaults, config files, environment and the flags of
// cmd, in increasing order of precedence. A missing config file is not an
// error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	// an explicit --config path wins over the search paths
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// bindFlags binds every flag under its snake_case key, so --log-file
// overrides log_file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

var validate = validator.New()

// Validate reports settings outside their allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// WriteConfigFile stores c as YAML at path, or at the user/system default
// location when path is empty. It returns the path written.
func WriteConfigFile[T any](c *T, path string, system bool) (string, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(system); err != nil {
			return "", err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
