// Package config loads the application configuration from a yaml file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	// envPrefix namespaces the override variables, e.g. AGRODOCTOR_API_BASEURL.
	envPrefix = "AGRODOCTOR_"

	defaultTimeout = 20 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API struct {
		// BaseURL points at the deployed AgroDoctor backend.
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`

		// Timeout applies to every request. The client performs no retries.
		Timeout time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"api" yaml:"api"`

	Storage struct {
		// TokenPath is the file that holds the session token between runs.
		// Empty means <user config dir>/agrodoctor/token.
		TokenPath string `json:"tokenPath" yaml:"tokenPath"`
	} `json:"storage" yaml:"storage"`

	Location *LocationConfig `json:"location" yaml:"location"`

	Theme struct {
		// Mode forces "light" or "dark"; empty resolves from the environment.
		Mode string `json:"mode" yaml:"mode"`
	} `json:"theme" yaml:"theme"`

	// Mock configures the local mock API server (cmd/agrodoctor-mock).
	Mock *MockConfig `json:"mock" yaml:"mock"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LocationConfig supplies the device position used when logging a diagnosis.
// The terminal build has no GPS; coordinates come from configuration and
// Enabled plays the role of the platform location permission.
type LocationConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// MockConfig defines the mock API server settings.
type MockConfig struct {
	Port      int    `json:"port" yaml:"port"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`

	Timeouts struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// LoadWithEnv loads <name>.yaml through koanf and applies environment
// variable overrides on top of it.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// AGRODOCTOR_API_BASEURL -> api.baseurl; unmarshalling below is
			// case-insensitive, so the flattened key lines up with the yaml.
			key := strings.TrimPrefix(k, envPrefix)
			key = strings.ReplaceAll(strings.ToLower(key), "_", ".")

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultTimeout
	}

	return cfg, nil
}
