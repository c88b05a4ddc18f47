// Package config loads moneywise settings from YAML.
//
// The embedded default-config.yaml is always read first; a user file is
// decoded over it, so it only needs the keys it changes.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/moneywise/internal/calc"
	"github.com/idilsaglam/moneywise/internal/model"
)

//go:embed default-config.yaml
var defaultConfigYAML []byte

// Config is the whole configuration tree.
type Config struct {
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	DataDir  string `yaml:"data_dir"`

	Rates        RatesConfig         `yaml:"rates"`
	Storage      StorageConfig       `yaml:"storage"`
	Calculators  CalculatorDefaults  `yaml:"calculators"`
	Tax          TaxConfig           `yaml:"tax"`
	Quiz         QuizConfig          `yaml:"quiz"`
	DefaultRoute string              `yaml:"default_route"`
	Routes       map[string][]string `yaml:"routes"`
}

// RatesConfig points the ticker at a rate endpoint.
type RatesConfig struct {
	Endpoint  string  `yaml:"endpoint"`
	Path      string  `yaml:"path"` // JSONPath of the USD→INR rate
	EURFactor float64 `yaml:"eur_factor"`
	Fallback  string  `yaml:"fallback"`
}

// StorageConfig selects the ledger backend.
type StorageConfig struct {
	Backend string      `yaml:"backend"`
	File    string      `yaml:"file"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig is used when Backend is "redis".
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// CalculatorDefaults prefill the calculator fields.
type CalculatorDefaults struct {
	SIP struct {
		Amount float64 `yaml:"amount"`
		Rate   float64 `yaml:"rate"`
		Years  float64 `yaml:"years"`
	} `yaml:"sip"`
	EMI struct {
		Principal float64 `yaml:"principal"`
		Rate      float64 `yaml:"rate"`
		Months    float64 `yaml:"months"`
	} `yaml:"emi"`
	Income float64 `yaml:"income"`
}

// TaxConfig lists the regimes compared side by side.
type TaxConfig struct {
	Regimes []calc.Regime `yaml:"regimes"`
}

// QuizConfig is the question set and its grading.
type QuizConfig struct {
	MidRatio  float64          `yaml:"mid_ratio"`
	Questions []model.Question `yaml:"questions"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultConfigYAML, &c); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	return &c, nil
}

// Load reads the defaults, then path on top of them. An empty path means
// config.yaml in the data dir, which may be absent.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, configFileName)
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}
	if c.DataDir == "" {
		if c.DataDir, err = DataDir(); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the parts the rest of the program relies on.
func (c *Config) Validate() error {
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("theme: unknown %q (want light or dark)", c.Theme)
	}
	switch c.Storage.Backend {
	case "file":
		if c.Storage.File == "" {
			return errors.New("storage.file: empty")
		}
	case "redis":
		if c.Storage.Redis.Addr == "" || c.Storage.Redis.Key == "" {
			return errors.New("storage.redis: addr and key are required")
		}
	default:
		return fmt.Errorf("storage.backend: unknown %q", c.Storage.Backend)
	}
	if c.Rates.Endpoint == "" || c.Rates.Path == "" {
		return errors.New("rates: endpoint and path are required")
	}
	if len(c.Tax.Regimes) == 0 {
		return errors.New("tax: no regimes")
	}
	for _, r := range c.Tax.Regimes {
		for i := 1; i < len(r.Slabs); i++ {
			if r.Slabs[i].Above >= r.Slabs[i-1].Above {
				return fmt.Errorf("tax %q: slabs must be ordered from the highest threshold down", r.Name)
			}
		}
	}
	if len(c.Quiz.Questions) == 0 {
		return errors.New("quiz: no questions")
	}
	for i, q := range c.Quiz.Questions {
		if len(q.Options) != 3 {
			return fmt.Errorf("quiz question %d: want 3 options, got %d", i+1, len(q.Options))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return fmt.Errorf("quiz question %d: answer %d out of range", i+1, q.Answer)
		}
	}
	if _, ok := c.Routes[c.DefaultRoute]; !ok {
		return fmt.Errorf("default_route: %q is not a route", c.DefaultRoute)
	}
	return nil
}
