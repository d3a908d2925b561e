package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/skyfare/internal/domain"
)

// LoadConfig loads skyfare.yaml from the workspace root, applies defaults,
// then SKYFARE_* environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	y.applyTo(&cfg)

	if err := applyEnv(&cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if err := cfg.Pricing.Validate(); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Skyfare struct {
		Pricing struct {
			CentsPerMile  *int64   `yaml:"cents_per_mile"`
			EliteDiscount *float64 `yaml:"elite_discount"`
		} `yaml:"pricing"`

		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Paths struct {
			BatchesDir string `yaml:"batches_dir"`
			QuotesDir  string `yaml:"quotes_dir"`
		} `yaml:"paths"`
	} `yaml:"skyfare"`
}

func (y yamlConfig) applyTo(cfg *domain.Config) {
	s := y.Skyfare
	if s.Pricing.CentsPerMile != nil {
		cfg.Pricing.CentsPerMile = *s.Pricing.CentsPerMile
	}
	if s.Pricing.EliteDiscount != nil {
		cfg.Pricing.EliteDiscount = *s.Pricing.EliteDiscount
	}
	if s.Masking.Enabled != nil {
		cfg.Masking.Enabled = *s.Masking.Enabled
	}
	if s.Paths.BatchesDir != "" {
		cfg.Paths.BatchesDir = s.Paths.BatchesDir
	}
	if s.Paths.QuotesDir != "" {
		cfg.Paths.QuotesDir = s.Paths.QuotesDir
	}
}

// envOverrides mirrors the overridable settings. It is seeded with the
// file values, and cleanenv only touches fields whose variable is set.
type envOverrides struct {
	CentsPerMile  int64   `env:"SKYFARE_CENTS_PER_MILE"`
	EliteDiscount float64 `env:"SKYFARE_ELITE_DISCOUNT"`
	BatchesDir    string  `env:"SKYFARE_BATCHES_DIR"`
	QuotesDir     string  `env:"SKYFARE_QUOTES_DIR"`
}

func applyEnv(cfg *domain.Config) error {
	e := envOverrides{
		CentsPerMile:  cfg.Pricing.CentsPerMile,
		EliteDiscount: cfg.Pricing.EliteDiscount,
		BatchesDir:    cfg.Paths.BatchesDir,
		QuotesDir:     cfg.Paths.QuotesDir,
	}
	if err := cleanenv.ReadEnv(&e); err != nil {
		return err
	}

	cfg.Pricing.CentsPerMile = e.CentsPerMile
	cfg.Pricing.EliteDiscount = e.EliteDiscount
	if v := strings.TrimSpace(e.BatchesDir); v != "" {
		cfg.Paths.BatchesDir = v
	}
	if v := strings.TrimSpace(e.QuotesDir); v != "" {
		cfg.Paths.QuotesDir = v
	}
	return nil
}
