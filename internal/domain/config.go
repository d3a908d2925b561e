package domain

// Config represents the Skyfare configuration loaded from skyfare.yaml.
type Config struct {
	Pricing PricingPolicy
	Masking MaskingConfig
	Paths   PathsConfig
}

type MaskingConfig struct {
	Enabled bool
}

type PathsConfig struct {
	BatchesDir string
	QuotesDir  string
}

// DefaultConfig provides sane defaults if skyfare.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Pricing: DefaultPricingPolicy(),
		Masking: MaskingConfig{Enabled: true},
		Paths: PathsConfig{
			BatchesDir: "batches",
			QuotesDir:  "quotes",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
