package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_FIXTURES_DIR points at the payload files replayed through kioskctl
	FixturesDir string `envconfig:"E2E_FIXTURES_DIR" default:"testdata"`
	// E2E_COLOURS enables colorized step headers
	Colours bool `envconfig:"E2E_COLOURS" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
