package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL,default=INFO"`
	KioskID         int    `env:"KIOSK_ID,default=1" validate:"gt=0"`
	SensorSamples   int    `env:"SENSOR_SAMPLES,default=1" validate:"gt=0"`
	Colours         bool   `env:"COLOURS,default=true"`
	MaxPayloadBytes int    `env:"MAX_PAYLOAD_BYTES,default=1048576" validate:"gt=0"`
}

// LoadConfig reads the process environment. Callers load .env files beforehand.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
