package cmd

import (
	"strings"

	"github.com/fouadsfarijlani/libfhir/component/mcsd"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "LIBFHIR"

type Config struct {
	// StrictMode makes the check command fail on dangling references and rejected resources.
	StrictMode bool           `mapstructure:"strictmode"`
	Logging    logging.Config `mapstructure:"logging"`
	MCSD       mcsd.Config    `mapstructure:"mcsd"`
}

func DefaultConfig() Config {
	return Config{
		StrictMode: true,
		Logging:    logging.DefaultConfig(),
		MCSD:       mcsd.DefaultConfig(),
	}
}

// LoadConfig loads the configuration from config/libfhir.yml (if present), overridden by LIBFHIR_ environment variables,
// e.g. LIBFHIR_LOGGING_LEVEL=debug.
func LoadConfig() (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("strictmode", defaults.StrictMode)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("mcsd.sourceurl", defaults.MCSD.SourceURL)
	v.SetDefault("mcsd.declareprofiles", defaults.MCSD.DeclareProfiles)
	v.SetDefault("mcsd.allowedresourcetypes", defaults.MCSD.AllowedResourceTypes)

	v.SetConfigName("libfhir")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return config, nil
}
