package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	TMDB TMDBConfig `mapstructure:"tmdb"`
}

// TMDBConfig holds catalog provider configuration
type TMDBConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	ImageBaseURL         string `mapstructure:"image_base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Authentication. Injected via config.yaml or the TMDB_API_KEY
	// environment variable, never baked into the binary.
	APIKey string `mapstructure:"api_key"`
}

// Load loads configuration from YAML file with environment variable overrides.
// A missing config.yaml is fine; defaults plus environment cover everything
// except the API key, which must be provided.
func Load() (*Config, error) {
	// Pick up a local .env before viper reads the environment
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.TMDB.APIKey == "" {
		return nil, fmt.Errorf("tmdb.api_key is not set (use config.yaml or TMDB_API_KEY)")
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/w500")
	viper.SetDefault("tmdb.timeout", 30)
	viper.SetDefault("tmdb.max_requests_per_second", 4)
	viper.SetDefault("tmdb.api_key", "")
}
