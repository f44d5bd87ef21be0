package config

import (
	"fmt"
	"strings"

	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	ConnectionString string `validate:"required"`
	ListenAddr       string `validate:"required"`
}

// Init wires viper to the environment and the optional config file and
// validates the result. A missing connection string is fatal for the caller.
func Init() (*Config, error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")

	cfg := &Config{
		ConnectionString: viper.GetString(constants.ViperKeyConnectionString),
		ListenAddr:       viper.GetString(constants.ViperKeyListenAddr),
	}
	if cfg.ConnectionString == "" {
		// DATABASE_URL fallback for local runs
		cfg.ConnectionString = viper.GetString("database_url")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}
