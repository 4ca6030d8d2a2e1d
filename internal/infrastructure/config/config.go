// Package config loads and validates the process-wide configuration snapshot.
// The snapshot is constructed once at startup and passed by reference into
// every component constructor; nothing re-reads configuration at runtime.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
)

type Config struct {
	Discord    sharedConfig.DiscordConfig    `mapstructure:"discord"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	GameServer sharedConfig.GameServerConfig `mapstructure:"game_server"`
	Tickets    sharedConfig.TicketsConfig    `mapstructure:"tickets"`
	Moderation sharedConfig.ModerationConfig `mapstructure:"moderation"`
	Ops        sharedConfig.OpsConfig        `mapstructure:"ops"`
	Changelog  sharedConfig.ChangelogConfig  `mapstructure:"changelog"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml plus WARDEN_* environment overrides and
// returns the validated snapshot. Any missing required value fails startup.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("WARDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Validate checks the snapshot against the struct validation tags.
func Validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			fields := make([]string, 0, len(errs))
			for _, fe := range errs {
				fields = append(fields, fe.Namespace())
			}
			return fmt.Errorf("invalid configuration, missing or malformed: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Get returns the loaded configuration snapshot.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("database.path", "warden.db")

	v.SetDefault("tickets.reason_log_dir", "data/ticket-reasons")

	v.SetDefault("moderation.spam_window_seconds", 10)
	v.SetDefault("moderation.spam_threshold", 5)
	v.SetDefault("moderation.timeout_seconds", 300)

	v.SetDefault("ops.addr", "")
	v.SetDefault("changelog.path", "")
}
