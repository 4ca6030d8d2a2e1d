// Package config holds the configuration section types shared across layers.
package config

import "time"

// DiscordConfig identifies the guild surface the assistant operates on.
// Every identifier is a snowflake string; absence of any required value is a
// fatal startup error.
type DiscordConfig struct {
	Token          string         `mapstructure:"token" validate:"required"`
	GuildID        string         `mapstructure:"guild_id" validate:"required"`
	StaffRoleID    string         `mapstructure:"staff_role_id" validate:"required"`
	ResidentRoleID string         `mapstructure:"resident_role_id" validate:"required"`
	DevMode        bool           `mapstructure:"dev_mode"`
	Channels       ChannelsConfig `mapstructure:"channels"`
}

// ChannelsConfig lists the fixed channels the assistant posts into or manages.
type ChannelsConfig struct {
	Welcome        string `mapstructure:"welcome" validate:"required"`
	Verify         string `mapstructure:"verify" validate:"required"`
	Rules          string `mapstructure:"rules" validate:"required"`
	Info           string `mapstructure:"info" validate:"required"`
	Ticket         string `mapstructure:"ticket" validate:"required"`
	Identity       string `mapstructure:"identity" validate:"required"`
	SupportWaiting string `mapstructure:"support_waiting" validate:"required"`
	Status         string `mapstructure:"status" validate:"required"`
	Restart        string `mapstructure:"restart" validate:"required"`
	Members        string `mapstructure:"members" validate:"required"`
}

type DatabaseConfig struct {
	Path       string `mapstructure:"path" validate:"required"`
	BackupPath string `mapstructure:"backup_path"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// GameServerConfig points at the game server's status surfaces: the info
// endpoint (any 200 = online), the player list endpoint (JSON array), and the
// local server config file carrying the restart schedule.
type GameServerConfig struct {
	InfoURL      string `mapstructure:"info_url" validate:"required,url"`
	PlayersURL   string `mapstructure:"players_url" validate:"required,url"`
	SchedulePath string `mapstructure:"schedule_path" validate:"required"`
	ConnectURL   string `mapstructure:"connect_url"`
	RulesURL     string `mapstructure:"rules_url"`
}

type TicketsConfig struct {
	ReasonLogDir string `mapstructure:"reason_log_dir" validate:"required"`
}

// ModerationConfig tunes the spam guard on the identity channel.
type ModerationConfig struct {
	SpamWindowSeconds int `mapstructure:"spam_window_seconds" validate:"min=1"`
	SpamThreshold     int `mapstructure:"spam_threshold" validate:"min=1"`
	TimeoutSeconds    int `mapstructure:"timeout_seconds" validate:"min=1"`
}

// SpamWindow returns the configured sliding window as a duration.
func (m *ModerationConfig) SpamWindow() time.Duration {
	return time.Duration(m.SpamWindowSeconds) * time.Second
}

// TimeoutDuration returns the enforcement timeout as a duration.
func (m *ModerationConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// OpsConfig configures the local operations endpoint. Empty addr disables it.
type OpsConfig struct {
	Addr string `mapstructure:"addr"`
}

type ChangelogConfig struct {
	Path string `mapstructure:"path"`
}
