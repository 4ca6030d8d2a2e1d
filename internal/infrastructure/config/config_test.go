package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
)

func validConfig() *Config {
	return &Config{
		Discord: sharedConfig.DiscordConfig{
			Token:          "token",
			GuildID:        "1",
			StaffRoleID:    "2",
			ResidentRoleID: "3",
			Channels: sharedConfig.ChannelsConfig{
				Welcome:        "10",
				Verify:         "11",
				Rules:          "12",
				Info:           "13",
				Ticket:         "14",
				Identity:       "15",
				SupportWaiting: "16",
				Status:         "17",
				Restart:        "18",
				Members:        "19",
			},
		},
		Database: sharedConfig.DatabaseConfig{Path: "warden.db"},
		GameServer: sharedConfig.GameServerConfig{
			InfoURL:      "http://127.0.0.1:30120/info.json",
			PlayersURL:   "http://127.0.0.1:30120/players.json",
			SchedulePath: "/tmp/server-config.json",
		},
		Tickets: sharedConfig.TicketsConfig{ReasonLogDir: "data/reasons"},
		Moderation: sharedConfig.ModerationConfig{
			SpamWindowSeconds: 10,
			SpamThreshold:     5,
			TimeoutSeconds:    300,
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidateMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "missing token",
			mutate: func(c *Config) { c.Discord.Token = "" },
			field:  "Token",
		},
		{
			name:   "missing guild id",
			mutate: func(c *Config) { c.Discord.GuildID = "" },
			field:  "GuildID",
		},
		{
			name:   "missing ticket channel",
			mutate: func(c *Config) { c.Discord.Channels.Ticket = "" },
			field:  "Ticket",
		},
		{
			name:   "missing database path",
			mutate: func(c *Config) { c.Database.Path = "" },
			field:  "Path",
		},
		{
			name:   "malformed info url",
			mutate: func(c *Config) { c.GameServer.InfoURL = "not a url" },
			field:  "InfoURL",
		},
		{
			name:   "zero spam threshold",
			mutate: func(c *Config) { c.Moderation.SpamThreshold = 0 },
			field:  "SpamThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestModerationDurations(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "10s", cfg.Moderation.SpamWindow().String())
	assert.Equal(t, "5m0s", cfg.Moderation.TimeoutDuration().String())
}
