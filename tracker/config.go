package tracker

import (
	"fmt"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	// The token is a secret; the environment wins over the config file.
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		cfg.Bot.Token = token
	}
	return &cfg, nil
}

type Config struct {
	Bot     BotConfig     `toml:"bot"`
	Tracker TrackerConfig `toml:"tracker"`
	Invites InvitesConfig `toml:"invites"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type TrackerConfig struct {
	GuildID         snowflake.ID `toml:"guild_id"`
	StatusChannelID snowflake.ID `toml:"status_channel_id"`
	Accounts        []string     `toml:"accounts"`
	Reasons         []string     `toml:"reasons"`
}

type InvitesConfig struct {
	File         string `toml:"file"`
	SweepSeconds int    `toml:"sweep_seconds"`
}
