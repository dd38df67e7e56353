package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"

	"github.com/seforius/logintracker/tracker/accounts"
	"github.com/seforius/logintracker/tracker/invites"
	"github.com/seforius/logintracker/tracker/status"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:      cfg,
		Version:  version,
		Commit:   commit,
		Registry: accounts.NewRegistry(cfg.Tracker.Accounts, cfg.Tracker.Reasons),
		Policy:   invites.NewPolicy(cfg.Invites.File),
	}
}

type Bot struct {
	Cfg      Config
	Client   bot.Client
	Version  string
	Commit   string
	Registry *accounts.Registry
	Tracker  *status.Tracker
	Policy   *invites.Policy
	Sweeper  *invites.Sweeper
}

// SetupBot builds the disgo client and wires the rest-backed services. The
// rest client is handed to them as a capability, never reached for globally.
func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	b.Tracker = status.NewTracker(client.Rest(), b.Registry, b.Cfg.Tracker.StatusChannelID, client.ID())
	b.Sweeper = invites.NewSweeper(client.Rest(), b.Policy, b.Cfg.Tracker.GuildID,
		time.Duration(b.Cfg.Invites.SweepSeconds)*time.Second)
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Login tracker is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("who's logged in"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
