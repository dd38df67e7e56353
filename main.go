package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/joho/godotenv"

	"github.com/seforius/logintracker/tracker"
	"github.com/seforius/logintracker/tracker/commands"
	"github.com/seforius/logintracker/tracker/handlers"
	"github.com/seforius/logintracker/tracker/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting login tracker",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	// Optional; the token can also live directly in the environment or config.
	_ = godotenv.Load()

	cfg, err := tracker.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully",
		slog.Int("accounts", len(cfg.Tracker.Accounts)))

	b := tracker.New(*cfg, version, commit)

	h := handler.New()
	h.Command("/track", handlers.WrapWithLogging("track", commands.TrackHandler(b)))
	h.Command("/login", handlers.WrapWithLogging("login", commands.LoginHandler(b)))
	h.Autocomplete("/login", handlers.WrapAutocompleteWithLogging("login", commands.LoginReasonAutocomplete(b)))
	h.Command("/logout", handlers.WrapWithLogging("logout", commands.LogoutHandler(b)))
	h.Command("/invites", handlers.WrapWithLogging("invites", commands.InvitesHandler(b)))
	h.Command("/version", commands.VersionHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.All(b.Registry), cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err = b.Client.OpenGateway(ctx); err != nil {
		cancel()
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}
	cancel()

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go b.Sweeper.Run(sweepCtx)

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}
