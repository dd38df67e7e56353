package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/seforius/logintracker/tracker"
)

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "Display bot version and commit information",
}

func VersionHandler(b *tracker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}
		return respondContent(e, fmt.Sprintf("Version: %s\nCommit: %s", b.Version, b.Commit))
	}
}
