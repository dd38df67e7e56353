package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/seforius/logintracker/tracker"
	"github.com/seforius/logintracker/tracker/utils"
)

var Track = discord.SlashCommandCreate{
	Name:        "track",
	Description: "Make the tracker post an initial message tracking logins of each account",
}

func TrackHandler(b *tracker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		rec, err := b.Tracker.Initialize()
		if err != nil {
			if uerr := respondContent(e, "🔧 I couldn't post the status panel. Check my permissions in the status channel."); uerr != nil {
				return uerr
			}
			return err
		}

		return respondEmbed(e, discord.NewEmbedBuilder().
			SetDescription(fmt.Sprintf("I've begun tracking your logins in <#%s>", rec.ChannelID)).
			SetColor(utils.SuccessColor).
			Build())
	}
}
