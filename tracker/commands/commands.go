package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/seforius/logintracker/tracker/accounts"
	"github.com/seforius/logintracker/tracker/utils"
)

// All returns every slash command definition. Account choices come from the
// registry, so the list is built at startup rather than declared statically.
func All(reg *accounts.Registry) []discord.ApplicationCommandCreate {
	return []discord.ApplicationCommandCreate{
		Track,
		Login(reg),
		Logout(reg),
		Invites,
		Version,
	}
}

func respondContent(e *handler.CommandEvent, content string) error {
	_, err := e.UpdateInteractionResponse(discord.MessageUpdate{Content: utils.Ptr(content)})
	return err
}

func respondEmbed(e *handler.CommandEvent, embed discord.Embed) error {
	_, err := e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}})
	return err
}

func unknownAccountResponse(e *handler.CommandEvent, account string) error {
	return respondEmbed(e, discord.NewEmbedBuilder().
		SetTitle("⚠️ Unknown Account").
		SetDescription("I don't track an account called **"+account+"**.").
		SetColor(utils.WarningColor).
		Build())
}
