package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"

	"github.com/seforius/logintracker/tracker"
)

// Invites is restricted to moderators on the Discord side; the handler itself
// stays permission-agnostic.
var Invites = discord.SlashCommandCreate{
	Name:                     "invites",
	Description:              "Configure invite permissions for the server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "setting",
			Description: "Whether to allow invites",
			Required:    true,
		},
	},
}

func InvitesHandler(b *tracker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		setting := e.SlashCommandInteractionData().Bool("setting")

		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		if err := b.Policy.SetAllowed(setting); err != nil {
			if uerr := respondContent(e, "🔧 I couldn't persist the invite setting."); uerr != nil {
				return uerr
			}
			return err
		}

		word := "disabled"
		if setting {
			word = "enabled"
		}
		return respondContent(e, "I've "+word+" invite links for the server")
	}
}
