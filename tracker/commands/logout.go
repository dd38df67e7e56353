package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/seforius/logintracker/tracker"
	"github.com/seforius/logintracker/tracker/accounts"
	"github.com/seforius/logintracker/tracker/status"
)

func Logout(reg *accounts.Registry) discord.SlashCommandCreate {
	return discord.SlashCommandCreate{
		Name:        "logout",
		Description: "Indicate to others that you have logged out of an account",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "account",
				Description: "The account to log out",
				Required:    true,
				Choices:     reg.Choices(),
			},
		},
	}
}

func LogoutHandler(b *tracker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		account := e.SlashCommandInteractionData().String("account")

		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		if !b.Registry.IsKnown(account) {
			return unknownAccountResponse(e, account)
		}

		holder, err := b.Tracker.Release(account)
		if err != nil {
			var notClaimed *status.NotClaimedError
			var malformed *status.MalformedFieldError
			switch {
			case errors.Is(err, status.ErrRecordNotFound):
				return respondContent(e, recordNotFoundMessage)
			case errors.As(err, &notClaimed):
				return respondContent(e, "You can't log this account out, because nobody is using it.")
			case errors.As(err, &malformed):
				if uerr := respondContent(e, malformedPanelMessage); uerr != nil {
					return uerr
				}
				return err
			default:
				if uerr := respondContent(e, "🔧 I couldn't update the status panel. Try again in a moment."); uerr != nil {
					return uerr
				}
				return err
			}
		}

		return respondContent(e, fmt.Sprintf("You logged %s out of the account: %s", holder, account))
	}
}
