package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sahilm/fuzzy"

	"github.com/seforius/logintracker/tracker"
	"github.com/seforius/logintracker/tracker/accounts"
	"github.com/seforius/logintracker/tracker/status"
	"github.com/seforius/logintracker/tracker/utils"
)

const recordNotFoundMessage = "I looked through the most recent 200 messages of the status channel, " +
	"and couldn't find mine. Please stop spamming this channel, or use /track to begin tracking."

const malformedPanelMessage = "🔧 The status panel doesn't look like something I wrote. " +
	"Someone may have edited it by hand; run /track to post a fresh one."

func Login(reg *accounts.Registry) discord.SlashCommandCreate {
	return discord.SlashCommandCreate{
		Name:        "login",
		Description: "Indicate to others that you have logged into an account, and specify a reason",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "account",
				Description: "The account to log in",
				Required:    true,
				Choices:     reg.Choices(),
			},
			discord.ApplicationCommandOptionString{
				Name:         "reason",
				Description:  "Reason for using the account",
				Required:     true,
				Autocomplete: true,
			},
		},
	}
}

func LoginHandler(b *tracker.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		account := data.String("account")
		reason := data.String("reason")

		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		if !b.Registry.IsKnown(account) {
			return unknownAccountResponse(e, account)
		}

		_, err := b.Tracker.Claim(account, e.User().Mention(), reason)
		if err != nil {
			var claimed *status.AlreadyClaimedError
			var malformed *status.MalformedFieldError
			switch {
			case errors.Is(err, status.ErrRecordNotFound):
				return respondContent(e, recordNotFoundMessage)
			case errors.As(err, &claimed):
				return respondContent(e, fmt.Sprintf("Account: %s is already being used by %s\nReason: %s",
					claimed.Account, claimed.Holder, claimed.Reason))
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

		return respondEmbed(e, discord.NewEmbedBuilder().
			SetDescription(fmt.Sprintf("I've updated the account statuses to indicate that you're currently logged into: %s", account)).
			SetColor(utils.SuccessColor).
			Build())
	}
}

// LoginReasonAutocomplete suggests stock reasons for the reason option,
// fuzzy-ranked against whatever the user has typed so far.
func LoginReasonAutocomplete(b *tracker.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		focused := e.Data.Focused()
		if focused.Name != "reason" {
			return nil
		}

		term := ""
		if focused.Value != nil {
			var s string
			if err := json.Unmarshal(focused.Value, &s); err == nil {
				term = strings.TrimSpace(s)
			}
		}

		reasons := b.Registry.Reasons()
		ranked := reasons
		if term != "" {
			ranked = nil
			for _, m := range fuzzy.Find(term, reasons) {
				ranked = append(ranked, m.Str)
			}
		}

		choices := make([]discord.AutocompleteChoice, 0, len(ranked))
		for _, reason := range ranked {
			if len(choices) == 25 {
				break
			}
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  reason,
				Value: reason,
			})
		}
		return e.AutocompleteResult(choices)
	}
}
