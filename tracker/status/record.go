package status

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// PanelTitle is the embed title of the status panel.
const PanelTitle = "Login Statuses"

type Entry struct {
	Account string
	Status  Status
}

// Record is the in-memory snapshot of the status panel: one entry per account
// in registry order, plus the handle of the backing message. Entries keep
// their position across edits; mutations update them in place so the panel
// never reorders.
type Record struct {
	ChannelID snowflake.ID
	MessageID snowflake.ID
	Entries   []Entry
}

// NewRecord builds a fresh record with every account free, in the given order.
func NewRecord(accounts []string) *Record {
	entries := make([]Entry, 0, len(accounts))
	for _, name := range accounts {
		entries = append(entries, Entry{Account: name})
	}
	return &Record{Entries: entries}
}

// DecodeRecord parses the status panel out of a message posted by this bot.
func DecodeRecord(msg discord.Message) (*Record, error) {
	if len(msg.Embeds) == 0 {
		return nil, fmt.Errorf("status message %s carries no embed", msg.ID)
	}

	rec := &Record{ChannelID: msg.ChannelID, MessageID: msg.ID}
	for _, field := range msg.Embeds[0].Fields {
		account := strings.TrimPrefix(field.Name, fieldPrefix)
		if account == field.Name {
			// Not an account field; leave it alone.
			continue
		}
		s, err := DecodeStatus(field.Value)
		if err != nil {
			return nil, &MalformedFieldError{Account: account, Text: field.Value}
		}
		rec.Entries = append(rec.Entries, Entry{Account: account, Status: s})
	}
	return rec, nil
}

// Get returns the status of an account and whether the record tracks it.
func (r *Record) Get(account string) (Status, bool) {
	for _, e := range r.Entries {
		if e.Account == account {
			return e.Status, true
		}
	}
	return Status{}, false
}

// Claim transitions a free account to claimed. A claim on an already claimed
// account fails with AlreadyClaimedError carrying the current holder and
// reason, and leaves the record untouched.
func (r *Record) Claim(account string, holder string, reason string) error {
	for i, e := range r.Entries {
		if e.Account != account {
			continue
		}
		if e.Status.Claimed() {
			return &AlreadyClaimedError{Account: account, Holder: e.Status.Holder, Reason: e.Status.Reason}
		}
		r.Entries[i].Status = Status{Holder: holder, Reason: reason}
		return nil
	}
	return fmt.Errorf("account %s is not tracked by the status panel", account)
}

// Release transitions a claimed account back to free and returns the previous
// holder. No ownership check is made: anyone may release any claim.
func (r *Record) Release(account string) (string, error) {
	for i, e := range r.Entries {
		if e.Account != account {
			continue
		}
		if !e.Status.Claimed() {
			return "", &NotClaimedError{Account: account}
		}
		holder := e.Status.Holder
		r.Entries[i].Status = Status{}
		return holder, nil
	}
	return "", fmt.Errorf("account %s is not tracked by the status panel", account)
}

// Embed renders the record as the status panel embed.
func (r *Record) Embed() discord.Embed {
	builder := discord.NewEmbedBuilder().SetTitle(PanelTitle)
	for _, e := range r.Entries {
		builder.AddField(fieldPrefix+e.Account, EncodeStatus(e.Status), false)
	}
	return builder.Build()
}
