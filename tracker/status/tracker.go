package status

import (
	"fmt"
	"sync"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"

	"github.com/seforius/logintracker/tracker/accounts"
)

// Tracker runs the locate → decode → mutate → encode → persist sequence for
// every transition. Each transition rewrites the whole panel, so two
// interleaved transitions would clobber each other's fields; the mutex keeps
// the sequence single-writer and turns that race into serialization.
type Tracker struct {
	mu        sync.Mutex
	client    Client
	locator   *Locator
	registry  *accounts.Registry
	channelID snowflake.ID
}

func NewTracker(client Client, registry *accounts.Registry, channelID snowflake.ID, selfID snowflake.ID) *Tracker {
	return &Tracker{
		client:    client,
		locator:   NewLocator(client, selfID),
		registry:  registry,
		channelID: channelID,
	}
}

func (t *Tracker) ChannelID() snowflake.ID {
	return t.channelID
}

// Initialize posts a brand-new panel with every account free, in registry
// order. It does not look for an existing panel: running it twice leaves two
// candidates and the newest-wins locator quietly orphans the older one.
func (t *Tracker) Initialize() (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := NewRecord(t.registry.Names())
	msg, err := t.client.CreateMessage(t.channelID, discord.MessageCreate{
		Embeds: []discord.Embed{rec.Embed()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post status panel: %w", err)
	}

	rec.ChannelID = msg.ChannelID
	rec.MessageID = msg.ID
	t.locator.Remember(msg.ChannelID, msg.ID)
	return rec, nil
}

// Claim marks an account as in use by holder. It fails with
// ErrRecordNotFound when no panel exists, and with AlreadyClaimedError when
// the account is taken; in both cases nothing is written back.
func (t *Tracker) Claim(account string, holder string, reason string) (*Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, err := t.load()
	if err != nil {
		return nil, err
	}
	if err = rec.Claim(account, holder, reason); err != nil {
		return nil, err
	}
	if err = t.persist(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Release frees an account and returns who previously held it. It fails with
// NotClaimedError when the account is already free.
func (t *Tracker) Release(account string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, err := t.load()
	if err != nil {
		return "", err
	}
	holder, err := rec.Release(account)
	if err != nil {
		return "", err
	}
	if err = t.persist(rec); err != nil {
		return "", err
	}
	return holder, nil
}

func (t *Tracker) load() (*Record, error) {
	msg, err := t.locator.Locate(t.channelID)
	if err != nil {
		return nil, err
	}
	return DecodeRecord(*msg)
}

// persist replaces the panel embed in a single message edit.
func (t *Tracker) persist(rec *Record) error {
	if _, err := t.client.UpdateMessage(rec.ChannelID, rec.MessageID, discord.MessageUpdate{
		Embeds: &[]discord.Embed{rec.Embed()},
	}); err != nil {
		return fmt.Errorf("failed to update status panel: %w", err)
	}
	return nil
}
