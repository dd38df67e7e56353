package status

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"
)

const (
	// scanLimit bounds the history scan. An older panel pushed past this
	// window is silently ignored; that is a documented limitation.
	scanLimit = 200
	// Discord returns at most 100 messages per history page.
	pageSize = 100

	cacheSize = 16
)

// Client is the slice of the Discord rest API the status tracker touches.
// rest.Rest satisfies it; tests substitute a mock.
type Client interface {
	GetMessage(channelID snowflake.ID, messageID snowflake.ID, opts ...rest.RequestOpt) (*discord.Message, error)
	GetMessages(channelID snowflake.ID, around snowflake.ID, before snowflake.ID, after snowflake.ID, limit int, opts ...rest.RequestOpt) ([]discord.Message, error)
	CreateMessage(channelID snowflake.ID, messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
	UpdateMessage(channelID snowflake.ID, messageID snowflake.ID, messageUpdate discord.MessageUpdate, opts ...rest.RequestOpt) (*discord.Message, error)
}

// Locator finds the authoritative status message in a channel: the most
// recent message authored by the bot within the scan window. Located message
// IDs are cached per channel so the common path skips the scan entirely; the
// cached pointer is revalidated on every use and falls back to the scan when
// it goes stale.
type Locator struct {
	client Client
	selfID snowflake.ID
	cache  *lru.Cache
}

func NewLocator(client Client, selfID snowflake.ID) *Locator {
	cache, _ := lru.New(cacheSize)
	return &Locator{
		client: client,
		selfID: selfID,
		cache:  cache,
	}
}

// Locate returns the current status message for the channel, or
// ErrRecordNotFound when none exists within the scan window.
func (l *Locator) Locate(channelID snowflake.ID) (*discord.Message, error) {
	if cached, ok := l.cache.Get(channelID); ok {
		msg, err := l.client.GetMessage(channelID, cached.(snowflake.ID))
		if err == nil && msg.Author.ID == l.selfID {
			return msg, nil
		}
		l.cache.Remove(channelID)
	}
	return l.scan(channelID)
}

func (l *Locator) scan(channelID snowflake.ID) (*discord.Message, error) {
	var before snowflake.ID
	scanned := 0

	for scanned < scanLimit {
		limit := min(pageSize, scanLimit-scanned)
		msgs, err := l.client.GetMessages(channelID, 0, before, 0, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch channel history: %w", err)
		}
		if len(msgs) == 0 {
			break
		}

		// Pages come back newest first, so the first hit is the most
		// recent panel and wins over any older orphaned one.
		for i := range msgs {
			if msgs[i].Author.ID == l.selfID {
				l.cache.Add(channelID, msgs[i].ID)
				return &msgs[i], nil
			}
		}

		scanned += len(msgs)
		before = msgs[len(msgs)-1].ID
		if len(msgs) < limit {
			break
		}
	}
	return nil, ErrRecordNotFound
}

// Remember primes the fast-path cache, used right after posting a new panel.
func (l *Locator) Remember(channelID snowflake.ID, messageID snowflake.ID) {
	l.cache.Add(channelID, messageID)
}
