package status

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	gomock "go.uber.org/mock/gomock"

	"github.com/seforius/logintracker/tracker/accounts"
	"github.com/seforius/logintracker/tracker/status/mock"
)

const (
	testChannelID = snowflake.ID(100)
	testSelfID    = snowflake.ID(7)
	testPanelID   = snowflake.ID(55)
)

func newTestTracker(t *testing.T) (*Tracker, *mock.MockClient) {
	client := mock.NewMockClient(gomock.NewController(t))
	reg := accounts.NewRegistry([]string{"A", "B"}, nil)
	return NewTracker(client, reg, testChannelID, testSelfID), client
}

func panelMessage(t *testing.T, mutate func(rec *Record)) discord.Message {
	t.Helper()
	rec := NewRecord([]string{"A", "B"})
	if mutate != nil {
		mutate(rec)
	}
	return discord.Message{
		ID:        testPanelID,
		ChannelID: testChannelID,
		Author:    discord.User{ID: testSelfID},
		Embeds:    []discord.Embed{rec.Embed()},
	}
}

func Test_Tracker_Initialize(t *testing.T) {
	tr, client := newTestTracker(t)

	var posted discord.MessageCreate
	client.EXPECT().
		CreateMessage(testChannelID, gomock.Any()).
		DoAndReturn(func(channelID snowflake.ID, create discord.MessageCreate, _ ...rest.RequestOpt) (*discord.Message, error) {
			posted = create
			return &discord.Message{
				ID:        testPanelID,
				ChannelID: channelID,
				Author:    discord.User{ID: testSelfID},
				Embeds:    create.Embeds,
			}, nil
		})

	rec, err := tr.Initialize()
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if rec.MessageID != testPanelID {
		t.Errorf("Initialize() message = %v, want %v", rec.MessageID, testPanelID)
	}

	if len(posted.Embeds) != 1 {
		t.Fatalf("posted %d embeds, want 1", len(posted.Embeds))
	}
	embed := posted.Embeds[0]
	if embed.Title != PanelTitle {
		t.Errorf("embed title = %q, want %q", embed.Title, PanelTitle)
	}
	for i, want := range []string{"Account: A", "Account: B"} {
		if embed.Fields[i].Name != want {
			t.Errorf("field %d = %q, want %q", i, embed.Fields[i].Name, want)
		}
		if embed.Fields[i].Value != "Status: Logged out" {
			t.Errorf("field %d value = %q, want logged out", i, embed.Fields[i].Value)
		}
	}
}

func Test_Tracker_Claim_ScansHistory(t *testing.T) {
	tr, client := newTestTracker(t)

	history := []discord.Message{
		{ID: snowflake.ID(60), ChannelID: testChannelID, Author: discord.User{ID: snowflake.ID(99)}},
		panelMessage(t, nil),
	}
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return(history, nil)

	var updated discord.MessageUpdate
	client.EXPECT().
		UpdateMessage(testChannelID, testPanelID, gomock.Any()).
		DoAndReturn(func(channelID, messageID snowflake.ID, update discord.MessageUpdate, _ ...rest.RequestOpt) (*discord.Message, error) {
			updated = update
			return &discord.Message{ID: messageID, ChannelID: channelID}, nil
		})

	rec, err := tr.Claim("A", "<@1>", "Raiding")
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
	if got, _ := rec.Get("A"); got != (Status{Holder: "<@1>", Reason: "Raiding"}) {
		t.Errorf("A = %+v, want claimed", got)
	}

	embed := (*updated.Embeds)[0]
	if embed.Fields[0].Value != "Status: Logged in by <@1>\nFor: Raiding" {
		t.Errorf("field A = %q", embed.Fields[0].Value)
	}
	if embed.Fields[1].Value != "Status: Logged out" {
		t.Errorf("field B = %q, want untouched", embed.Fields[1].Value)
	}
}

func Test_Tracker_Claim_RecordNotFound(t *testing.T) {
	tr, client := newTestTracker(t)

	// A full first page with no bot message, then an empty second page.
	page := make([]discord.Message, 100)
	for i := range page {
		page[i] = discord.Message{
			ID:        snowflake.ID(300 - i),
			ChannelID: testChannelID,
			Author:    discord.User{ID: snowflake.ID(99)},
		}
	}
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return(page, nil)
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), page[99].ID, snowflake.ID(0), 100).
		Return(nil, nil)

	if _, err := tr.Claim("A", "<@1>", "x"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Claim() error = %v, want ErrRecordNotFound", err)
	}
}

func Test_Tracker_Claim_AlreadyClaimed(t *testing.T) {
	tr, client := newTestTracker(t)

	claimed := panelMessage(t, func(rec *Record) {
		if err := rec.Claim("A", "<@1>", "x"); err != nil {
			t.Fatal(err)
		}
	})
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return([]discord.Message{claimed}, nil)

	// No UpdateMessage expectation: a failed claim must not write anything.
	_, err := tr.Claim("A", "<@2>", "y")
	var alreadyClaimed *AlreadyClaimedError
	if !errors.As(err, &alreadyClaimed) {
		t.Fatalf("Claim() error = %v, want AlreadyClaimedError", err)
	}
	if alreadyClaimed.Holder != "<@1>" || alreadyClaimed.Reason != "x" {
		t.Errorf("AlreadyClaimedError = %+v", alreadyClaimed)
	}
}

func Test_Tracker_Release(t *testing.T) {
	tr, client := newTestTracker(t)

	claimed := panelMessage(t, func(rec *Record) {
		if err := rec.Claim("A", "<@1>", "x"); err != nil {
			t.Fatal(err)
		}
	})
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return([]discord.Message{claimed}, nil)

	var updated discord.MessageUpdate
	client.EXPECT().
		UpdateMessage(testChannelID, testPanelID, gomock.Any()).
		DoAndReturn(func(channelID, messageID snowflake.ID, update discord.MessageUpdate, _ ...rest.RequestOpt) (*discord.Message, error) {
			updated = update
			return &discord.Message{ID: messageID, ChannelID: channelID}, nil
		})

	holder, err := tr.Release("A")
	if err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if holder != "<@1>" {
		t.Errorf("Release() holder = %q, want <@1>", holder)
	}
	if got := (*updated.Embeds)[0].Fields[0].Value; got != "Status: Logged out" {
		t.Errorf("field A = %q, want logged out", got)
	}
}

func Test_Tracker_Release_NotClaimed(t *testing.T) {
	tr, client := newTestTracker(t)

	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return([]discord.Message{panelMessage(t, nil)}, nil)

	_, err := tr.Release("A")
	var notClaimed *NotClaimedError
	if !errors.As(err, &notClaimed) {
		t.Errorf("Release() error = %v, want NotClaimedError", err)
	}
}

func Test_Tracker_StaleCacheFallsBackToScan(t *testing.T) {
	tr, client := newTestTracker(t)
	tr.locator.Remember(testChannelID, snowflake.ID(999))

	client.EXPECT().
		GetMessage(testChannelID, snowflake.ID(999)).
		Return(nil, fmt.Errorf("unknown message"))
	client.EXPECT().
		GetMessages(testChannelID, snowflake.ID(0), snowflake.ID(0), snowflake.ID(0), 100).
		Return([]discord.Message{panelMessage(t, nil)}, nil)
	client.EXPECT().
		UpdateMessage(testChannelID, testPanelID, gomock.Any()).
		Return(&discord.Message{ID: testPanelID, ChannelID: testChannelID}, nil)

	if _, err := tr.Claim("A", "<@1>", "x"); err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
}

// Two simultaneous claims on different accounts must both survive: the
// tracker serializes the read-modify-write cycle, so the second writer
// re-reads the first writer's edit instead of clobbering it.
func Test_Tracker_ConcurrentClaims(t *testing.T) {
	tr, client := newTestTracker(t)

	var mu sync.Mutex
	stored := panelMessage(t, nil)

	client.EXPECT().
		GetMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes().
		DoAndReturn(func(_, _, _, _ snowflake.ID, _ int, _ ...rest.RequestOpt) ([]discord.Message, error) {
			mu.Lock()
			defer mu.Unlock()
			return []discord.Message{stored}, nil
		})
	client.EXPECT().
		GetMessage(gomock.Any(), gomock.Any()).
		AnyTimes().
		DoAndReturn(func(_, _ snowflake.ID, _ ...rest.RequestOpt) (*discord.Message, error) {
			mu.Lock()
			defer mu.Unlock()
			msg := stored
			return &msg, nil
		})
	client.EXPECT().
		UpdateMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes().
		DoAndReturn(func(_, _ snowflake.ID, update discord.MessageUpdate, _ ...rest.RequestOpt) (*discord.Message, error) {
			mu.Lock()
			defer mu.Unlock()
			stored.Embeds = *update.Embeds
			msg := stored
			return &msg, nil
		})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = tr.Claim("A", "<@1>", "x")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = tr.Claim("B", "<@2>", "y")
	}()
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("claim %d error = %v", i, err)
		}
	}

	rec, err := DecodeRecord(stored)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}
	for _, account := range []string{"A", "B"} {
		if got, _ := rec.Get(account); !got.Claimed() {
			t.Errorf("%s = %+v, want claimed; a concurrent edit was lost", account, got)
		}
	}
}
