package invites

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	gomock "go.uber.org/mock/gomock"

	"github.com/seforius/logintracker/tracker/invites/mock"
)

const testGuildID = snowflake.ID(42)

func newTestSweeper(t *testing.T, allowed bool) (*Sweeper, *mock.MockClient) {
	client := mock.NewMockClient(gomock.NewController(t))
	policy := NewPolicy(filepath.Join(t.TempDir(), "invites.txt"))
	if err := policy.SetAllowed(allowed); err != nil {
		t.Fatal(err)
	}
	return NewSweeper(client, policy, testGuildID, 0), client
}

func Test_Sweeper_NoopWhileAllowed(t *testing.T) {
	s, _ := newTestSweeper(t, true)

	// No expectations registered: any rest call would fail the test.
	if err := s.Sweep(context.Background()); err != nil {
		t.Errorf("Sweep() error = %v", err)
	}
}

func Test_Sweeper_RevokesAllInvites(t *testing.T) {
	s, client := newTestSweeper(t, false)

	invites := []discord.Invite{{Code: "aaa"}, {Code: "bbb"}, {Code: "ccc"}}
	client.EXPECT().GetGuildInvites(testGuildID).Return(invites, nil)
	for _, invite := range invites {
		client.EXPECT().DeleteInvite(invite.Code).Return(nil, nil)
	}

	if err := s.Sweep(context.Background()); err != nil {
		t.Errorf("Sweep() error = %v", err)
	}
}

func Test_Sweeper_ToleratesPartialFailure(t *testing.T) {
	s, client := newTestSweeper(t, false)

	invites := []discord.Invite{{Code: "aaa"}, {Code: "bbb"}, {Code: "ccc"}}
	client.EXPECT().GetGuildInvites(testGuildID).Return(invites, nil)
	client.EXPECT().DeleteInvite("aaa").Return(nil, nil)
	client.EXPECT().DeleteInvite("bbb").Return(nil, fmt.Errorf("missing permissions"))
	client.EXPECT().DeleteInvite("ccc").Return(nil, nil)

	// One failed revocation must not abort the batch or fail the sweep.
	if err := s.Sweep(context.Background()); err != nil {
		t.Errorf("Sweep() error = %v", err)
	}
}

func Test_Sweeper_ListFailure(t *testing.T) {
	s, client := newTestSweeper(t, false)

	client.EXPECT().GetGuildInvites(testGuildID).Return(nil, fmt.Errorf("api down"))

	if err := s.Sweep(context.Background()); err == nil {
		t.Error("Sweep() expected error when listing invites fails")
	}
}
