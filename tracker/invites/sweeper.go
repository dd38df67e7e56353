package invites

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultInterval      = 30 * time.Second
	maxConcurrentRevokes = 4
)

// Client is the slice of the Discord rest API the sweeper touches.
// rest.Rest satisfies it; tests substitute a mock.
type Client interface {
	GetGuildInvites(guildID snowflake.ID, opts ...rest.RequestOpt) ([]discord.Invite, error)
	DeleteInvite(code string, opts ...rest.RequestOpt) (*discord.Invite, error)
}

// Sweeper periodically revokes every active invite of the guild while the
// policy disallows them. It shares no state with the status tracker; the
// policy file is its only input.
type Sweeper struct {
	client   Client
	policy   *Policy
	guildID  snowflake.ID
	interval time.Duration
}

func NewSweeper(client Client, policy *Policy, guildID snowflake.ID, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{
		client:   client,
		policy:   policy,
		guildID:  guildID,
		interval: interval,
	}
}

// Run blocks, sweeping on a fixed interval until ctx is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	slog.Info("Invite sweeper started",
		slog.String("type", "sweep"),
		slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				slog.Error("Invite sweep failed",
					slog.String("type", "sweep"),
					slog.Any("error", err))
			}
		case <-ctx.Done():
			slog.Info("Invite sweeper stopped", slog.String("type", "sweep"))
			return
		}
	}
}

// Sweep revokes all active invites when the policy disallows them, and is a
// no-op otherwise. A failed revocation is logged and skipped; it never aborts
// the rest of the batch.
func (s *Sweeper) Sweep(ctx context.Context) error {
	allowed, err := s.policy.Allowed()
	if err != nil {
		return err
	}
	if allowed {
		return nil
	}

	invites, err := s.client.GetGuildInvites(s.guildID)
	if err != nil {
		return fmt.Errorf("failed to list guild invites: %w", err)
	}
	if len(invites) == 0 {
		return nil
	}

	var failed atomic.Int64
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRevokes)

	for _, invite := range invites {
		code := invite.Code
		g.Go(func() error {
			if _, err := s.client.DeleteInvite(code); err != nil {
				failed.Add(1)
				slog.Error("Failed to revoke invite",
					slog.String("type", "sweep"),
					slog.String("code", code),
					slog.Any("error", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("Invite sweep completed",
		slog.String("type", "sweep"),
		slog.Int("revoked", len(invites)-int(failed.Load())),
		slog.Int64("failed", failed.Load()))
	return nil
}
