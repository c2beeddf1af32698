package subscription

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/config"
)

// Status is the advisory quota snapshot shown to the UI. It is recomputed on
// every request from the identity-provider claims plus a live entry count;
// nothing here is persisted and journal.Create never consults it.
type Status struct {
	IsSubscribed bool  `json:"isSubscribed"`
	EntriesUsed  int64 `json:"entriesUsed"`
	// EntriesRemaining is nil for subscribers: no finite limit applies to
	// them, so the field is omitted from the response. For free-tier users it
	// is the free-tier limit minus entries used, floored at zero.
	EntriesRemaining *int64 `json:"entriesRemaining,omitempty"`
}

type Service struct {
	store journal.Store
	cfg   *config.Config
	log   *zap.SugaredLogger
}

func NewService(store journal.Store, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{store: store, cfg: cfg, log: log}
}

// Status computes the quota snapshot for one user. The subscribed flag comes
// from the identity provider token; the source of truth lives outside this
// system. Subscribers carry no remaining-quota figure at all; for free-tier
// users the figure is never negative.
func (s *Service) Status(ctx context.Context, userID string, subscribed bool) (*Status, error) {
	used, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute subscription status: %w", err)
	}

	st := &Status{IsSubscribed: subscribed, EntriesUsed: used}
	if subscribed {
		return st, nil
	}

	remaining := s.cfg.Subscription.FreeTierLimit - used
	if remaining < 0 {
		remaining = 0
	}
	st.EntriesRemaining = &remaining
	return st, nil
}
