package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/athletex/gym-api/internal/repository"
)

// MembershipExpiryWorker periodically flips memberships whose end date
// has passed to status expired. Read paths never trust the stored
// status alone, so this is bookkeeping for the admin listing rather
// than an access control mechanism.
type MembershipExpiryWorker struct {
	repo          repository.MembershipRepository
	sweepInterval time.Duration
}

func NewMembershipExpiryWorker(repo repository.MembershipRepository, sweepInterval time.Duration) *MembershipExpiryWorker {
	return &MembershipExpiryWorker{
		repo:          repo,
		sweepInterval: sweepInterval,
	}
}

func (w *MembershipExpiryWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				log.Error().Err(err).Msg("membership expiry sweep failed")
			}
		}
	}
}

func (w *MembershipExpiryWorker) sweep(ctx context.Context) error {
	rows, err := w.repo.MarkExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if rows > 0 {
		log.Info().Int64("count", rows).Msg("marked lapsed memberships expired")
	}
	return nil
}
