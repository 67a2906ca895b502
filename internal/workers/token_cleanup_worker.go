package workers

import (
	"context"
	"time"

	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker clears expired verification and password reset tokens
// so stale links stop working and the users table stays lean.
type TokenCleanupWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, userRepo repositories.UserRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:       db,
		userRepo: userRepo,
		interval: time.Hour,
	}
}

// Start runs the cleanup loop until ctx is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			cleared, err := w.userRepo.ClearExpiredResetTokens(w.db)
			if err != nil {
				logger.Error("failed to clear expired tokens", "error", err)
			} else if cleared > 0 {
				logger.Info("cleared expired tokens", "count", cleared)
			}
		}
	}
}
