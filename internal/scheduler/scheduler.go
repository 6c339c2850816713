package scheduler

import (
	"context"
	"time"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type claimAuditor interface {
	AuditClaims(ctx context.Context) ([]domain.ClaimViolation, error)
}

// Scheduler periodically recounts signup claims from persisted state and
// reports options held by more guests than their field allows.
type Scheduler struct {
	auditor  claimAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor claimAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("claim audit started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("claim audit stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	violations, err := s.auditor.AuditClaims(ctx)
	if err != nil {
		s.logger.Error("failed to audit signup claims",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, v := range violations {
		s.logger.Warn("signup option over-claimed",
			logger.String("field_id", v.FieldID),
			logger.String("label", v.Label),
			logger.String("option", v.Option),
			logger.Int("claims", v.Claims),
			logger.Int("max", v.Max),
		)
	}
}
