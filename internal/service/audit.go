package service

import (
	"context"
	"fmt"

	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/metrics"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
)

// AuditService recounts signup claims from persisted state. The submit path
// is expected to keep the result empty.
type AuditService struct {
	fieldRepo    ports.FieldRepo
	responseRepo ports.ResponseRepo
	metrics      *metrics.Metrics
}

func NewAuditService(fieldRepo ports.FieldRepo, responseRepo ports.ResponseRepo, metrics *metrics.Metrics) *AuditService {
	return &AuditService{
		fieldRepo:    fieldRepo,
		responseRepo: responseRepo,
		metrics:      metrics,
	}
}

func (s *AuditService) AuditClaims(ctx context.Context) ([]domain.ClaimViolation, error) {
	fields, err := s.fieldRepo.ListByType(ctx, domain.FieldTypeSignup)
	if err != nil {
		return nil, fmt.Errorf("list signup fields: %w", err)
	}

	var violations []domain.ClaimViolation
	for i := range fields {
		responses, err := s.responseRepo.ListByField(ctx, fields[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list claims for field %s: %w", fields[i].ID, err)
		}
		violations = append(violations, customfield.FindViolations(&fields[i], responses)...)
	}

	s.metrics.SetOverclaimedOptions(len(violations))

	return violations, nil
}
