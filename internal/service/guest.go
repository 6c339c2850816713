package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
)

type GuestService struct {
	repo      ports.GuestRepo
	eventRepo ports.EventRepo
}

func NewGuestService(repo ports.GuestRepo, eventRepo ports.EventRepo) *GuestService {
	return &GuestService{repo: repo, eventRepo: eventRepo}
}

func (s *GuestService) Create(ctx context.Context, input domain.CreateGuestInput) (*domain.Guest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	guest := &domain.Guest{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		Name:      name,
		Email:     strings.TrimSpace(input.Email),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	return guest, nil
}

func (s *GuestService) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GuestService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}
