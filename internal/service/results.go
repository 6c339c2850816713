package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ResultsService struct {
	eventRepo    ports.EventRepo
	fieldRepo    ports.FieldRepo
	responseRepo ports.ResponseRepo
	cache        *gocache.Cache
	logger       logger.Logger

	// generations counts invalidations per event; a view loaded under an
	// older generation is returned but not cached.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewResultsService caches public views for publicTTL; a non-positive TTL
// disables caching. Private views are always read fresh.
func NewResultsService(
	eventRepo ports.EventRepo,
	fieldRepo ports.FieldRepo,
	responseRepo ports.ResponseRepo,
	publicTTL time.Duration,
	logger logger.Logger,
) *ResultsService {
	s := &ResultsService{
		eventRepo:    eventRepo,
		fieldRepo:    fieldRepo,
		responseRepo: responseRepo,
		logger:       logger,
		generations:  make(map[string]uint64),
	}
	if publicTTL > 0 {
		s.cache = gocache.New(publicTTL, 2*publicTTL)
	}
	return s
}

func (s *ResultsService) Private(ctx context.Context, eventID string) (*domain.PrivateResults, error) {
	fields, responses, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	res := customfield.PrivateResults(fields, responses)
	return &res, nil
}

func (s *ResultsService) Public(ctx context.Context, eventID string) (*domain.PublicResults, error) {
	key := publicKey(eventID)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*domain.PublicResults), nil
		}
	}
	gen := s.generation(eventID)

	fields, responses, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	res := customfield.PublicResults(fields, responses)
	if s.cache != nil {
		s.mu.Lock()
		if s.generations[eventID] == gen {
			s.cache.Set(key, &res, gocache.DefaultExpiration)
		}
		s.mu.Unlock()
	}
	return &res, nil
}

// Invalidate drops the cached public view of an event.
func (s *ResultsService) Invalidate(eventID string) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	s.generations[eventID]++
	s.cache.Delete(publicKey(eventID))
	s.mu.Unlock()
	s.logger.Debug("public results invalidated", logger.String("event_id", eventID))
}

func (s *ResultsService) generation(eventID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[eventID]
}

func (s *ResultsService) load(ctx context.Context, eventID string) ([]domain.FieldDefinition, []domain.GuestResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, nil, err
	}

	fields, err := s.fieldRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list fields: %w", err)
	}

	responses, err := s.responseRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list responses: %w", err)
	}

	return fields, responses, nil
}

func publicKey(eventID string) string {
	return "public:" + eventID
}
