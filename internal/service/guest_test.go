package service

import (
	"context"
	"testing"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuestService_Create_Success(t *testing.T) {
	guestRepo := mocks.NewMockGuestRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewGuestService(guestRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	guestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	guest, err := svc.Create(context.Background(), domain.CreateGuestInput{EventID: "e1", Name: " Ann ", Email: "ann@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, guest.ID)
	assert.Equal(t, "Ann", guest.Name)
	assert.Equal(t, "e1", guest.EventID)
}

func TestGuestService_Create_EmptyName(t *testing.T) {
	svc := NewGuestService(mocks.NewMockGuestRepo(t), mocks.NewMockEventRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateGuestInput{EventID: "e1", Name: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGuestService_Create_EventNotFound(t *testing.T) {
	guestRepo := mocks.NewMockGuestRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewGuestService(guestRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), domain.CreateGuestInput{EventID: "missing", Name: "Ann"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestGuestService_ListByEvent(t *testing.T) {
	guestRepo := mocks.NewMockGuestRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewGuestService(guestRepo, eventRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	guestRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]*domain.Guest{{ID: "g1"}, {ID: "g2"}}, nil)

	guests, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, guests, 2)
}
