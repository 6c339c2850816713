package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/handler/dto"
	"github.com/rodionsteshenko/shindig-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.EventDetails, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type GuestSvc interface {
	Create(ctx context.Context, input domain.CreateGuestInput) (*domain.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Guest, error)
}

type ResponseSvc interface {
	Submit(ctx context.Context, input domain.SubmitResponsesInput) (*domain.SubmissionResult, error)
	ListForGuest(ctx context.Context, eventID, guestID string) ([]domain.Response, error)
}

type ResultsSvc interface {
	Private(ctx context.Context, eventID string) (*domain.PrivateResults, error)
	Public(ctx context.Context, eventID string) (*domain.PublicResults, error)
}

type Handler struct {
	eventService    EventSvc
	guestService    GuestSvc
	responseService ResponseSvc
	resultsService  ResultsSvc
}

func NewHandler(eventService EventSvc, guestService GuestSvc, responseService ResponseSvc, resultsService ResultsSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		guestService:    guestService,
		responseService: responseService,
		resultsService:  resultsService,
	}
}

// Events
func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
		Fields:      dto.ToFieldDrafts(req.Fields),
	}

	details, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDetailsResponse(details))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
		Fields:      dto.ToFieldDrafts(req.Fields),
	}

	details, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateFields runs the field validator without persisting anything, so a
// form can show every problem before the host saves.
func (h *Handler) ValidateFields(c *ginext.Context) {
	var req dto.ValidateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if problems := customfield.ValidateDefinitions(dto.ToFieldDrafts(req.Fields)); len(problems) > 0 {
		h.handleError(c, domain.NewValidationError(domain.KindSchema, problems))
		return
	}

	c.JSON(http.StatusOK, dto.ValidationResultResponse{Valid: true, Errors: []string{}})
}

// Guests

func (h *Handler) CreateGuest(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.Create(c.Request.Context(), domain.CreateGuestInput{
		EventID: id,
		Name:    req.Name,
		Email:   req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *Handler) ListGuests(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	guests, err := h.guestService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		resp = append(resp, dto.ToGuestResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Responses

func (h *Handler) SubmitResponses(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.SubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.responseService.Submit(c.Request.Context(), domain.SubmitResponsesInput{
		EventID:   id,
		GuestID:   middleware.GuestID(c),
		Responses: dto.ToResponseInputs(req.Responses),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(res))
}

func (h *Handler) MyResponses(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	responses, err := h.responseService.ListForGuest(c.Request.Context(), id, middleware.GuestID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStoredResponses(responses))
}

// Results

func (h *Handler) PrivateResults(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	res, err := h.resultsService.Private(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) PublicResults(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	res, err := h.resultsService.Public(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ToValidationErrorResponse(vErr))

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrPersistence):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     "temporarily unavailable, try again",
			Retryable: true,
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
