package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/service"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type EventService interface {
	ListEvents(ctx context.Context, query service.EventListQuery) (domain.Page[domain.EventDetail], error)
	GetEvent(ctx context.Context, id uint) (domain.EventDetail, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateStatus(ctx context.Context, id uint, next domain.EventStatus) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	GetStatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error)
}

type EventHandler struct {
	svc   EventService
	cache *viewcache.Cache
}

func NewEventHandler(svc EventService, cache *viewcache.Cache) *EventHandler {
	return &EventHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *EventHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/events", "/api/v1/dashboard")
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Paginated events with derived statistics. Supports search, sorting and status filter.
// @Tags         events
// @Produce      json
// @Param        page    query     int     false  "page number"
// @Param        limit   query     int     false  "page size"
// @Param        search  query     string  false  "search term"
// @Param        sort    query     string  false  "sort column"
// @Param        order   query     string  false  "asc or desc"
// @Param        status  query     string  false  "stored status filter"
// @Success      200     {object}  response.Envelope
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	page, err := h.svc.ListEvents(ctx.Request.Context(), service.EventListQuery{
		Page:   parsePageRequest(ctx),
		Search: ctx.Query("search"),
		SortBy: ctx.Query("sort"),
		Order:  ctx.Query("order"),
		Status: domain.EventStatus(ctx.Query("status")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetEvent godoc
// @Summary      Get one event
// @Description  Event with nested sessions, speakers, contacts, QR codes, invoices and derived statistics.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, detail)
}

// HandleGetEventStats godoc
// @Summary      Count events by status
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/stats [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEventStats(ctx *gin.Context) {
	counts, err := h.svc.GetStatusCounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEventStats -> h.svc.GetStatusCounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, counts)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), eventFromRequest(req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Replaces the editable fields. Status and creation time are preserved.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event ID"
// @Param        request  body      request.UpdateEventRequest  true  "request body"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event := eventFromRequest(req.CreateEventRequest)
	event.ID = id

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleUpdateEventStatus godoc
// @Summary      Update an event's status
// @Description  Allowed moves are UPCOMING to ACTIVE, ACTIVE to COMPLETED, or any state to CANCELLED.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                               true  "event ID"
// @Param        request  body      request.UpdateEventStatusRequest  true  "request body"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/status [patch]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEventStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateEventStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateStatus(ctx.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}
		if errors.Is(err, service.ErrInvalidStatusTransition) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEventStatus -> h.svc.UpdateStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

func eventFromRequest(req request.CreateEventRequest) domain.Event {
	startDate, _ := request.ParseDate(req.StartDate)
	endDate, _ := request.ParseDate(req.EndDate)

	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Organizers:  req.Organizers,
		Themes:      req.Themes,
		Goals:       req.Goals,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		CoverURL:    req.CoverURL,
	}
}
