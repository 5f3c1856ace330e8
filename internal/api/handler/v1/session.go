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

type SessionService interface {
	ListSessions(ctx context.Context, query service.SessionListQuery) (domain.Page[domain.Session], error)
	GetSession(ctx context.Context, id uint) (domain.Session, error)
	CreateSession(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error)
	UpdateSession(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error)
	DeleteSession(ctx context.Context, id uint) error
}

type SessionHandler struct {
	svc   SessionService
	cache *viewcache.Cache
}

func NewSessionHandler(svc SessionService, cache *viewcache.Cache) *SessionHandler {
	return &SessionHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *SessionHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/events", "/api/v1/sessions")
}

// HandleListSessions godoc
// @Summary      List an event's sessions
// @Tags         sessions
// @Produce      json
// @Param        eventID  path      int     true   "event ID"
// @Param        page     query     int     false  "page number"
// @Param        limit    query     int     false  "page size"
// @Param        type     query     string  false  "session type filter"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/sessions [get]
// @Security BearerAuth
func (h *SessionHandler) HandleListSessions(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.ListSessions(ctx.Request.Context(), service.SessionListQuery{
		Page:    parsePageRequest(ctx),
		EventID: eventID,
		Type:    domain.SessionType(ctx.Query("type")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListSessions -> h.svc.ListSessions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetSession godoc
// @Summary      Get one session
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      int  true  "session ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sessions/{sessionID} [get]
// @Security BearerAuth
func (h *SessionHandler) HandleGetSession(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "sessionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session, err := h.svc.GetSession(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetSession -> h.svc.GetSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, session)
}

// HandleCreateSession godoc
// @Summary      Create a session under an event
// @Description  Speaker IDs given in the request are attached to the new session.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        request  body      request.CreateSessionRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/sessions [post]
// @Security BearerAuth
func (h *SessionHandler) HandleCreateSession(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateSessionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session := sessionFromRequest(req)
	session.EventID = eventID

	created, err := h.svc.CreateSession(ctx.Request.Context(), session, req.SpeakerIDs)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateSession -> h.svc.CreateSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateSession godoc
// @Summary      Update a session
// @Description  The speaker set is replaced with the IDs given in the request.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      int                           true  "session ID"
// @Param        request    body      request.UpdateSessionRequest  true  "request body"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sessions/{sessionID} [put]
// @Security BearerAuth
func (h *SessionHandler) HandleUpdateSession(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "sessionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateSessionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	session := sessionFromRequest(req.CreateSessionRequest)
	session.ID = id

	updated, err := h.svc.UpdateSession(ctx.Request.Context(), session, req.SpeakerIDs)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateSession -> h.svc.UpdateSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteSession godoc
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Param        sessionID  path      int  true  "session ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /sessions/{sessionID} [delete]
// @Security BearerAuth
func (h *SessionHandler) HandleDeleteSession(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "sessionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSession(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("session", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSession -> h.svc.DeleteSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

func sessionFromRequest(req request.CreateSessionRequest) domain.Session {
	date, _ := request.ParseDate(req.Date)

	return domain.Session{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		TimeRange:   req.TimeRange,
		Type:        domain.SessionType(req.Type),
		Location:    req.Location,
	}
}
