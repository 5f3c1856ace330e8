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

type SpeakerService interface {
	ListSpeakers(ctx context.Context, query service.SpeakerListQuery) (domain.Page[domain.Speaker], error)
	GetSpeaker(ctx context.Context, id uint) (domain.Speaker, error)
	CreateSpeaker(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error)
	UpdateSpeaker(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error)
	DeleteSpeaker(ctx context.Context, id uint) error
}

type SpeakerHandler struct {
	svc   SpeakerService
	cache *viewcache.Cache
}

func NewSpeakerHandler(svc SpeakerService, cache *viewcache.Cache) *SpeakerHandler {
	return &SpeakerHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *SpeakerHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/speakers", "/api/v1/events", "/api/v1/sessions", "/api/v1/dashboard")
}

// HandleListSpeakers godoc
// @Summary      List speakers
// @Tags         speakers
// @Produce      json
// @Param        page    query     int     false  "page number"
// @Param        limit   query     int     false  "page size"
// @Param        search  query     string  false  "search term"
// @Param        sort    query     string  false  "sort column"
// @Param        order   query     string  false  "asc or desc"
// @Success      200     {object}  response.Envelope
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /speakers [get]
// @Security BearerAuth
func (h *SpeakerHandler) HandleListSpeakers(ctx *gin.Context) {
	page, err := h.svc.ListSpeakers(ctx.Request.Context(), service.SpeakerListQuery{
		Page:   parsePageRequest(ctx),
		Search: ctx.Query("search"),
		SortBy: ctx.Query("sort"),
		Order:  ctx.Query("order"),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListSpeakers -> h.svc.ListSpeakers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetSpeaker godoc
// @Summary      Get one speaker
// @Tags         speakers
// @Produce      json
// @Param        speakerID  path      int  true  "speaker ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /speakers/{speakerID} [get]
// @Security BearerAuth
func (h *SpeakerHandler) HandleGetSpeaker(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "speakerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	speaker, err := h.svc.GetSpeaker(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("speaker", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetSpeaker -> h.svc.GetSpeaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, speaker)
}

// HandleCreateSpeaker godoc
// @Summary      Create a speaker
// @Tags         speakers
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSpeakerRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /speakers [post]
// @Security BearerAuth
func (h *SpeakerHandler) HandleCreateSpeaker(ctx *gin.Context) {
	var req request.CreateSpeakerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSpeaker(ctx.Request.Context(), speakerFromRequest(req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSpeaker -> h.svc.CreateSpeaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateSpeaker godoc
// @Summary      Update a speaker
// @Tags         speakers
// @Accept       json
// @Produce      json
// @Param        speakerID  path      int                           true  "speaker ID"
// @Param        request    body      request.UpdateSpeakerRequest  true  "request body"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /speakers/{speakerID} [put]
// @Security BearerAuth
func (h *SpeakerHandler) HandleUpdateSpeaker(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "speakerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateSpeakerRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	speaker := speakerFromRequest(req.CreateSpeakerRequest)
	speaker.ID = id

	updated, err := h.svc.UpdateSpeaker(ctx.Request.Context(), speaker)
	if err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("speaker", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateSpeaker -> h.svc.UpdateSpeaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteSpeaker godoc
// @Summary      Delete a speaker
// @Tags         speakers
// @Produce      json
// @Param        speakerID  path      int  true  "speaker ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /speakers/{speakerID} [delete]
// @Security BearerAuth
func (h *SpeakerHandler) HandleDeleteSpeaker(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "speakerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSpeaker(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("speaker", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSpeaker -> h.svc.DeleteSpeaker -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

func speakerFromRequest(req request.CreateSpeakerRequest) domain.Speaker {
	return domain.Speaker{
		Name:         req.Name,
		Title:        req.Title,
		Organization: req.Organization,
		Bio:          req.Bio,
		AvatarURL:    req.AvatarURL,
	}
}
