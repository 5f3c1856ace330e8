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

type QRCodeService interface {
	ListQRCodes(ctx context.Context, query service.QRCodeListQuery) (domain.Page[domain.QRCode], error)
	GetQRCode(ctx context.Context, id uint) (domain.QRCode, error)
	CreateQRCode(ctx context.Context, code domain.QRCode) (domain.QRCode, error)
	UpdateQRCode(ctx context.Context, code domain.QRCode) (domain.QRCode, error)
	DeleteQRCode(ctx context.Context, id uint) error
}

type QRCodeHandler struct {
	svc   QRCodeService
	cache *viewcache.Cache
}

func NewQRCodeHandler(svc QRCodeService, cache *viewcache.Cache) *QRCodeHandler {
	return &QRCodeHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *QRCodeHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/events", "/api/v1/qrcodes")
}

// HandleListQRCodes godoc
// @Summary      List an event's QR codes
// @Tags         qrcodes
// @Produce      json
// @Param        eventID  path      int     true   "event ID"
// @Param        page     query     int     false  "page number"
// @Param        limit    query     int     false  "page size"
// @Param        search   query     string  false  "search term"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/qrcodes [get]
// @Security BearerAuth
func (h *QRCodeHandler) HandleListQRCodes(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.ListQRCodes(ctx.Request.Context(), service.QRCodeListQuery{
		Page:    parsePageRequest(ctx),
		Search:  ctx.Query("search"),
		EventID: eventID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListQRCodes -> h.svc.ListQRCodes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetQRCode godoc
// @Summary      Get one QR code
// @Tags         qrcodes
// @Produce      json
// @Param        qrcodeID  path      int  true  "QR code ID"
// @Success      200       {object}  response.Envelope
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /qrcodes/{qrcodeID} [get]
// @Security BearerAuth
func (h *QRCodeHandler) HandleGetQRCode(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "qrcodeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	code, err := h.svc.GetQRCode(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("QR code", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetQRCode -> h.svc.GetQRCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, code)
}

// HandleCreateQRCode godoc
// @Summary      Create a QR code under an event
// @Description  Colors default to black on white when omitted.
// @Tags         qrcodes
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                          true  "event ID"
// @Param        request  body      request.CreateQRCodeRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/qrcodes [post]
// @Security BearerAuth
func (h *QRCodeHandler) HandleCreateQRCode(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateQRCodeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	code := qrCodeFromRequest(req)
	code.EventID = eventID

	created, err := h.svc.CreateQRCode(ctx.Request.Context(), code)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateQRCode -> h.svc.CreateQRCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateQRCode godoc
// @Summary      Update a QR code
// @Tags         qrcodes
// @Accept       json
// @Produce      json
// @Param        qrcodeID  path      int                          true  "QR code ID"
// @Param        request   body      request.UpdateQRCodeRequest  true  "request body"
// @Success      200       {object}  response.Envelope
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /qrcodes/{qrcodeID} [put]
// @Security BearerAuth
func (h *QRCodeHandler) HandleUpdateQRCode(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "qrcodeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateQRCodeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	code := qrCodeFromRequest(req.CreateQRCodeRequest)
	code.ID = id

	updated, err := h.svc.UpdateQRCode(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("QR code", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateQRCode -> h.svc.UpdateQRCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteQRCode godoc
// @Summary      Delete a QR code
// @Tags         qrcodes
// @Produce      json
// @Param        qrcodeID  path      int  true  "QR code ID"
// @Success      200       {object}  response.Envelope
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /qrcodes/{qrcodeID} [delete]
// @Security BearerAuth
func (h *QRCodeHandler) HandleDeleteQRCode(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "qrcodeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteQRCode(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrQRCodeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("QR code", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteQRCode -> h.svc.DeleteQRCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

func qrCodeFromRequest(req request.CreateQRCodeRequest) domain.QRCode {
	return domain.QRCode{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Type:        req.Type,
		Foreground:  req.Foreground,
		Background:  req.Background,
	}
}
